package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contactdto "portfolio-server/internal/api/dto/v1/contact"
	"portfolio-server/internal/intake"
	"portfolio-server/internal/utils"
)

type ContactHandler struct {
	pipeline *intake.Pipeline
}

func NewContactHandler(pipeline *intake.Pipeline) *ContactHandler {
	return &ContactHandler{
		pipeline: pipeline,
	}
}

// Submit handles POST /api/v1/contact. The origin and rate stages run before
// the body is decoded, so a disallowed origin gets its 403 even with a
// malformed body and malformed-body spam still consumes the client's window.
func (h *ContactHandler) Submit(c *gin.Context) {
	rawOrigin := requestOrigin(c)
	clientID := utils.GetRealIP(c)

	if outcome, ok := h.pipeline.Admit(rawOrigin, clientID); !ok {
		utils.HandleError(c, outcome.Status, outcome.Message, nil)
		return
	}

	var req contactdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	sub := intake.Submission{
		RawOrigin: rawOrigin,
		ClientID:  clientID,
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
	}

	outcome := h.pipeline.Process(c.Request.Context(), sub)
	if !outcome.Accepted {
		utils.HandleError(c, outcome.Status, outcome.Message, nil)
		return
	}

	c.JSON(outcome.Status, contactdto.ContactResponse{
		Success: true,
		Message: outcome.Message,
		Service: outcome.Service,
		Stored:  outcome.Stored,
	})
}

// requestOrigin returns the Origin header, falling back to Referer. Empty
// when neither is present; the pipeline treats that as allowed.
func requestOrigin(c *gin.Context) string {
	if origin := c.GetHeader("Origin"); origin != "" {
		return origin
	}
	return c.Request.Referer()
}
