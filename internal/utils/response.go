package utils

import (
	"github.com/gin-gonic/gin"

	contactdto "portfolio-server/internal/api/dto/v1/contact"
	"portfolio-server/internal/logging"
)

// HandleError sends a flat error response and aborts the request. Internal
// error details are logged server-side only, never echoed to the client.
func HandleError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		logger := logging.GetLogger()
		logger.LogHTTPError(
			c.Request.Method,
			c.Request.URL.Path,
			GetRealIP(c),
			status,
			message,
			err,
		)
	}

	c.AbortWithStatusJSON(status, contactdto.ErrorResponse{Error: message})
}
