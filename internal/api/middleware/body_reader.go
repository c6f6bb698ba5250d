package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxBodySize caps contact-form bodies well above the 5000-character message
// limit while keeping oversized payloads away from the JSON decoder.
const maxBodySize = 64 * 1024

// PreserveRequestBody reads the request body once, enforces the size cap, and
// restores it so binding and handlers can both read it.
func PreserveRequestBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodySize+1))
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}

		if int64(len(bodyBytes)) > maxBodySize {
			c.AbortWithStatus(http.StatusRequestEntityTooLarge)
			return
		}

		// Restore the body for subsequent middleware and handlers
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		c.Next()
	}
}
