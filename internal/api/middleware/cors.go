package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-server/internal/origin"
)

// CORS sets cross-origin headers and answers preflight requests. The
// allow-origin header echoes the caller's origin only when it is on the
// allow-list; otherwise the value stays empty. Preflights always get a 200 so
// the browser surfaces the (missing) allow-origin instead of a network error.
//
// Rejecting disallowed origins with a 403 is the pipeline's job, not this
// middleware's.
func CORS(guard *origin.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqOrigin := c.Request.Header.Get("Origin")

		allowOrigin := ""
		if reqOrigin != "" && guard.Match(reqOrigin) {
			allowOrigin = reqOrigin
		}
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowOrigin)

		if c.Request.Method == http.MethodOptions {
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
