package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeaders middleware adds various security headers to protect against common web vulnerabilities
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent clickjacking attacks
		c.Header("X-Frame-Options", "DENY")

		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// Enforce HTTPS
		c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")

		// Control browser features and APIs
		c.Header("Permissions-Policy", "accelerometer=(), camera=(), geolocation=(), gyroscope=(), magnetometer=(), microphone=(), payment=(), usb=()")

		// Prevent browsers from sending the Referer header when navigating from HTTPS to HTTP
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		c.Next()
	}
}
