package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"portfolio-server/internal/origin"
)

func newCORSRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	guard := origin.NewGuard([]string{"https://portfolio.test", "https://*.preview.test"})
	r := gin.New()
	r.Use(CORS(guard))
	r.POST("/api/v1/contact", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestPreflightAllowedOrigin(t *testing.T) {
	r := newCORSRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/contact", nil)
	req.Header.Set("Origin", "https://portfolio.test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://portfolio.test", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestPreflightDisallowedOriginStillOK(t *testing.T) {
	r := newCORSRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/contact", nil)
	req.Header.Set("Origin", "https://evil.test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Preflights always answer 200; the empty allow-origin is what blocks
	// the browser.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
}

func TestPreflightWildcardOrigin(t *testing.T) {
	r := newCORSRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/contact", nil)
	req.Header.Set("Origin", "https://pr-42.preview.test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://pr-42.preview.test", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSEchoesOriginOnActualRequest(t *testing.T) {
	r := newCORSRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", nil)
	req.Header.Set("Origin", "https://portfolio.test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://portfolio.test", w.Header().Get("Access-Control-Allow-Origin"))
}
