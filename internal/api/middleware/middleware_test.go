package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"graduation-portal-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString("request_id")})
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return router
}

func serve(router *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequestID(t *testing.T) {
	router := newRouter(RequestID())

	t.Run("generates an id", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/ping", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
		assert.Contains(t, rec.Body.String(), rec.Header().Get(RequestIDHeader))
	})

	t.Run("propagates an inbound id", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/ping", map[string]string{RequestIDHeader: "req-42"})
		assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
	})
}

func TestRecovery(t *testing.T) {
	router := newRouter(RequestID(), Logger(), Recovery())

	rec := serve(router, http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000"}}
	router := newRouter(CORS(cfg))

	testCases := []struct {
		name          string
		method        string
		origin        string
		expectedCode  int
		expectedAllow string
	}{
		{name: "allowed origin", method: http.MethodGet, origin: "http://localhost:3000", expectedCode: http.StatusOK, expectedAllow: "http://localhost:3000"},
		{name: "unknown origin", method: http.MethodGet, origin: "http://evil.example", expectedCode: http.StatusOK},
		{name: "preflight", method: http.MethodOptions, origin: "http://localhost:3000", expectedCode: http.StatusNoContent, expectedAllow: "http://localhost:3000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(router, tc.method, "/ping", map[string]string{"Origin": tc.origin})
			assert.Equal(t, tc.expectedCode, rec.Code)
			assert.Equal(t, tc.expectedAllow, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORSWildcard(t *testing.T) {
	router := newRouter(CORS(&config.Config{AllowedOrigins: []string{"*"}}))

	rec := serve(router, http.MethodGet, "/ping", map[string]string{"Origin": "http://anywhere.example"})
	assert.Equal(t, "http://anywhere.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
