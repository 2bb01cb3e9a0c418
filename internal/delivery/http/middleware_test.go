package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAllowedOrigin(t *testing.T) {
	ui := []string{"http://localhost:*", "https://dishlens.example.com"}

	tests := []struct {
		origin  string
		allowed []string
		want    bool
	}{
		{"http://localhost:8501", []string{"http://localhost:8501"}, true},
		{"http://localhost:8501", ui, true},
		{"https://dishlens.example.com", ui, true},
		{"https://dishlens.example.com.evil.io", ui, false},
		{"http://127.0.0.1:8501", ui, false},
		{"http://localhost:8501", []string{"http://local*"}, true},
		{"", ui, false},
		{"http://localhost:8501", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			assert.Equal(t, tt.want, isAllowedOrigin(tt.origin, tt.allowed))
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(CORSMiddleware([]string{"http://localhost:*"}))
	router.GET("/api/v1/dishes", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"dishes": []string{}})
	})
	router.POST("/api/v1/calories/maintenance", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func(method, path, origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		if origin != "" {
			req.Header.Set("Origin", origin)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("allowed origin", func(t *testing.T) {
		w := send(http.MethodGet, "/api/v1/dishes", "http://localhost:8501")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:8501", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		assert.Equal(t, requestIDHeader, w.Header().Get("Access-Control-Expose-Headers"))
	})

	t.Run("disallowed origin still served without CORS headers", func(t *testing.T) {
		w := send(http.MethodGet, "/api/v1/dishes", "http://evil.com")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("no origin header", func(t *testing.T) {
		w := send(http.MethodGet, "/api/v1/dishes", "")
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight for calculator post", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/calories/maintenance", nil)
		req.Header.Set("Origin", "http://localhost:8501")
		req.Header.Set("Access-Control-Request-Method", "POST")
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:8501", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
		assert.Equal(t, "3600", w.Header().Get("Access-Control-Max-Age"))
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	newRouter := func() *gin.Engine {
		router := gin.New()
		router.Use(RequestIDMiddleware())
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, c.GetString(requestIDKey))
		})
		return router
	}

	t.Run("generates id when none supplied", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))

		id := w.Header().Get(requestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("reuses valid caller id", func(t *testing.T) {
		supplied := uuid.NewString()
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(requestIDHeader, supplied)
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, supplied, w.Header().Get(requestIDHeader))
	})

	t.Run("replaces malformed caller id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(requestIDHeader, "not-a-uuid")
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		assert.NotEqual(t, "not-a-uuid", w.Header().Get(requestIDHeader))
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	newRouter := func(perMinute int) *gin.Engine {
		router := gin.New()
		router.Use(RateLimitMiddleware(perMinute))
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, "OK")
		})
		return router
	}

	doRequest := func(router *gin.Engine, ip string) int {
		req := httptest.NewRequest("GET", "/test", nil)
		req.RemoteAddr = ip + ":12345"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("allows burst then rejects", func(t *testing.T) {
		router := newRouter(3)

		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusOK, doRequest(router, "10.0.0.1"), "request %d", i+1)
		}
		assert.Equal(t, http.StatusTooManyRequests, doRequest(router, "10.0.0.1"))
	})

	t.Run("limits each client separately", func(t *testing.T) {
		router := newRouter(1)

		assert.Equal(t, http.StatusOK, doRequest(router, "10.0.0.1"))
		assert.Equal(t, http.StatusTooManyRequests, doRequest(router, "10.0.0.1"))
		assert.Equal(t, http.StatusOK, doRequest(router, "10.0.0.2"))
	})

	t.Run("zero disables limiting", func(t *testing.T) {
		router := newRouter(0)

		for i := 0; i < 20; i++ {
			require.Equal(t, http.StatusOK, doRequest(router, "10.0.0.1"))
		}
	})
}
