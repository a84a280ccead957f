package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/middleware"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter() *gin.Engine {
	router := testutil.SetupTestRouter()
	router.Use(middleware.RequestID(), middleware.CORS(testutil.NewTestConfig()), middleware.LoggerMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})
	return router
}

func TestRequestID(t *testing.T) {
	testCases := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{name: "Generated when absent", incoming: "", reused: false},
		{name: "Caller id reused", incoming: "req-123", reused: true},
		{name: "Oversized id replaced", incoming: strings.Repeat("x", 200), reused: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			router := newRouter()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tc.incoming != "" {
				req.Header.Set(middleware.RequestIDHeader, tc.incoming)
			}

			// When
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			// Then
			id := recorder.Header().Get(middleware.RequestIDHeader)
			assert.NotEmpty(t, id)
			assert.Equal(t, id, recorder.Body.String())
			if tc.reused {
				assert.Equal(t, tc.incoming, id)
			} else {
				assert.NotEqual(t, tc.incoming, id)
			}
		})
	}
}

func TestCORS_WildcardOrigin(t *testing.T) {
	// Given
	router := newRouter()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://directory.example.com")

	// When
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	// Then
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}
