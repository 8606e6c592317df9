package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupHealthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/healthz", Health)
	r.HEAD("/healthz", Health)
	r.OPTIONS("/healthz", Health)
	return r
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		expectedStatus int
		expectedBody   string
	}{
		{name: "GET returns ok body", method: http.MethodGet, expectedStatus: http.StatusOK, expectedBody: `{"status":"ok"}`},
		{name: "HEAD returns 200 without body", method: http.MethodHead, expectedStatus: http.StatusOK, expectedBody: ""},
		{name: "OPTIONS returns 204", method: http.MethodOptions, expectedStatus: http.StatusNoContent, expectedBody: ""},
	}

	r := setupHealthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/healthz", nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}
