package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"marketlens/internal/feature/auth/usecase"
	jwtmw "marketlens/internal/platform/jwt"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	SignupFunc         func(ctx context.Context, email, password string) error
	LoginFunc          func(ctx context.Context, email, password string) (string, error)
	UpdatePasswordFunc func(ctx context.Context, userID uint, current, next string) error
}

func (m *mockAuthUsecase) Signup(ctx context.Context, email, password string) error {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, email, password)
	}
	return nil
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", errors.New("login failed")
}

func (m *mockAuthUsecase) UpdatePassword(ctx context.Context, userID uint, current, next string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, userID, current, next)
	}
	return nil
}

func postJSON(r *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockSignupFunc func(ctx context.Context, email, password string) error
		expectedStatus int
	}{
		{
			name:           "success",
			requestBody:    gin.H{"email": "test@example.com", "password": "password123"},
			mockSignupFunc: func(ctx context.Context, email, password string) error { return nil },
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid email address",
			requestBody:    gin.H{"email": "invalid-email", "password": "password123"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing password",
			requestBody:    gin.H{"email": "test@example.com"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "duplicate email",
			requestBody: gin.H{"email": "dup@example.com", "password": "password123"},
			mockSignupFunc: func(ctx context.Context, email, password string) error {
				return usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockAuthUsecase{SignupFunc: tt.mockSignupFunc})
			r := gin.New()
			r.POST("/signup", h.Signup)

			w := postJSON(r, "/signup", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns token", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "jwt-token", nil
			},
		})
		r := gin.New()
		r.POST("/login", h.Login)

		w := postJSON(r, "/login", gin.H{"email": "test@example.com", "password": "password123"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"token":"jwt-token"}`, w.Body.String())
	})

	t.Run("bad credentials return 401 with generic message", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{
			LoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "", usecase.ErrInvalidCredentials
			},
		})
		r := gin.New()
		r.POST("/login", h.Login)

		w := postJSON(r, "/login", gin.H{"email": "test@example.com", "password": "wrong"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"invalid email or password"}`, w.Body.String())
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{})
		r := gin.New()
		r.POST("/login", h.Login)

		w := postJSON(r, "/login", gin.H{"email": "not-an-email"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_UpdatePassword(t *testing.T) {
	gin.SetMode(gin.TestMode)

	authed := func(userID uint) gin.HandlerFunc {
		return func(c *gin.Context) { c.Set(jwtmw.ContextUserID, userID) }
	}

	t.Run("success", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{
			UpdatePasswordFunc: func(ctx context.Context, userID uint, current, next string) error {
				assert.Equal(t, uint(7), userID)
				return nil
			},
		})
		r := gin.New()
		r.PUT("/auth/password", authed(7), h.UpdatePassword)

		b, _ := json.Marshal(gin.H{"current_password": "oldpassword", "new_password": "newpassword1"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/auth/password", bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong current password returns 401", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{
			UpdatePasswordFunc: func(ctx context.Context, userID uint, current, next string) error {
				return usecase.ErrInvalidCredentials
			},
		})
		r := gin.New()
		r.PUT("/auth/password", authed(7), h.UpdatePassword)

		b, _ := json.Marshal(gin.H{"current_password": "bad", "new_password": "newpassword1"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/auth/password", bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unauthenticated returns 401", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{})
		r := gin.New()
		r.PUT("/auth/password", h.UpdatePassword)

		b, _ := json.Marshal(gin.H{"current_password": "oldpassword", "new_password": "newpassword1"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/auth/password", bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
