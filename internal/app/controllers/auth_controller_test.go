package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olamide/gradekeeper/internal/app/models"
	"github.com/olamide/gradekeeper/internal/app/models/dto"
	"github.com/olamide/gradekeeper/internal/pkg/apperrors"
)

// stubAuthService returns canned results for the controller tests.
type stubAuthService struct {
	signInResp *dto.SignInResponse
	signInErr  error
	changeErr  error
}

func (s *stubAuthService) SignIn(_ context.Context, _ *dto.SignInRequest) (*dto.SignInResponse, error) {
	return s.signInResp, s.signInErr
}

func (s *stubAuthService) ChangePassword(_ context.Context, _ models.Principal, _ *dto.ChangePasswordRequest) error {
	return s.changeErr
}

func signInRouter(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewAuthController(svc, time.Hour)
	router.POST("/auth/token/sign-in", controller.SignIn)
	return router
}

func TestSignInEndpoint(t *testing.T) {
	t.Run("success mirrors the token into a cookie", func(t *testing.T) {
		svc := &stubAuthService{signInResp: &dto.SignInResponse{
			Name:        "Doe Jane",
			AccessToken: "signed-token",
			TokenType:   "bearer",
			ID:          "STU24007",
			Role:        models.RoleStudent,
		}}
		router := signInRouter(svc)

		body, _ := json.Marshal(dto.SignInRequest{Username: "STU24007", Password: "s3cretpass"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/token/sign-in", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.SignInResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "signed-token", resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, models.RoleStudent, resp.Role)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "token", cookies[0].Name)
		assert.Equal(t, "signed-token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		svc := &stubAuthService{signInErr: apperrors.ErrInvalidCredentials}
		router := signInRouter(svc)

		body, _ := json.Marshal(dto.SignInRequest{Username: "STU24007", Password: "wrong"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/token/sign-in", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("missing fields fail binding", func(t *testing.T) {
		router := signInRouter(&stubAuthService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/token/sign-in", bytes.NewReader([]byte(`{"username":"STU24007"}`)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
