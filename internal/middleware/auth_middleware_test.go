package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olamide/gradekeeper/internal/app/models"
	"github.com/olamide/gradekeeper/internal/pkg/apperrors"
	"github.com/olamide/gradekeeper/internal/pkg/auth"
)

type fakeResolver struct {
	principals map[string]models.Principal // role + "/" + externalID
}

func (f *fakeResolver) ResolvePrincipal(_ context.Context, role models.Role, externalID string) (models.Principal, error) {
	p, ok := f.principals[string(role)+"/"+externalID]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return p, nil
}

func newTestRouter(m *AuthMiddleware, role models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", m.Require(role), func(c *gin.Context) {
		p, ok := PrincipalFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no principal in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": p.ExternalID()})
	})
	return router
}

func TestRequire(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "gradekeeper-test",
	})
	teacher := &models.Teacher{ID: 1, Name: "Mr Bello", TeacherID: "TCH24001"}
	resolver := &fakeResolver{principals: map[string]models.Principal{
		"teacher/TCH24001": teacher,
	}}
	m := NewAuthMiddleware(jwtService, resolver)

	token, err := jwtService.GenerateToken(teacher)
	require.NoError(t, err)

	t.Run("missing token", func(t *testing.T) {
		router := newTestRouter(m, models.RoleTeacher)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		router := newTestRouter(m, models.RoleTeacher)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expiredService := auth.NewJWTService(auth.JWTConfig{
			SecretKey:      "test-secret-key",
			AccessTokenExp: -time.Hour,
			TokenIssuer:    "gradekeeper-test",
		})
		expired, err := expiredService.GenerateToken(teacher)
		require.NoError(t, err)

		router := newTestRouter(m, models.RoleTeacher)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+expired)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong role", func(t *testing.T) {
		router := newTestRouter(m, models.RoleAdmin)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("token holder no longer exists", func(t *testing.T) {
		ghost := &models.Teacher{ID: 2, Name: "Gone", TeacherID: "TCH24099"}
		ghostToken, err := jwtService.GenerateToken(ghost)
		require.NoError(t, err)

		router := newTestRouter(m, models.RoleTeacher)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+ghostToken)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("valid bearer token", func(t *testing.T) {
		router := newTestRouter(m, models.RoleTeacher)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "TCH24001")
	})

	t.Run("cookie fallback", func(t *testing.T) {
		router := newTestRouter(m, models.RoleTeacher)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bare token without scheme", func(t *testing.T) {
		router := newTestRouter(m, models.RoleTeacher)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
