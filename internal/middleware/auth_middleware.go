package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/olamide/gradekeeper/internal/app/models"
	"github.com/olamide/gradekeeper/internal/app/models/dto"
	"github.com/olamide/gradekeeper/internal/pkg/auth"
)

// principalContextKey is the gin context key the resolved principal is
// stored under.
const principalContextKey = "principal"

// PrincipalResolver looks up a principal of a given role by its external
// identifier. Satisfied by repositories.Repositories.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, role models.Role, externalID string) (models.Principal, error)
}

// AuthMiddleware authenticates requests and enforces the required role.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	principals PrincipalResolver
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, principals PrincipalResolver) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		principals: principals,
	}
}

// tokenFromRequest reads the bearer token from the Authorization header,
// falling back to the `token` cookie sign-in also sets.
func tokenFromRequest(c *gin.Context) (string, error) {
	if header := c.GetHeader("Authorization"); header != "" {
		return auth.ExtractBearerToken(header)
	}
	if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
		return cookie, nil
	}
	return "", auth.ErrInvalidFormat
}

// Require validates the bearer token and resolves a principal of the given
// role. Malformed or expired tokens fail 401; a decodable token carrying
// the wrong role, or an identifier with no matching principal, fails 403.
func (m *AuthMiddleware) Require(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := tokenFromRequest(c)
		if err != nil {
			abort(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "authentication required")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			code := dto.ErrorCodeInvalidToken
			if err == auth.ErrExpiredToken {
				code = dto.ErrorCodeExpiredToken
			}
			abort(c, http.StatusUnauthorized, code, err.Error())
			return
		}

		if claims.Role != role {
			abort(c, http.StatusForbidden, dto.ErrorCodeForbidden, "insufficient role")
			return
		}

		principal, err := m.principals.ResolvePrincipal(c.Request.Context(), role, claims.ExternalID)
		if err != nil {
			abort(c, http.StatusForbidden, dto.ErrorCodeForbidden, "no matching principal")
			return
		}

		c.Set(principalContextKey, principal)
		c.Next()
	}
}

func abort(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

// PrincipalFromContext returns the principal resolved by Require.
func PrincipalFromContext(c *gin.Context) (models.Principal, bool) {
	v, ok := c.Get(principalContextKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(models.Principal)
	return p, ok
}

// AdminFromContext returns the authenticated admin.
func AdminFromContext(c *gin.Context) (*models.Admin, bool) {
	p, ok := PrincipalFromContext(c)
	if !ok {
		return nil, false
	}
	admin, ok := p.(*models.Admin)
	return admin, ok
}

// TeacherFromContext returns the authenticated teacher.
func TeacherFromContext(c *gin.Context) (*models.Teacher, bool) {
	p, ok := PrincipalFromContext(c)
	if !ok {
		return nil, false
	}
	teacher, ok := p.(*models.Teacher)
	return teacher, ok
}

// GuardianFromContext returns the authenticated guardian.
func GuardianFromContext(c *gin.Context) (*models.Guardian, bool) {
	p, ok := PrincipalFromContext(c)
	if !ok {
		return nil, false
	}
	guardian, ok := p.(*models.Guardian)
	return guardian, ok
}
