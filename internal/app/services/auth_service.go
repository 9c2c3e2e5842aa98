package services

import (
	"context"
	"strings"

	"github.com/olamide/gradekeeper/internal/app/models"
	"github.com/olamide/gradekeeper/internal/app/models/dto"
	"github.com/olamide/gradekeeper/internal/pkg/apperrors"
	"github.com/olamide/gradekeeper/internal/pkg/auth"
	"github.com/olamide/gradekeeper/internal/pkg/logger"
)

// PrincipalStore resolves principals by external identifier and rotates
// their credentials. Satisfied by repositories.Repositories.
type PrincipalStore interface {
	ResolvePrincipal(ctx context.Context, role models.Role, externalID string) (models.Principal, error)
	UpdatePassword(ctx context.Context, role models.Role, id int64, hash string) error
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	// SignIn verifies credentials and issues a bearer token. The username's
	// prefix selects the principal kind: ADM, STU, TCH, anything else is
	// treated as a guardian email.
	SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.SignInResponse, error)
	// ChangePassword rotates the caller's own password.
	ChangePassword(ctx context.Context, principal models.Principal, req *dto.ChangePasswordRequest) error
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	principals PrincipalStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(principals PrincipalStore, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		principals: principals,
		jwtService: jwtService,
	}
}

// RoleForUsername classifies a sign-in username by its registration-number
// prefix. Usernames without a known prefix are guardian emails.
func RoleForUsername(username string) models.Role {
	switch {
	case strings.HasPrefix(username, "ADM"):
		return models.RoleAdmin
	case strings.HasPrefix(username, "STU"):
		return models.RoleStudent
	case strings.HasPrefix(username, "TCH"):
		return models.RoleTeacher
	default:
		return models.RoleGuardian
	}
}

func (s *authServiceImpl) SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.SignInResponse, error) {
	role := RoleForUsername(req.Username)

	principal, err := s.principals.ResolvePrincipal(ctx, role, req.Username)
	if err != nil {
		// Unknown identifiers and bad passwords are indistinguishable to
		// the caller.
		logger.Debug().Str("username", req.Username).Str("role", string(role)).Msg("Sign-in lookup failed")
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(principal.PasswordHash(), req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(principal)
	if err != nil {
		return nil, err
	}

	return dto.NewSignInResponse(principal, token), nil
}

func (s *authServiceImpl) ChangePassword(ctx context.Context, principal models.Principal, req *dto.ChangePasswordRequest) error {
	if !auth.CheckPassword(principal.PasswordHash(), req.OldPassword) {
		return apperrors.ErrIncorrectPassword
	}
	if req.NewPassword != req.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.principals.UpdatePassword(ctx, principal.Kind(), principal.PrimaryID(), hash)
}
