package dto

import "github.com/olamide/gradekeeper/internal/app/models"

// SignInRequest represents sign-in credentials. The username is a
// registration number (ADM/STU/TCH prefix) or a guardian email.
type SignInRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// SignInResponse represents a successful sign-in. Field names follow the
// established wire format of the API.
type SignInResponse struct {
	Name        string      `json:"name"`
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ID          string      `json:"id"`
	Role        models.Role `json:"role"`
}

// NewSignInResponse builds the sign-in payload for a principal and token.
func NewSignInResponse(p models.Principal, token string) *SignInResponse {
	return &SignInResponse{
		Name:        p.DisplayName(),
		AccessToken: token,
		TokenType:   "bearer",
		ID:          p.ExternalID(),
		Role:        p.Kind(),
	}
}

// ChangePasswordRequest represents a self-service password change
type ChangePasswordRequest struct {
	OldPassword     string `json:"oldPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}
