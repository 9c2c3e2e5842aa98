package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/olamide/gradekeeper/internal/app/models/dto"
	"github.com/olamide/gradekeeper/internal/app/services"
	"github.com/olamide/gradekeeper/internal/middleware"
)

// AuthController handles sign-in and password changes
type AuthController struct {
	authService services.AuthService
	tokenTTL    time.Duration
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, tokenTTL time.Duration) *AuthController {
	return &AuthController{
		authService: authService,
		tokenTTL:    tokenTTL,
	}
}

// SignIn authenticates a registration number or guardian email and issues a
// bearer token. The token is also mirrored into a `token` cookie.
func (c *AuthController) SignIn(ctx *gin.Context) {
	var req dto.SignInRequest
	if err := ctx.ShouldBind(&req); err != nil {
		badRequest(ctx, "invalid sign-in data", err)
		return
	}

	resp, err := c.authService.SignIn(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.SetCookie("token", resp.AccessToken, int(c.tokenTTL.Seconds()), "/", "", false, true)
	ctx.JSON(http.StatusOK, resp)
}

// ChangePassword rotates the caller's own password. Mounted once per role
// group behind the matching auth middleware.
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "authentication required")))
		return
	}

	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "invalid password change data", err)
		return
	}

	if err := c.authService.ChangePassword(ctx, principal, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "password updated"})
}

// badRequest writes a 400 with binding failure details.
func badRequest(ctx *gin.Context, message string, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message).WithDetails(err.Error())
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}
