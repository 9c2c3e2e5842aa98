package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/olamide/gradekeeper/internal/app/models/dto"
	"github.com/olamide/gradekeeper/internal/pkg/apperrors"
	"github.com/olamide/gradekeeper/internal/pkg/auth"
	"github.com/olamide/gradekeeper/internal/pkg/logger"
)

// HandleAPIError maps domain errors to HTTP responses. Every controller
// funnels failures through here so the status mapping lives in one place.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, err)

	case errors.Is(err, apperrors.ErrTokenExpired), errors.Is(err, auth.ErrExpiredToken):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, err)

	case errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrInvalidFormat),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrInvalidFormat):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, err)

	case errors.Is(err, apperrors.ErrPermissionDenied),
		errors.Is(err, apperrors.ErrSubjectNotTaught),
		errors.Is(err, apperrors.ErrStudentNotEnrolled),
		errors.Is(err, apperrors.ErrNotClassTeacher):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, err)

	// The established wire behavior reports a wrong old password as 404.
	case errors.Is(err, apperrors.ErrIncorrectPassword):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, err)

	case errors.Is(err, apperrors.ErrPasswordMismatch):
		respond(c, http.StatusConflict, dto.ErrorCodeConflict, err)

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrTeacherNotFound),
		errors.Is(err, apperrors.ErrGuardianNotFound),
		errors.Is(err, apperrors.ErrAdminNotFound),
		errors.Is(err, apperrors.ErrSubjectNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, err)

	case errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrConflict):
		respond(c, http.StatusConflict, dto.ErrorCodeConflict, err)

	case errors.Is(err, apperrors.ErrNotInCatalog):
		respond(c, http.StatusNotAcceptable, dto.ErrorCodeNotInCatalog, err)

	case errors.Is(err, apperrors.ErrPayloadTooLarge):
		respond(c, http.StatusRequestEntityTooLarge, dto.ErrorCodePayloadTooLarge, err)

	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, err)

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "internal server error")))
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, err error) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, err.Error())))
}
