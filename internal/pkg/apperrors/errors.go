package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrNotInCatalog     = errors.New("value is not in the catalog")
	ErrPayloadTooLarge  = errors.New("payload too large")
)

// Password errors
var (
	// ErrIncorrectPassword is returned when the old password supplied to a
	// password change does not match the stored hash.
	ErrIncorrectPassword = errors.New("incorrect password")
	// ErrPasswordMismatch is returned when the new password and its
	// confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// Principal errors
var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrTeacherNotFound  = errors.New("teacher not found")
	ErrGuardianNotFound = errors.New("guardian not found")
	ErrAdminNotFound    = errors.New("admin not found")
)

// Enrollment and grading errors
var (
	ErrSubjectNotFound = errors.New("subject not found")
	// ErrSubjectNotTaught is returned when a teacher posts grades for a
	// subject they hold no teacher-subject link for.
	ErrSubjectNotTaught = errors.New("you can only update score for a subject you are teaching")
	// ErrStudentNotEnrolled is returned when a grade entry names a student
	// with no student-subject link for the graded subject.
	ErrStudentNotEnrolled = errors.New("you can only update score for a student taking your subject")
	// ErrNotClassTeacher is returned when a teacher acts on a class they
	// have not claimed.
	ErrNotClassTeacher = errors.New("you can only act on students in your own class")
)

// NewNotFoundError creates a custom error for a missing resource with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewValidationError creates a custom error for invalid request data with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewCatalogError creates a custom error for a value outside the fixed catalogs
func NewCatalogError(message string) error {
	return &CustomError{
		Err:     ErrNotInCatalog,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
