package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors.

func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

func ErrInvalidDate(domain, message string) *AppError {
	return New(CodeInvalidDate, domain, message, http.StatusBadRequest)
}

// Auth and account errors.

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrUserNotVerified = New(
	CodeForbidden,
	"auth",
	"Please verify your email address",
	http.StatusForbidden,
)

var ErrTOTPRequired = New(
	CodeTOTPRequired,
	"auth",
	"Second factor code required",
	http.StatusUnauthorized,
)

var ErrInvalidTOTPCode = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid second factor code",
	http.StatusUnauthorized,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

var ErrConsentRequired = New(
	CodeValidationFailed,
	"auth",
	"Data processing consent is required to register",
	http.StatusBadRequest,
)

// Account erasure rules: an admin never deletes itself or another admin
// through the standard erasure path.

var ErrCannotEraseSelf = New(
	CodeForbidden,
	"account",
	"Administrators cannot erase their own account through this operation",
	http.StatusForbidden,
)

var ErrCannotEraseAdmin = New(
	CodeForbidden,
	"account",
	"Administrator accounts cannot be erased through this operation",
	http.StatusForbidden,
)

// Job and application errors.

var ErrJobUnavailable = New(
	CodeInvalidOperation,
	"job",
	"Job posting is not open for applications",
	http.StatusConflict,
)

var ErrDuplicateApplication = New(
	CodeAlreadyExists,
	"application",
	"An application for this job already exists",
	http.StatusConflict,
)

var ErrProfileNotPublic = New(
	CodeForbidden,
	"profile",
	"This profile is private",
	http.StatusForbidden,
)
