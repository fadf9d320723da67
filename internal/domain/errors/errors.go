package errors

import (
	"fmt"
	"net/http"

	"engineershub/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError carrying the same business code, so WithDetails copies still match.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Session-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Login failed",
		"",
	)

	ErrRegistrationFailed = NewBaseError(
		http.StatusBadRequest,
		"REGISTRATION_FAILED",
		"Registration failed",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Your session has expired, please log in again",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Please log in first",
		"",
	)

	ErrCredentialStorage = NewBaseError(
		http.StatusInternalServerError,
		"CREDENTIAL_STORAGE_FAILED",
		"Could not save your session",
		"",
	)

	// Resume upload validation errors
	ErrUnsupportedFileType = NewBaseError(
		http.StatusUnsupportedMediaType,
		"UNSUPPORTED_FILE_TYPE",
		"Please upload only PDF, DOC, or DOCX files",
		"",
	)

	ErrFileTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"FILE_TOO_LARGE",
		"File size must be less than 5MB",
		"",
	)

	ErrEmptyFile = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_FILE",
		"Please choose a file to upload",
		"",
	)

	ErrResumeEvaluationFailed = NewBaseError(
		http.StatusBadGateway,
		"RESUME_EVALUATION_FAILED",
		"Failed to evaluate resume. Please try again.",
		"",
	)

	// Company matching errors
	ErrProfileNotGenerated = NewBaseError(
		http.StatusBadRequest,
		"PROFILE_NOT_GENERATED",
		"Please generate your profile first",
		"",
	)

	ErrMalformedProfile = NewBaseError(
		http.StatusBadRequest,
		"MALFORMED_PROFILE",
		"Failed to analyze profile. Please try again.",
		"",
	)

	ErrProfileAnalysisFailed = NewBaseError(
		http.StatusBadGateway,
		"PROFILE_ANALYSIS_FAILED",
		"Failed to analyze profile. Please try again.",
		"",
	)

	ErrProfilePreviewUnavailable = NewBaseError(
		http.StatusBadRequest,
		"PROFILE_PREVIEW_UNAVAILABLE",
		"Profile preview unavailable",
		"",
	)

	ErrUnknownPlatform = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_PLATFORM",
		"This company has no link for that platform",
		"",
	)

	// Flow errors
	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"That action is not available right now",
		"",
	)

	ErrFlowBusy = NewBaseError(
		http.StatusConflict,
		"FLOW_BUSY",
		"Please wait for the current request to finish",
		"",
	)

	ErrEmptyAnswer = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_ANSWER",
		"Please enter an answer first",
		"",
	)

	// Profile errors
	ErrProfileUpdateFailed = NewBaseError(
		http.StatusBadGateway,
		"PROFILE_UPDATE_FAILED",
		"Failed to update profile",
		"",
	)

	ErrLinkedInImportFailed = NewBaseError(
		http.StatusBadRequest,
		"LINKEDIN_IMPORT_FAILED",
		"Failed to import LinkedIn data. Please check the format.",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Please check the highlighted fields",
		"",
	)

	ErrUnknownView = NewBaseError(
		http.StatusNotFound,
		"UNKNOWN_VIEW",
		"No such view",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Not found",
		"",
	)
)

// APIError is a non-2xx response from the remote API, carrying the server-provided detail.
type APIError struct {
	Status int
	Detail string
}

// NewAPIError creates an API error from a status code and server detail.
func NewAPIError(status int, detail string) *APIError {
	return &APIError{Status: status, Detail: detail}
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api returned status %d", e.Status)
	}

	return fmt.Sprintf("api returned status %d: %s", e.Status, e.Detail)
}

func (e *APIError) HTTPCode() int {
	return e.Status
}

func (e *APIError) ErrorCode() string {
	return "API_ERROR"
}

func (e *APIError) Message() string {
	if e.Detail != "" {
		return e.Detail
	}

	return http.StatusText(e.Status)
}

func (e *APIError) Details() string {
	return e.Detail
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	apiErr, ok := errors.AsType[*APIError](err)

	return ok && apiErr.Status == status
}

// DetailOr returns the server detail carried by err, or fallback when there is none.
func DetailOr(err error, fallback string) string {
	if apiErr, ok := errors.AsType[*APIError](err); ok && apiErr.Detail != "" {
		return apiErr.Detail
	}

	return fallback
}

// UserMessage returns the static user-facing message for err, never a raw payload.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if appErr, ok := errors.AsType[*BaseError](err); ok {
		return appErr.Message()
	}

	return fallback
}
