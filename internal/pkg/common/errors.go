package common

import (
	"errors"
	"net/http"
)

// ErrorResponse is the JSON body of every API error
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// CustomError carries an error code and the HTTP status it maps to
type CustomError struct {
	Code    string
	Message string
	Err     error
	Status  int
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// Is matches on the error code so wrapped instances compare equal to the predefined errors.
func (e *CustomError) Is(target error) bool {
	t, ok := target.(*CustomError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewError creates a CustomError
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// Wrap copies a predefined error and attaches the cause
func (e *CustomError) Wrap(err error) *CustomError {
	return NewError(e.Code, e.Message, e.Status, err)
}

// ValidationError is returned when user input is rejected before any network call
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError creates a ValidationError
func NewValidationError(message string) error {
	return &ValidationError{
		message: message,
	}
}

// IsValidationError reports whether err is or wraps a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AsCustomError unwraps err into a CustomError if it holds one
func AsCustomError(err error) (*CustomError, bool) {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

const (
	// client errors (4xx)
	ErrCodeInvalidRequest   = "INVALID_REQUEST"    // 400
	ErrCodeUnauthorized     = "UNAUTHORIZED"       // 401
	ErrCodeNotFound         = "NOT_FOUND"          // 404
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED" // 405
	ErrCodeRequestTimeout   = "REQUEST_TIMEOUT"    // 408
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"  // 429

	// server errors (5xx)
	ErrCodeInternalError      = "INTERNAL_ERROR"      // 500
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE" // 503
	ErrCodeGatewayTimeout     = "GATEWAY_TIMEOUT"     // 504

	// generation failures
	ErrCodeServiceMisconfigured = "SERVICE_MISCONFIGURED"
	ErrCodeRateLimited          = "RATE_LIMITED"
	ErrCodeEmptyResponse        = "EMPTY_RESPONSE"
	ErrCodeConnectivityFailure  = "CONNECTIVITY_FAILURE"
	ErrCodeUpstreamError        = "UPSTREAM_ERROR"

	// persistence failures
	ErrCodePersistence = "PERSISTENCE_ERROR"
)

var (
	ErrInvalidRequest   = NewError(ErrCodeInvalidRequest, "invalid request", http.StatusBadRequest, nil)
	ErrUnauthorized     = NewError(ErrCodeUnauthorized, "unauthorized", http.StatusUnauthorized, nil)
	ErrNotFound         = NewError(ErrCodeNotFound, "resource not found", http.StatusNotFound, nil)
	ErrMethodNotAllowed = NewError(ErrCodeMethodNotAllowed, "method not allowed", http.StatusMethodNotAllowed, nil)
	ErrRequestTimeout   = NewError(ErrCodeRequestTimeout, "request timeout", http.StatusRequestTimeout, nil)

	ErrInternalError      = NewError(ErrCodeInternalError, "internal server error", http.StatusInternalServerError, nil)
	ErrServiceUnavailable = NewError(ErrCodeServiceUnavailable, "service temporarily unavailable, please try again later", http.StatusServiceUnavailable, nil)
	ErrGatewayTimeout     = NewError(ErrCodeGatewayTimeout, "gateway timeout", http.StatusGatewayTimeout, nil)

	// generation client categories, one per upstream condition
	ErrGenerationInvalidRequest = NewError(ErrCodeInvalidRequest, "invalid request, please check your input and try again", http.StatusBadRequest, nil)
	ErrServiceMisconfigured     = NewError(ErrCodeServiceMisconfigured, "service authentication error, please contact support", http.StatusBadGateway, nil)
	ErrRateLimited              = NewError(ErrCodeRateLimited, "too many requests, please wait a moment and try again", http.StatusTooManyRequests, nil)
	ErrEmptyResponse            = NewError(ErrCodeEmptyResponse, "empty response from AI, please try again", http.StatusBadGateway, nil)
	ErrConnectivityFailure      = NewError(ErrCodeConnectivityFailure, "failed to connect to AI service, please check your connection and try again", http.StatusBadGateway, nil)
	ErrUpstreamError            = NewError(ErrCodeUpstreamError, "AI service error", http.StatusBadGateway, nil)

	ErrPersistence   = NewError(ErrCodePersistence, "failed to access the record store", http.StatusInternalServerError, nil)
	ErrCacheMiss     = NewError("CACHE_MISS", "cache miss", http.StatusNotFound, nil)
	ErrCacheFull     = NewError("CACHE_FULL", "cache is full", http.StatusServiceUnavailable, nil)
	ErrCacheDisabled = NewError("CACHE_DISABLED", "cache is disabled", http.StatusServiceUnavailable, nil)
)
