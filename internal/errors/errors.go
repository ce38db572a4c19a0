package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation is returned when a field is missing or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrAuth is returned when credentials do not match a stored user.
	ErrAuth = errors.New("incorrect email or password")
	// ErrNotFound is returned when no user is registered under an email.
	ErrNotFound = errors.New("user not found")
	// ErrConflict is returned when an email is already registered.
	ErrConflict = errors.New("email already registered")
	// ErrUnknownPanel is returned when switching to a panel that does not exist.
	ErrUnknownPanel = errors.New("unknown panel")
	// ErrUnknownField is returned when toggling a field that is not a password field.
	ErrUnknownField = errors.New("unknown password field")
)

// FormError is a user-facing failure of a form submission. Message is the
// inline text shown on the form, Toast the short notification text.
type FormError struct {
	Kind    error
	Field   string
	Message string
	Toast   string
}

func (e *FormError) Error() string {
	return e.Message
}

// Unwrap lets errors.Is match the kind sentinel.
func (e *FormError) Unwrap() error {
	return e.Kind
}

// NewFormError creates a FormError of the given kind.
func NewFormError(kind error, field, message, toast string) *FormError {
	return &FormError{
		Kind:    kind,
		Field:   field,
		Message: message,
		Toast:   toast,
	}
}

// AsFormError extracts a FormError from err, if any.
func AsFormError(err error) (*FormError, bool) {
	var fe *FormError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Field string `json:"field,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Field      string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
		Field: e.Field,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var httpErr *HTTPError
	switch {
	case errors.Is(err, ErrValidation):
		httpErr = NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	case errors.Is(err, ErrAuth):
		httpErr = NewHTTPError(http.StatusUnauthorized, err.Error(), "AUTH_ERROR")
	case errors.Is(err, ErrNotFound):
		httpErr = NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrConflict):
		httpErr = NewHTTPError(http.StatusConflict, err.Error(), "CONFLICT")
	case errors.Is(err, ErrUnknownPanel):
		httpErr = NewHTTPError(http.StatusNotFound, err.Error(), "UNKNOWN_PANEL")
	case errors.Is(err, ErrUnknownField):
		httpErr = NewHTTPError(http.StatusNotFound, err.Error(), "UNKNOWN_FIELD")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
	if fe, ok := AsFormError(err); ok {
		httpErr.Field = fe.Field
	}
	return httpErr
}
