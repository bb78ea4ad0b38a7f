package errs

import (
	"net/http"
)

// statusCode turns an HTTP status into its machine code, e.g. 404 -> "NOT_FOUND".
func statusCode(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
//   - code: optional custom code string (if nil, defaults to "BAD_REQUEST")
//   - errors: optional slice of field errors (validation errors)
func NewBadRequestError(message string, override bool, code *string, errors []FieldError) *HTTPError {
	formattedCode := statusCode(http.StatusBadRequest)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := statusCode(http.StatusNotFound)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewTooManyRequestsError creates a 429 Too Many Requests HTTPError.
func NewTooManyRequestsError(message string) *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusTooManyRequests),
		Message:  message,
		Status:   http.StatusTooManyRequests,
		Override: true,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, never the internal error.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusInternalServerError),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// FromStatus creates an HTTPError for an arbitrary status, using message
// or the status text when message is empty.
func FromStatus(status int, message string) *HTTPError {
	if message == "" {
		message = http.StatusText(status)
	}

	return &HTTPError{
		Code:    statusCode(status),
		Message: message,
		Status:  status,
	}
}
