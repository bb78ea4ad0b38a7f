// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures..
// (e.g. FieldErrors for request payloads or HTTPError for API responses)..
// to ensure the client receive meaningful, actionable, and consistent..
// error messages.
//
// - Return consistent error shapes to API clients (JSON).
// - Support field-level validation errors.
// - Provide errors that play nicely with Go's standard errors package.
package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "price", "error": "must be greater than 0" }
type FieldError struct {
	// Field is the wire name of the offending field (e.g. "images[0].url").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// It is designed to be serialized directly to JSON.
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: tells clients the message is safe to show as-is.
//   - Errors: list of per-field errors (validation).
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
