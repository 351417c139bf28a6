package errs

import "strings"

// FieldError describes why a single input field was rejected.
//
//	{ "field": "occupancyDate", "error": "must be a date in YYYY-MM-DD format" }
type FieldError struct {
	// Field is the JSON name of the rejected field.
	Field string `json:"field"`

	// Error is the human-readable reason.
	Error string `json:"error"`
}

// HTTPError is the domain error of the API.
//
// It is serialized as the response body by the global error handler, so
// the field set doubles as the error response schema:
//   - Code: machine-friendly code (e.g. "BAD_REQUEST", "FLAT_NOT_FOUND").
//   - Message: human-friendly message.
//   - Status: HTTP status code written to the client.
//   - Override: whether a client UI may show Message verbatim.
//   - Errors: field-level validation errors, if any.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	Errors []FieldError `json:"errors"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
//
// Only the type is compared, so errors.Is(err, &HTTPError{}) answers
// "is this a domain error at all" regardless of status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// MakeUpperCaseWithUnderscores turns status text into an error code.
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
