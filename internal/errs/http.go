package errs

import "strings"

// FieldError points at a single request field.
//
//	{ "field": "email", "error": "is invalid" }
type FieldError struct {
	// Field is the request key the error relates to (e.g. "email").
	Field string `json:"field"`

	// Error is the human-readable problem with that field.
	Error string `json:"error"`
}

// ActionType is a string-based enum describing what the client should do next.
type ActionType string

const (
	// ActionTypeRedirect tells the client to navigate to Action.Value.
	ActionTypeRedirect ActionType = "redirect"
)

// Action is an optional follow-up instruction for the client.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the error type handlers return and the global error
// handler serializes.
//
// Fields:
//   - Code: machine-friendly code (e.g. "MISSING_PARAM").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: the message is safe to show to end users as-is.
//   - Errors: per-field details.
//   - Action: optional client instruction.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	Errors []FieldError `json:"errors"`

	Action *Action `json:"action"`
}

// Error returns the message so logging an *HTTPError prints something readable.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is an *HTTPError. Only the type is compared;
// Code and Status are ignored.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a copy of e with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Action:   e.Action,
	}
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
