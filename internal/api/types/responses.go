package types

// ErrorResponse is the body of every non-2xx response. Errors carries the
// field-level detail of a validation failure.
type ErrorResponse struct {
	Message string `json:"message"`
	Errors  string `json:"errors,omitempty"`
}

const ValidationErrorMessage = "Validation error"
