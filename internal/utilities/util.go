// Package utilities contain utility code that use across the package
package utilities

// ErrorResponse is the JSON body for a single error message
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON body for a plain success message
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse maps field names to what is wrong with them.
// Returned with status 400 and never persisted.
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}
