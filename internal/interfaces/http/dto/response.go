package dto

import "github.com/bookkeep/backend/internal/domain/shared"

// ErrorResponse is the body of every non-2xx response. Error carries
// the human-readable message, Code the taxonomy code, and Details an
// optional machine-readable payload (per-field violations for
// validation failures).
type ErrorResponse struct {
	Error   string             `json:"error"`
	Code    string             `json:"code,omitempty"`
	Details []ValidationDetail `json:"details,omitempty"`
}

// ValidationDetail describes one field-level validation violation
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: message,
		Code:  code,
	}
}

// NewValidationErrorResponse creates a 400 body carrying the full list
// of field violations.
func NewValidationErrorResponse(message string, details []ValidationDetail) ErrorResponse {
	return ErrorResponse{
		Error:   message,
		Code:    shared.CodeInvalidInput,
		Details: details,
	}
}

// HealthResponse is the body of the unauthenticated health endpoint
type HealthResponse struct {
	OK bool `json:"ok"`
}
