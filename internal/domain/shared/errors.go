package shared

// DomainError represents a classified error produced anywhere in the
// request pipeline. The set of codes is closed; transport status codes
// are derived from the code in exactly one place (interfaces/http/dto).
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes forming the closed taxonomy
const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeStoreError      = "STORE_ERROR"
	CodeConfiguration   = "CONFIGURATION_ERROR"
	CodeInternal        = "INTERNAL"
)

// Common domain errors
var (
	ErrUnauthenticated = NewDomainError(CodeUnauthenticated, "Authentication required")
	ErrForbidden       = NewDomainError(CodeForbidden, "Access to this resource is forbidden")
	ErrInvalidInput    = NewDomainError(CodeInvalidInput, "Invalid input provided")
	ErrStore           = NewDomainError(CodeStoreError, "Store operation failed")
	ErrConfiguration   = NewDomainError(CodeConfiguration, "Server configuration error")
	ErrInternal        = NewDomainError(CodeInternal, "An unexpected error occurred")
)

// Unauthenticated builds an UNAUTHENTICATED error with a specific message
func Unauthenticated(message string) *DomainError {
	return NewDomainError(CodeUnauthenticated, message)
}

// Forbidden builds a FORBIDDEN error with the store-reported message
func Forbidden(message string) *DomainError {
	return NewDomainError(CodeForbidden, message)
}

// InvalidInput builds an INVALID_INPUT error with a specific message
func InvalidInput(message string) *DomainError {
	return NewDomainError(CodeInvalidInput, message)
}

// StoreError builds a STORE_ERROR with the store-reported message
func StoreError(message string) *DomainError {
	return NewDomainError(CodeStoreError, message)
}
