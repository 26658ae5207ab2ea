package dto

import (
	"net/http"

	"github.com/bookkeep/backend/internal/domain/shared"
)

// errorCodeHTTPStatus maps the closed domain error taxonomy to HTTP
// status codes. This is the only place a code becomes a status.
var errorCodeHTTPStatus = map[string]int{
	shared.CodeUnauthenticated: http.StatusUnauthorized,
	shared.CodeForbidden:       http.StatusForbidden,
	shared.CodeInvalidInput:    http.StatusBadRequest,
	shared.CodeStoreError:      http.StatusBadRequest,
	shared.CodeConfiguration:   http.StatusInternalServerError,
	shared.CodeInternal:        http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Unknown codes answer 500: an unclassified failure must not masquerade
// as a client error.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
