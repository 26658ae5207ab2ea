package dto

import (
	"net/http"
	"testing"

	"github.com/bookkeep/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, GetHTTPStatus(shared.CodeUnauthenticated))
	assert.Equal(t, http.StatusForbidden, GetHTTPStatus(shared.CodeForbidden))
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(shared.CodeInvalidInput))
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(shared.CodeStoreError))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(shared.CodeConfiguration))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(shared.CodeInternal))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("SOMETHING_ELSE"))
}
