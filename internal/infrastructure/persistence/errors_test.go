package persistence

import (
	"errors"
	"testing"

	"github.com/bookkeep/backend/internal/domain/shared"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyStoreError(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, classifyStoreError(nil))
	})

	t.Run("insufficient privilege code maps to forbidden", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "42501", Message: "new row violates row-level security policy"}

		err := classifyStoreError(pgErr)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeForbidden, domainErr.Code)
	})

	t.Run("permission message maps to forbidden", func(t *testing.T) {
		err := classifyStoreError(errors.New("ERROR: permission denied for table transactions"))

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeForbidden, domainErr.Code)
	})

	t.Run("row-level security message maps to forbidden", func(t *testing.T) {
		err := classifyStoreError(errors.New(`new row violates row-level security policy for table "documents"`))

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeForbidden, domainErr.Code)
	})

	t.Run("other store failures map to store error", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"}

		err := classifyStoreError(pgErr)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeStoreError, domainErr.Code)
	})

	t.Run("already classified errors pass through unchanged", func(t *testing.T) {
		original := shared.InvalidInput("bad tenant id")

		err := classifyStoreError(original)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, shared.CodeInvalidInput, domainErr.Code)
		assert.Equal(t, "bad tenant id", domainErr.Message)
	})
}

func TestIsPermissionDenied(t *testing.T) {
	assert.True(t, isPermissionDenied(&pgconn.PgError{Code: "42501"}))
	assert.True(t, isPermissionDenied(errors.New("Permission denied")))
	assert.True(t, isPermissionDenied(errors.New("blocked by row-level security")))
	assert.False(t, isPermissionDenied(errors.New("connection refused")))
	assert.False(t, isPermissionDenied(&pgconn.PgError{Code: "23505", Message: "duplicate key"}))
}
