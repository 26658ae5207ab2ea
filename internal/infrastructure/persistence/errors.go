package persistence

import (
	"errors"
	"strings"

	"github.com/bookkeep/backend/internal/domain/shared"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgInsufficientPrivilege is the PostgreSQL error code raised when a
// row-level security policy denies a statement.
const pgInsufficientPrivilege = "42501"

// classifyStoreError translates a store failure into the closed domain
// taxonomy. This is the single point where the store's allow/deny
// outcome becomes an application decision: policy denials map to
// FORBIDDEN, everything else the store reports maps to STORE_ERROR.
// Errors that were already classified pass through untouched.
func classifyStoreError(err error) error {
	if err == nil {
		return nil
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}

	if isPermissionDenied(err) {
		return shared.Forbidden(err.Error())
	}
	return shared.StoreError(err.Error())
}

// isPermissionDenied recognizes a policy/permission denial either by
// the SQLSTATE code or, like the upstream contract, by a "permission"
// substring in the message.
func isPermissionDenied(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgInsufficientPrivilege {
			return true
		}
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "permission") || strings.Contains(msg, "row-level security")
}
