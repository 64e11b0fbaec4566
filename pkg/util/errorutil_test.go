package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError_PassthroughDomainError(t *testing.T) {
	original := NewForbidden("no access")
	mapped := ToDomainError(original)
	assert.Equal(t, "FORBIDDEN", mapped.Code)
	assert.Equal(t, http.StatusForbidden, mapped.HTTPStatus)
}

func TestToDomainError_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), NewConflict("dup", nil))
	mapped := ToDomainError(wrapped)
	assert.Equal(t, "CONFLICT", mapped.Code)
}

func TestToDomainError_NoRowsBecomesNotFound(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainError_UniqueViolationBecomesConflict(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	mapped := ToDomainError(pgErr)
	assert.Equal(t, "CONFLICT", mapped.Code)
	assert.Equal(t, "users_email_key", mapped.Details["constraint"])
}

func TestToDomainError_UnknownBecomesInternal(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	// Internal errors never leak the underlying message.
	assert.Equal(t, "internal server error", mapped.Message)
}

func TestToDomainError_Nil(t *testing.T) {
	require.Nil(t, ToDomainError(nil))
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := NewInternalError(cause)
	assert.True(t, errors.Is(err, cause))
}
