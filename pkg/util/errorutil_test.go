package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorMapsNoRowsToNotFound(t *testing.T) {
	de := ToDomainError(fmt.Errorf("get employee: %w", pgx.ErrNoRows))
	require.NotNil(t, de)
	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
	assert.Equal(t, "NOT_FOUND", de.Code)
}

func TestToDomainErrorMapsConstraintViolations(t *testing.T) {
	for _, code := range []string{"23502", "23503", "23505", "23514"} {
		t.Run(code, func(t *testing.T) {
			err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: code, ConstraintName: "employee_national_id_key"})
			de := ToDomainError(err)
			require.NotNil(t, de)
			assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
			assert.Equal(t, IntegrityMessage, de.Message)
			assert.Equal(t, "employee_national_id_key", de.Details["constraint"])
		})
	}
}

func TestToDomainErrorOtherPgErrorsAreInternal(t *testing.T) {
	de := ToDomainError(&pgconn.PgError{Code: "40001"})
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
}

func TestToDomainErrorKeepsDomainErrors(t *testing.T) {
	orig := NewBadRequest("can not terminate active employee.")
	de := ToDomainError(fmt.Errorf("wrapped: %w", orig))
	assert.Same(t, orig, error(de))
}

func TestMapNotFoundNamesResource(t *testing.T) {
	err := MapNotFound(pgx.ErrNoRows, "employee")
	de := ToDomainError(err)
	assert.Equal(t, "employee not found.", de.Message)
	assert.True(t, IsNotFound(err))
	assert.NoError(t, MapNotFound(nil, "employee"))
	assert.False(t, IsNotFound(errors.New("boom")))
}
