package sqlerr

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleErrorPgErrors(t *testing.T) {
	tests := []struct {
		name        string
		pgErr       *pgconn.PgError
		wantKind    errs.Kind
		wantCode    string
		wantMessage string
	}{
		{
			name: "unique email",
			pgErr: &pgconn.PgError{
				Severity:       "ERROR",
				Code:           "23505",
				TableName:      "users",
				ConstraintName: "users_email_key",
			},
			wantKind:    errs.KindAlreadyExists,
			wantCode:    "USER_ALREADY_EXISTS",
			wantMessage: "A User with this Email already exists",
		},
		{
			name: "reservation for unknown property",
			pgErr: &pgconn.PgError{
				Severity:   "ERROR",
				Code:       "23503",
				TableName:  "reservations",
				ColumnName: "property_id",
			},
			wantKind:    errs.KindInvalid,
			wantCode:    "RESERVATION_NOT_FOUND",
			wantMessage: "The referenced Property does not exist",
		},
		{
			name: "missing title",
			pgErr: &pgconn.PgError{
				Severity:   "ERROR",
				Code:       "23502",
				TableName:  "properties",
				ColumnName: "title",
			},
			wantKind:    errs.KindInvalid,
			wantCode:    "PROPERTY_REQUIRED",
			wantMessage: "The Title is required",
		},
		{
			name: "syntax error",
			pgErr: &pgconn.PgError{
				Severity: "ERROR",
				Code:     "42601",
				Message:  `syntax error at or near "WHER"`,
			},
			wantKind:    errs.KindInternal,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "An error occurred while processing your request",
		},
		{
			name: "admin shutdown",
			pgErr: &pgconn.PgError{
				Severity: "FATAL",
				Code:     "08006",
			},
			wantKind:    errs.KindUnavailable,
			wantCode:    "DATABASE_UNAVAILABLE",
			wantMessage: "The database is unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HandleError(tt.pgErr)

			var appErr *errs.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantKind, appErr.Kind)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, tt.wantMessage, appErr.Message)

			// the driver error stays reachable
			var pgErr *pgconn.PgError
			require.ErrorAs(t, err, &pgErr)
			assert.Equal(t, tt.pgErr.Code, pgErr.Code)
			assert.NotEqual(t, Other, ErrCode(err))
		})
	}
}

func TestHandleErrorNotNullFieldErrors(t *testing.T) {
	err := HandleError(&pgconn.PgError{Code: "23502", TableName: "users", ColumnName: "Email"})

	var appErr *errs.Error
	require.ErrorAs(t, err, &appErr)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "email", appErr.Errors[0].Field)
}

func TestHandleErrorNoRows(t *testing.T) {
	t.Run("with table hint", func(t *testing.T) {
		err := HandleError(NotFound("users"))
		assert.ErrorIs(t, err, errs.ErrNotFound)
		assert.ErrorIs(t, err, pgx.ErrNoRows)
		assert.Equal(t, "User not found", err.Error())
	})

	t.Run("bare", func(t *testing.T) {
		err := HandleError(pgx.ErrNoRows)
		assert.ErrorIs(t, err, errs.ErrNotFound)
		assert.Equal(t, "Resource not found", err.Error())
	})
}

func TestHandleErrorConnectivity(t *testing.T) {
	err := HandleError(context.DeadlineExceeded)
	assert.ErrorIs(t, err, errs.ErrUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHandleErrorPassThrough(t *testing.T) {
	assert.NoError(t, HandleError(nil))

	appErr := errs.NewNotFoundError("gone", true, nil)
	assert.Same(t, appErr, HandleError(appErr))

	other := errors.New("boom")
	err := HandleError(other)
	assert.ErrorIs(t, err, errs.ErrInternal)
	assert.ErrorIs(t, err, other)
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap("user.get", "SELECT 1", nil))

	err := Wrap("user.get", "SELECT 1", pgx.ErrNoRows)

	var qe *errs.QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, "user.get", qe.Op)
	assert.Equal(t, "SELECT 1", qe.Query)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_users_email"))
	assert.Equal(t, "email", extractColumnForUniqueViolation("users_email_key"))
	assert.Equal(t, "", extractColumnForUniqueViolation("users_pkey"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
}

func TestMapSeverity(t *testing.T) {
	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityUnknown, MapSeverity("LOG"))
}
