package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorIs(t *testing.T) {
	notFound := NewNotFoundError("user not found", true, nil)

	assert.True(t, errors.Is(notFound, ErrNotFound))
	assert.False(t, errors.Is(notFound, ErrAlreadyExists))
	assert.True(t, errors.Is(notFound, &Error{}))
	assert.Equal(t, "NOT_FOUND", notFound.Code)
}

func TestErrorCustomCode(t *testing.T) {
	code := "USER_ALREADY_EXISTS"
	err := NewAlreadyExistsError("A user with this Email already exists", true, &code)

	assert.Equal(t, KindAlreadyExists, err.Kind)
	assert.Equal(t, code, err.Code)
	assert.True(t, err.Override)
}

func TestErrorCopies(t *testing.T) {
	driverErr := errors.New("connection refused")
	base := NewUnavailableError("database unavailable")

	wrapped := base.WithCause(driverErr)
	renamed := wrapped.WithMessage("try again later")

	assert.Nil(t, base.Unwrap())
	assert.ErrorIs(t, wrapped, driverErr)
	assert.ErrorIs(t, renamed, driverErr)
	assert.Equal(t, "try again later", renamed.Error())
	assert.Equal(t, "database unavailable", wrapped.Error())
}

func TestQueryError(t *testing.T) {
	driverErr := errors.New("syntax error at or near \"WHER\"")
	qe := &QueryError{
		Op:    "property.get_all",
		Query: "SELECT 1",
		Err:   NewInternalError().WithCause(driverErr),
	}

	var err error = fmt.Errorf("search failed: %w", qe)

	require.True(t, IsQueryError(err))
	assert.ErrorIs(t, err, driverErr)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, KindInternal, KindOf(err))
	assert.Contains(t, qe.Error(), "property.get_all")

	assert.False(t, IsQueryError(driverErr))
	assert.Equal(t, KindInternal, KindOf(driverErr))
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
}
