package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := ValidationError("already signed up")

	assert.Equal(t, TypeValidation, err.Type)
	assert.Equal(t, "already signed up", err.Message)
	assert.Nil(t, err.Cause)
	assert.NotNil(t, err.Context)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())
	assert.Contains(t, err.Error(), "validation")
	assert.Contains(t, err.Error(), "already signed up")
}

func TestNotFoundError(t *testing.T) {
	err := NotFoundError("Activity not found")

	assert.Equal(t, TypeNotFound, err.Type)
	assert.Equal(t, "Activity not found", err.Message)
	assert.Nil(t, err.Cause)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus())
	assert.Contains(t, err.Error(), "not_found")
}

func TestInternalError(t *testing.T) {
	cause := fmt.Errorf("store unavailable")
	err := InternalError("failed to list activities", cause)

	assert.Equal(t, TypeInternal, err.Type)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus())
	assert.Contains(t, err.Error(), "store unavailable")
}

func TestInternalErrorWithoutCause(t *testing.T) {
	err := InternalError("something went wrong", nil)

	assert.Nil(t, err.Cause)
	assert.NotContains(t, err.Error(), "<nil>")
}

func TestWithContext(t *testing.T) {
	err := NotFoundError("Activity not found")
	err = err.WithContext("activity", "Chess Club")
	err = err.WithField("email", "alex@mergington.edu")

	assert.Len(t, err.Context, 2)
	assert.Equal(t, "Chess Club", err.Context["activity"])
	assert.Equal(t, "alex@mergington.edu", err.Context["email"])
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := InternalError("wrapper", cause)

	assert.ErrorIs(t, err, cause)
}

func TestToResponse_DetailOnly(t *testing.T) {
	err := NotFoundError("Activity not found").WithField("activity", "Chess Club")

	resp := err.ToResponse()
	assert.Equal(t, "Activity not found", resp.Detail)
}

func TestAsStructuredError_PassesThrough(t *testing.T) {
	original := ValidationError("not signed up")

	converted := AsStructuredError(original)
	require.Same(t, original, converted)
}

func TestAsStructuredError_WrapsPlainError(t *testing.T) {
	plain := errors.New("boom")

	converted := AsStructuredError(plain)
	require.NotNil(t, converted)
	assert.Equal(t, TypeInternal, converted.Type)
	assert.ErrorIs(t, converted, plain)
}

func TestAsStructuredError_Nil(t *testing.T) {
	assert.Nil(t, AsStructuredError(nil))
}
