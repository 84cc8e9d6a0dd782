package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmployeeNotFoundIsResourceNotFound(t *testing.T) {
	err := fmt.Errorf("update employee 7: %w", ErrEmployeeNotFound)

	assert.True(t, errors.Is(err, ErrEmployeeNotFound))
	assert.True(t, errors.Is(err, ErrResourceNotFound))
	assert.Equal(t, "update employee 7: employee not found", err.Error())
}

func TestWrapKeepsOperationAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap("employees.list", cause)

	assert.Equal(t, "employees.list", Operation(err))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "connection refused", err.Error())
	assert.Nil(t, Wrap("employees.list", nil))
	assert.Equal(t, "", Operation(cause))
}

func TestDetailsFoundThroughWrapping(t *testing.T) {
	err := NewCustomError(ErrInvalidID, "invalid employee id").WithDetails(map[string]interface{}{"id": "abc"})
	wrapped := Wrap("employees.delete", fmt.Errorf("parse: %w", err))

	assert.Equal(t, map[string]interface{}{"id": "abc"}, Details(wrapped))
	assert.True(t, errors.Is(wrapped, ErrInvalidID))
	assert.Nil(t, Details(Wrap("employees.list", errors.New("timeout"))))
	assert.Nil(t, Details(nil))
}
