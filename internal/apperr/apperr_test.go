package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := New(CodeUserNotFound, "%s not founded", "alice")
	assert.Equal(t, "USER_NOT_FOUND: alice not founded", err.Error())

	bare := &Error{Code: CodeInvalidPassword}
	assert.Equal(t, "INVALID_PASSWORD", bare.Error())
}

func TestCodeOf(t *testing.T) {
	err := New(CodeAlreadyLike, "dup")
	assert.Equal(t, CodeAlreadyLike, CodeOf(err))
	assert.True(t, Is(err, CodeAlreadyLike))
	assert.False(t, Is(err, CodeUserNotFound))

	assert.Equal(t, Code(""), CodeOf(errors.New("plain")))
	assert.Equal(t, Code(""), CodeOf(nil))
}

func TestCodeOfWrapped(t *testing.T) {
	inner := New(CodePostNotFounded, "gone")
	wrapped := fmt.Errorf("handling request: %w", inner)
	assert.Equal(t, CodePostNotFounded, CodeOf(wrapped))
}
