package apperr

import (
	"errors"
	"fmt"
)

// Code identifies a named failure condition of the service layer.
type Code string

const (
	CodeUserNotFound       Code = "USER_NOT_FOUND"
	CodePostNotFounded     Code = "POST_NOT_FOUNDED"
	CodeInvalidPermission  Code = "INVALID_PERMISSION"
	CodeAlreadyLike        Code = "ALREADY_LIKE"
	CodeDuplicatedUserName Code = "DUPLICATED_USER_NAME"
	CodeInvalidPassword    Code = "INVALID_PASSWORD"
)

// Storage-level sentinels. Repositories translate driver errors into these
// so services can map them onto the codes above.
var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicated = errors.New("duplicate record")
)

// Error is a coded service error with a human-readable detail message.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the code from err, or "" if err carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
