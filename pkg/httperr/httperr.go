package httperr

import (
	"errors"
	"net/http"
	"runtime/debug"
)

// Error — ошибка с HTTP статусом и стеком, захваченным в месте возникновения.
type Error struct {
	Code    int
	Message string
	Err     error
	Stack   []byte
}

func New(code int, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Stack:   debug.Stack(),
	}
}

func Wrap(err error, code int, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
		Stack:   debug.Stack(),
	}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode возвращает код из ошибки, либо 500,
// если кода нет или он вне допустимого диапазона.
func StatusCode(err error) int {
	var herr *Error
	if errors.As(err, &herr) && herr.Code >= 100 && herr.Code < 600 {
		return herr.Code
	}
	return http.StatusInternalServerError
}
