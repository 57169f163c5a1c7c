package usecase

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrorInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrorNotFound       ErrorCode = "NOT_FOUND"
	ErrorBelowThreshold ErrorCode = "BELOW_THRESHOLD"
	ErrorInternal       ErrorCode = "INTERNAL_ERROR"
)

// Error is returned by AwardService for every failed lookup. Code selects the
// response class; Reason is a stable, log-friendly detail.
type Error struct {
	Code   ErrorCode
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("usecase: %s (%s)", e.Code, e.Reason)
	}
	return fmt.Sprintf("usecase: %s (%s): %v", e.Code, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(code ErrorCode, reason string, err error) *Error {
	return &Error{Code: code, Reason: reason, Err: err}
}

// CodeOf reports the ErrorCode carried by err, or ErrorInternal when err is not
// a use case error.
func CodeOf(err error) ErrorCode {
	var usecaseErr *Error
	if errors.As(err, &usecaseErr) && usecaseErr != nil {
		return usecaseErr.Code
	}
	return ErrorInternal
}
