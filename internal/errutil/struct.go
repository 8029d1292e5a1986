package errutil

import "errors"

type InternalError struct {
	err error
}

func NewInternalError(msg string) InternalError {
	return InternalError{err: errors.New(msg)}
}

func (e InternalError) Error() string {
	return e.err.Error()
}

// IsUsage は利用者の入力に起因するエラーかどうかを返す
func IsUsage(err error) bool {
	for _, target := range []error{ErrInvalidDay, ErrInvalidTime, ErrInvalidBlock, ErrUnknownShow, ErrUnknownChannel} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
