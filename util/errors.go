package util

import (
	"errors"

	"github.com/cbteal/LinkedList/linked_list"
	"github.com/cbteal/LinkedList/script"
)

const (
	ERROR_BAD_KIND           = 201
	ERROR_BAD_SCRIPT         = 202
	ERROR_BAD_PATTERN        = 203
	ERROR_INDEX_OUT_OF_RANGE = 210
	ERROR_EMPTY_COLLECTION   = 211
	ERROR_UNSUPPORTED        = 212
)

type ErrorWithCode struct {
	StatusCode    int
	InternalError error
}

var _ error = &ErrorWithCode{}

func (e ErrorWithCode) Error() string {
	return e.InternalError.Error()
}

func (e ErrorWithCode) Unwrap() error {
	return e.InternalError
}

// WithCode attaches the exit status matching err, or 1 when nothing matches.
func WithCode(err error) *ErrorWithCode {
	code := 1
	switch {
	case errors.Is(err, script.ErrBadKind):
		code = ERROR_BAD_KIND
	case errors.Is(err, script.ErrBadScript):
		code = ERROR_BAD_SCRIPT
	case errors.Is(err, script.ErrBadPattern):
		code = ERROR_BAD_PATTERN
	case errors.Is(err, linked_list.ErrIndexOutOfRange):
		code = ERROR_INDEX_OUT_OF_RANGE
	case errors.Is(err, linked_list.ErrEmptyCollection):
		code = ERROR_EMPTY_COLLECTION
	case errors.Is(err, linked_list.ErrUnsupportedOperation):
		code = ERROR_UNSUPPORTED
	}
	return &ErrorWithCode{StatusCode: code, InternalError: err}
}
