package linked_list

import "errors"

var (
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrEmptyCollection      = errors.New("empty collection")
	ErrUnsupportedOperation = errors.New("unsupported operation")
)
