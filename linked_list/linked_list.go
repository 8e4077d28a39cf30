// Package linked_list implements a singly linked list addressed by logical
// index.
//
// New values are linked in front of the head, and logical indices count from
// the other end: the earliest appended value still in the list is at index 0
// and the head is at index Size()-1.
//
// Operations that fail log one diagnostic line, leave the list unchanged and
// return a neutral result together with the error.
package linked_list

import (
	"fmt"
	"iter"
	"log"
	"os"
	"strings"

	"github.com/goose-lang/std"
)

type node[V comparable] struct {
	value V
	next  *node[V]
}

type List[V comparable] struct {
	head   *node[V]
	logger *log.Logger
}

type Option func(*config)

type config struct {
	logger *log.Logger
}

// WithLogger sends diagnostics for failed operations to logger. A nil
// logger leaves the default in place.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func New[V comparable](opts ...Option) *List[V] {
	c := config{logger: log.New(os.Stderr, "", log.LstdFlags)}
	for _, opt := range opts {
		opt(&c)
	}
	return &List[V]{logger: c.logger}
}

// Logger returns the sink for diagnostics, so types built on a List can
// report through it. A zero List reports to the standard logger.
func (l *List[V]) Logger() *log.Logger {
	if l.logger == nil {
		return log.Default()
	}
	return l.logger
}

func (l *List[V]) fail(op string, err error) error {
	l.Logger().Printf("failed to %s: %v", op, err)
	return err
}

// Append links value in front of the current head.
func (l *List[V]) Append(value V) {
	l.head = &node[V]{value: value, next: l.head}
}

// Size counts the nodes reachable from the head.
func (l *List[V]) Size() int {
	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
	}
	return count
}

func (l *List[V]) IsEmpty() bool {
	return l.head == nil
}

// IndexIsValid accepts 0 <= index <= Size(). Size() itself is accepted since
// Insert treats it as an append.
func (l *List[V]) IndexIsValid(index int) error {
	if index < 0 {
		return fmt.Errorf("%w: index %d is negative", ErrIndexOutOfRange, index)
	}
	if size := l.Size(); index > size {
		return fmt.Errorf("%w: index %d is greater than size %d", ErrIndexOutOfRange, index, size)
	}
	return nil
}

// nodeAt walks from the head to logical index. The list must hold size
// nodes and index must be below size.
func (l *List[V]) nodeAt(index int, size int) *node[V] {
	position := l.head
	for i := size - 1; i > index; i-- {
		position = position.next
	}
	std.Assert(position != nil)
	return position
}

// Insert stores value at logical index. On an empty list, or when index is
// Size(), value is appended. Otherwise the value already at index is
// overwritten and the size is unchanged.
func (l *List[V]) Insert(value V, index int) error {
	if err := l.IndexIsValid(index); err != nil {
		return l.fail("insert", err)
	}

	size := l.Size()
	switch {
	case size == 0 || index == size:
		l.Append(value)
	case size == 1:
		l.head = &node[V]{value: value, next: l.head.next}
	default:
		l.nodeAt(index, size).value = value
	}
	return nil
}

// checkRemovable validates index for Delete and Remove and returns the
// current size. Unlike Insert, index == Size() is rejected.
func (l *List[V]) checkRemovable(index int) (int, error) {
	if err := l.IndexIsValid(index); err != nil {
		return 0, err
	}
	size := l.Size()
	if size == 0 {
		return 0, fmt.Errorf("%w: list has no nodes", ErrEmptyCollection)
	}
	if index == size {
		return 0, fmt.Errorf("%w: index %d equals size", ErrIndexOutOfRange, index)
	}
	return size, nil
}

func (l *List[V]) Delete(index int) error {
	size, err := l.checkRemovable(index)
	if err != nil {
		return l.fail("delete", err)
	}

	if size == 1 {
		l.head = nil
		return nil
	}
	l.shiftList(index, size)
	return nil
}

// Remove unlinks the node at logical index and returns its value. On failure
// the zero value is returned.
func (l *List[V]) Remove(index int) (V, error) {
	var value V
	size, err := l.checkRemovable(index)
	if err != nil {
		return value, l.fail("remove", err)
	}

	if size == 1 {
		value = l.head.value
		l.head = nil
		return value, nil
	}
	value = l.nodeAt(index, size).value
	l.shiftList(index, size)
	return value, nil
}

// shiftList unlinks the node at logical index from a list of size >= 2
// nodes.
func (l *List[V]) shiftList(index int, size int) {
	std.Assert(size >= 2)

	if index == size-1 {
		l.head = l.head.next
		return
	}

	// stop at the node linking to index
	position := l.head
	for i := size - 1; i > index+1; i-- {
		position = position.next
	}
	std.Assert(position.next != nil)
	position.next = position.next.next
}

// IndexOf returns the logical index of the most recently appended value equal
// to value, or -1.
func (l *List[V]) IndexOf(value V) int {
	return l.IndexFunc(func(v V) bool { return v == value })
}

// IndexFunc is like IndexOf but reports the first value, walking from the
// head, for which match returns true.
func (l *List[V]) IndexFunc(match func(V) bool) int {
	i := l.Size() - 1
	for n := l.head; n != nil; n = n.next {
		if match(n.value) {
			return i
		}
		i--
	}
	return -1
}

// All yields the values from the head, most recently appended first.
func (l *List[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// String renders each value followed by a space, head first.
func (l *List[V]) String() string {
	var b strings.Builder
	for v := range l.All() {
		fmt.Fprintf(&b, "%v ", v)
	}
	return b.String()
}
