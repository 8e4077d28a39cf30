// Package stack is a LIFO stack over a linked_list.List.
package stack

import (
	"fmt"

	"github.com/cbteal/LinkedList/linked_list"
)

var ErrEmptyStack = fmt.Errorf("empty stack: %w", linked_list.ErrEmptyCollection)

// Stack pushes onto the head of its list, which is the list's highest
// logical index, and pops from there.
type Stack[V comparable] struct {
	list *linked_list.List[V]
}

func New[V comparable](opts ...linked_list.Option) *Stack[V] {
	return &Stack[V]{list: linked_list.New[V](opts...)}
}

func (s *Stack[V]) Push(value V) {
	s.list.Append(value)
}

// Pop removes and returns the most recently pushed value. An empty stack
// returns the zero value and ErrEmptyStack.
func (s *Stack[V]) Pop() (V, error) {
	if s.list.IsEmpty() {
		var zero V
		s.list.Logger().Printf("failed to pop: %v", ErrEmptyStack)
		return zero, ErrEmptyStack
	}
	return s.list.Remove(s.list.Size() - 1)
}

// Insert pushes value. The index is ignored.
func (s *Stack[V]) Insert(value V, index int) {
	s.Push(value)
}

// Remove pops. The index is ignored.
func (s *Stack[V]) Remove(index int) (V, error) {
	return s.Pop()
}

// Delete is not supported on a stack and never changes it.
func (s *Stack[V]) Delete(index int) error {
	err := fmt.Errorf("%w: delete on a stack", linked_list.ErrUnsupportedOperation)
	s.list.Logger().Print(err)
	return err
}

func (s *Stack[V]) Size() int {
	return s.list.Size()
}

func (s *Stack[V]) IsEmpty() bool {
	return s.list.IsEmpty()
}

func (s *Stack[V]) IndexOf(value V) int {
	return s.list.IndexOf(value)
}

func (s *Stack[V]) IndexFunc(match func(V) bool) int {
	return s.list.IndexFunc(match)
}

// String renders the stack top first.
func (s *Stack[V]) String() string {
	return s.list.String()
}
