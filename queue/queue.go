// Package queue is a FIFO queue over a linked_list.List.
package queue

import (
	"fmt"

	"github.com/cbteal/LinkedList/linked_list"
)

var ErrEmptyQueue = fmt.Errorf("empty queue: %w", linked_list.ErrEmptyCollection)

// Queue enqueues at the head of its list and dequeues at logical index 0,
// the earliest value still queued.
type Queue[V comparable] struct {
	list *linked_list.List[V]
}

func New[V comparable](opts ...linked_list.Option) *Queue[V] {
	return &Queue[V]{list: linked_list.New[V](opts...)}
}

func (q *Queue[V]) Enqueue(value V) {
	q.list.Append(value)
}

// Dequeue removes and returns the earliest enqueued value. An empty queue
// returns the zero value and ErrEmptyQueue.
func (q *Queue[V]) Dequeue() (V, error) {
	if q.list.Size() <= 0 {
		var zero V
		q.list.Logger().Printf("failed to dequeue: %v", ErrEmptyQueue)
		return zero, ErrEmptyQueue
	}
	return q.list.Remove(0)
}

// Insert enqueues value. The index is ignored.
func (q *Queue[V]) Insert(value V, index int) {
	q.Enqueue(value)
}

// Remove dequeues. The index is ignored.
func (q *Queue[V]) Remove(index int) (V, error) {
	return q.Dequeue()
}

// Delete is not supported on a queue and never changes it.
func (q *Queue[V]) Delete(index int) error {
	err := fmt.Errorf("%w: delete on a queue", linked_list.ErrUnsupportedOperation)
	q.list.Logger().Print(err)
	return err
}

func (q *Queue[V]) Size() int {
	return q.list.Size()
}

func (q *Queue[V]) IsEmpty() bool {
	return q.list.IsEmpty()
}

func (q *Queue[V]) IndexOf(value V) int {
	return q.list.IndexOf(value)
}

func (q *Queue[V]) IndexFunc(match func(V) bool) int {
	return q.list.IndexFunc(match)
}

// String renders the queue newest first.
func (q *Queue[V]) String() string {
	return q.list.String()
}
