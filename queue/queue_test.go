package queue_test

import (
	"bytes"
	"io"
	"log"
	"testing"

	"github.com/cbteal/LinkedList/linked_list"
	"github.com/cbteal/LinkedList/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func quiet() linked_list.Option {
	return linked_list.WithLogger(log.New(io.Discard, "", 0))
}

func TestQueueFIFO(t *testing.T) {
	assert := assert.New(t)

	q := queue.New[int](quiet())
	q.Enqueue(10)
	q.Enqueue(20)
	q.Enqueue(30)
	assert.Equal("30 20 10 ", q.String())

	for _, want := range []int{10, 20, 30} {
		v, err := q.Dequeue()
		assert.NoError(err)
		assert.Equal(want, v)
	}
	assert.True(q.IsEmpty())

	v, err := q.Dequeue()
	assert.ErrorIs(err, queue.ErrEmptyQueue)
	assert.ErrorIs(err, linked_list.ErrEmptyCollection)
	assert.Equal(0, v)
}

func TestQueueDemo(t *testing.T) {
	assert := assert.New(t)

	empty := queue.New[int](quiet())
	one := queue.New[int](quiet())
	multiple := queue.New[int](quiet())

	one.Enqueue(1)
	multiple.Enqueue(10)
	multiple.Enqueue(20)
	multiple.Enqueue(30)

	empty.Dequeue()
	one.Dequeue()
	multiple.Dequeue()
	assert.Equal("", empty.String())
	assert.Equal("", one.String())
	assert.Equal("30 20 ", multiple.String())
	assert.Equal(2, multiple.Size())

	multiple.Dequeue()
	assert.Equal("30 ", multiple.String())
	multiple.Dequeue()
	assert.Equal(0, multiple.Size())
	assert.True(multiple.IsEmpty())
}

func TestQueueAliases(t *testing.T) {
	assert := assert.New(t)

	q := queue.New[int](quiet())
	q.Insert(1, 0)
	q.Insert(2, 1)
	q.Insert(3, 5)
	assert.Equal("3 2 1 ", q.String(), "insert ignores the index")

	v, err := q.Remove(14)
	assert.NoError(err)
	assert.Equal(1, v, "remove ignores the index")
	assert.Equal("3 2 ", q.String())

	q.Remove(14)
	q.Remove(14)
	_, err = q.Remove(14)
	assert.ErrorIs(err, queue.ErrEmptyQueue)
	assert.Equal("", q.String())
}

func TestQueueDelete(t *testing.T) {
	var buf bytes.Buffer
	q := queue.New[string](linked_list.WithLogger(log.New(&buf, "", 0)))

	require.ErrorIs(t, q.Delete(0), linked_list.ErrUnsupportedOperation)
	q.Enqueue("a")
	q.Enqueue("b")
	for _, index := range []int{-1, 0, 1, 2} {
		assert.ErrorIs(t, q.Delete(index), linked_list.ErrUnsupportedOperation)
	}
	assert.Equal(t, 2, q.Size())
	assert.Equal(t, "b a ", q.String())
	assert.Contains(t, buf.String(), "unsupported operation: delete on a queue")
}

func TestQueueDequeueDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	q := queue.New[string](linked_list.WithLogger(log.New(&buf, "", 0)))

	_, err := q.Dequeue()
	require.Error(t, err)
	assert.Equal(t, "failed to dequeue: empty queue: empty collection\n", buf.String())
}

func TestQueueIndexOf(t *testing.T) {
	assert := assert.New(t)

	q := queue.New[string](quiet())
	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")
	assert.Equal(0, q.IndexOf("a"))
	assert.Equal(2, q.IndexOf("c"))
	assert.Equal(-1, q.IndexOf("d"))
	assert.Equal(1, q.IndexFunc(func(s string) bool { return s > "a" && s < "c" }))
}

func TestQueueRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOf(rapid.Int()).Draw(t, "values")
		q := queue.New[int](quiet())
		for _, v := range values {
			q.Enqueue(v)
		}

		drained := []int{}
		for range values {
			v, err := q.Dequeue()
			require.NoError(t, err)
			drained = append(drained, v)
		}
		assert.Equal(t, append([]int{}, values...), drained)
		assert.True(t, q.IsEmpty())

		_, err := q.Dequeue()
		assert.ErrorIs(t, err, linked_list.ErrEmptyCollection)
	})
}

func TestQueueDeleteNeverMutates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOf(rapid.Int()).Draw(t, "values")
		q := queue.New[int](quiet())
		for _, v := range values {
			q.Enqueue(v)
		}
		before := q.String()

		index := rapid.Int().Draw(t, "index")
		assert.ErrorIs(t, q.Delete(index), linked_list.ErrUnsupportedOperation)
		assert.Equal(t, len(values), q.Size())
		assert.Equal(t, before, q.String())
	})
}
