package script

import (
	"fmt"
	"io"
	"log"

	"github.com/cbteal/LinkedList/linked_list"
	"github.com/cbteal/LinkedList/queue"
	"github.com/cbteal/LinkedList/stack"
)

// Demo prints the list, stack and queue walkthroughs to w. Diagnostics for
// the deliberately failing calls go to logger.
func Demo(w io.Writer, logger *log.Logger) {
	opt := linked_list.WithLogger(logger)
	demoList(w, opt)
	demoStack(w, opt)
	demoQueue(w, opt)
}

func demoList(w io.Writer, opt linked_list.Option) {
	empty := linked_list.New[int](opt)
	one := linked_list.New[int](opt)
	multiple := linked_list.New[int](opt)

	one.Append(5)
	multiple.Append(10)
	multiple.Append(20)
	multiple.Append(30)

	fmt.Fprintf(w, "Empty: %q\n", empty)
	fmt.Fprintf(w, "One: %q\n", one)
	fmt.Fprintf(w, "Multiple: %q\n", multiple)

	one.Delete(0)
	multiple.Delete(1)
	fmt.Fprintf(w, "One (upon delete): %q\n", one)
	fmt.Fprintf(w, "Multiple (upon delete): %q\n", multiple)

	one.Insert(600, 0)
	multiple.Insert(400, 2)
	fmt.Fprintf(w, "One (on insert): %q\n", one)
	fmt.Fprintf(w, "Multiple (on insert): %q\n", multiple)

	a := linked_list.New[int](opt)
	for j := range 10 {
		a.Append(j)
	}
	fmt.Fprintf(w, "Ten: %q\n", a)
	a.Delete(3)
	a.Delete(0)
	a.Delete(-1)
	fmt.Fprintf(w, "Ten (upon delete): %q size=%d indexOf(5)=%d\n", a, a.Size(), a.IndexOf(5))
}

func demoStack(w io.Writer, opt linked_list.Option) {
	empty := stack.New[int](opt)
	one := stack.New[int](opt)
	multiple := stack.New[int](opt)

	one.Push(1)
	multiple.Push(10)
	multiple.Push(20)
	multiple.Push(30)
	fmt.Fprintf(w, "Empty after push: %q\n", empty)
	fmt.Fprintf(w, "One after push: %q\n", one)
	fmt.Fprintf(w, "Multiple after push: %q\n", multiple)

	empty.Pop()
	one.Pop()
	multiple.Pop()
	fmt.Fprintf(w, "Empty after pop: %q\n", empty)
	fmt.Fprintf(w, "One after pop: %q\n", one)
	fmt.Fprintf(w, "Multiple after pop: %q\n", multiple)

	multiple.Delete(1)
}

func demoQueue(w io.Writer, opt linked_list.Option) {
	empty := queue.New[int](opt)
	one := queue.New[int](opt)
	multiple := queue.New[int](opt)

	one.Enqueue(1)
	multiple.Enqueue(10)
	multiple.Enqueue(20)
	multiple.Enqueue(30)
	fmt.Fprintf(w, "Empty after en: %q\n", empty)
	fmt.Fprintf(w, "One after en: %q\n", one)
	fmt.Fprintf(w, "Multiple after en: %q\n", multiple)

	empty.Dequeue()
	one.Dequeue()
	multiple.Dequeue()
	fmt.Fprintf(w, "Empty after dq: %q\n", empty)
	fmt.Fprintf(w, "One after dq: %q\n", one)
	fmt.Fprintf(w, "Multiple after dq: %q\n", multiple)

	multiple.Delete(1)
}
