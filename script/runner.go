package script

import (
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/cbteal/LinkedList/linked_list"
	"github.com/cbteal/LinkedList/queue"
	"github.com/cbteal/LinkedList/stack"
)

// view is the read side shared by lists, stacks and queues.
type view interface {
	Size() int
	IsEmpty() bool
	IndexOf(value string) int
	IndexFunc(match func(string) bool) int
	String() string
}

type applyFunc func(step Step) (string, error)

type Runner struct {
	Kind   Kind
	Out    io.Writer
	Logger *log.Logger
	// Strict stops at the first failed operation and returns its error.
	Strict bool
}

// Run appends values in order to a new collection, then executes steps,
// writing one line per step. Without Strict a failed operation only
// prints its neutral result.
func (r *Runner) Run(values []string, steps []Step) error {
	steps, err := r.check(steps)
	if err != nil {
		return err
	}
	v, apply, err := r.build(values)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.Out, "%s %q\n", r.Kind, v.String())
	for _, step := range steps {
		var err error
		result, handled := common(v, step)
		if !handled {
			result, err = apply(step)
		}
		fmt.Fprintf(r.Out, "%s => %s\n", step, result)
		if err != nil && r.Strict {
			return fmt.Errorf("%s: %w", step, err)
		}
	}
	return nil
}

// check validates steps that may not have come from Parse, before any of
// them runs. The caller's slice is left untouched.
func (r *Runner) check(steps []Step) ([]Step, error) {
	ops, ok := kindOps[r.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBadKind, r.Kind)
	}
	checked := make([]Step, len(steps))
	for i, step := range steps {
		if err := step.check(ops); err != nil {
			return nil, err
		}
		checked[i] = step
	}
	return checked, nil
}

func (r *Runner) build(values []string) (view, applyFunc, error) {
	opt := linked_list.WithLogger(r.Logger)
	switch r.Kind {
	case KindList:
		l := linked_list.New[string](opt)
		for _, value := range values {
			l.Append(value)
		}
		return l, listOps(l), nil
	case KindStack:
		s := stack.New[string](opt)
		for _, value := range values {
			s.Push(value)
		}
		return s, stackOps(s), nil
	case KindQueue:
		q := queue.New[string](opt)
		for _, value := range values {
			q.Enqueue(value)
		}
		return q, queueOps(q), nil
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrBadKind, r.Kind)
}

func common(v view, step Step) (string, bool) {
	switch step.Op {
	case "size":
		return strconv.Itoa(v.Size()), true
	case "empty":
		return strconv.FormatBool(v.IsEmpty()), true
	case "indexof":
		return strconv.Itoa(v.IndexOf(step.Args[0])), true
	case "match":
		return strconv.Itoa(v.IndexFunc(step.pattern.Match)), true
	case "print":
		return strconv.Quote(v.String()), true
	}
	return "", false
}

func listOps(l *linked_list.List[string]) applyFunc {
	return func(step Step) (string, error) {
		var err error
		switch step.Op {
		case "append":
			l.Append(step.Args[0])
		case "insert":
			err = l.Insert(step.Args[0], step.Index)
		case "delete":
			err = l.Delete(step.Index)
		case "remove":
			value, err := l.Remove(step.Index)
			return strconv.Quote(value), err
		default:
			return "", fmt.Errorf("%w: %q on a list", ErrBadScript, step.Op)
		}
		return strconv.Quote(l.String()), err
	}
}

func stackOps(s *stack.Stack[string]) applyFunc {
	return func(step Step) (string, error) {
		var err error
		switch step.Op {
		case "push":
			s.Push(step.Args[0])
		case "insert":
			s.Insert(step.Args[0], step.Index)
		case "delete":
			err = s.Delete(step.Index)
		case "pop", "remove":
			value, err := s.Remove(step.Index)
			return strconv.Quote(value), err
		default:
			return "", fmt.Errorf("%w: %q on a stack", ErrBadScript, step.Op)
		}
		return strconv.Quote(s.String()), err
	}
}

func queueOps(q *queue.Queue[string]) applyFunc {
	return func(step Step) (string, error) {
		var err error
		switch step.Op {
		case "enqueue":
			q.Enqueue(step.Args[0])
		case "insert":
			q.Insert(step.Args[0], step.Index)
		case "delete":
			err = q.Delete(step.Index)
		case "dequeue", "remove":
			value, err := q.Remove(step.Index)
			return strconv.Quote(value), err
		default:
			return "", fmt.Errorf("%w: %q on a queue", ErrBadScript, step.Op)
		}
		return strconv.Quote(q.String()), err
	}
}
