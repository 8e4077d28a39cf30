// Package script runs a comma separated list of operations against a list,
// stack or queue of strings.
//
// A step is written op[:arg[:arg]], for example "insert:x:2" or "pop".
package script

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gobwas/glob"
)

type Kind string

const (
	KindList  Kind = "list"
	KindStack Kind = "stack"
	KindQueue Kind = "queue"
)

var (
	ErrBadKind    = errors.New("unknown collection kind")
	ErrBadScript  = errors.New("bad script")
	ErrBadPattern = errors.New("bad pattern")
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindList, KindStack, KindQueue:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrBadKind, s)
}

type arity struct {
	min, max int
}

var commonOps = map[string]arity{
	"size":    {0, 0},
	"empty":   {0, 0},
	"indexof": {1, 1},
	"match":   {1, 1},
	"print":   {0, 0},
}

var kindOps = map[Kind]map[string]arity{
	KindList: {
		"append": {1, 1},
		"insert": {2, 2},
		"delete": {1, 1},
		"remove": {1, 1},
	},
	KindStack: {
		"push":   {1, 1},
		"pop":    {0, 0},
		"insert": {1, 2},
		"remove": {0, 1},
		"delete": {0, 1},
	},
	KindQueue: {
		"enqueue": {1, 1},
		"dequeue": {0, 0},
		"insert":  {1, 2},
		"remove":  {0, 1},
		"delete":  {0, 1},
	},
}

// position of the index argument, for ops that take one
var indexArg = map[string]int{
	"insert": 1,
	"delete": 0,
	"remove": 0,
}

type Step struct {
	Op    string
	Args  []string
	Index int

	pattern glob.Glob
}

func (s Step) String() string {
	return strings.Join(append([]string{s.Op}, s.Args...), ":")
}

// Parse splits src into steps valid for kind. Empty steps are skipped.
func Parse(kind Kind, src string) ([]Step, error) {
	ops, ok := kindOps[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBadKind, kind)
	}

	var steps []Step
	for _, raw := range strings.Split(src, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		step, err := parseStep(ops, raw)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func parseStep(ops map[string]arity, raw string) (Step, error) {
	parts := strings.Split(raw, ":")
	step := Step{Op: strings.ToLower(parts[0]), Args: parts[1:]}

	if err := step.check(ops); err != nil {
		return Step{}, err
	}

	if i, ok := indexArg[step.Op]; ok && i < len(step.Args) {
		index, err := strconv.Atoi(step.Args[i])
		if err != nil {
			return Step{}, fmt.Errorf("%w: %q: index %q is not a number", ErrBadScript, raw, step.Args[i])
		}
		step.Index = index
	}
	return step, nil
}

// check rejects ops unknown to ops or commonOps and wrong argument counts,
// and compiles the pattern of a match step if it has none yet.
func (s *Step) check(ops map[string]arity) error {
	a, ok := ops[s.Op]
	if !ok {
		a, ok = commonOps[s.Op]
	}
	if !ok {
		return fmt.Errorf("%w: unknown op %q", ErrBadScript, s.Op)
	}
	if len(s.Args) < a.min || len(s.Args) > a.max {
		return fmt.Errorf("%w: %q takes %d to %d arguments", ErrBadScript, s.Op, a.min, a.max)
	}

	if s.Op == "match" && s.pattern == nil {
		g, err := glob.Compile(s.Args[0])
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrBadPattern, s.Args[0], err)
		}
		s.pattern = g
	}
	return nil
}
