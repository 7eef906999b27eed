package walker

import (
	"errors"
	"fmt"
)

// Walker errors.
var (
	ErrInvalidIncrement    = errors.New("integer selector increment must be positive")
	ErrTooManyCombinations = errors.New("selector combinations exceed limit")
)

// QueryError reports a failed node map query. It wraps the adapter error
// unchanged.
type QueryError struct {
	Node string
	Op   string
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s on %s: %v", e.Op, e.Node, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// SelectorError reports a selector that cannot be expanded.
type SelectorError struct {
	Target   string
	Selector string
	Err      error
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("selector %s of %s: %v", e.Selector, e.Target, e.Err)
}

func (e *SelectorError) Unwrap() error { return e.Err }

func queryErr(node, op string, err error) error {
	return &QueryError{Node: node, Op: op, Err: err}
}
