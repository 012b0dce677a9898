package selector

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates a malformed selector.
	ErrSyntax = errors.New("selector: syntax error")

	// ErrUnknownPseudo indicates an unsupported pseudo-class.
	ErrUnknownPseudo = errors.New("selector: unknown pseudo-class")

	// ErrNestedHas indicates a :has() inside another :has().
	ErrNestedHas = errors.New("selector: nested :has() is not allowed")

	// ErrNth indicates an invalid An+B expression.
	ErrNth = errors.New("selector: invalid An+B expression")

	// ErrSize indicates an invalid :size() comparison.
	ErrSize = errors.New("selector: invalid size comparison")
)

// Error is a compile diagnostic. Pos is the byte offset in the query.
type Error struct {
	Pos int
	Msg string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s at offset %d", e.Err, e.Msg, e.Pos)
}

func (e *Error) Unwrap() error { return e.Err }
