package opt

import (
	"errors"
	"fmt"

	"asmopt/internal/source"
)

var (
	// ErrUnresolved: a reference has no declaration visible from its scope.
	ErrUnresolved = errors.New("unresolved identifier")
	// ErrMissingScope: the scope table has no entry for a block or function.
	ErrMissingScope = errors.New("missing scope")
	// ErrUnexpectedNode: a node kind the pass cannot accept (label, stack assignment).
	ErrUnexpectedNode = errors.New("unexpected node")
	// ErrAlreadyRun is returned by a second Run on the same pass value.
	ErrAlreadyRun = errors.New("pass already run")
)

const (
	passDisambiguate = "disambiguate"
	passInlinable    = "inlinable"
)

// InternalError reports a broken precondition of a pass.
type InternalError struct {
	Pass   string
	Span   source.Span
	Detail string // имя идентификатора или вид узла
	Err    error
}

func (e *InternalError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v at %s", e.Pass, e.Err, e.Span)
	}
	return fmt.Sprintf("%s: %v %q at %s", e.Pass, e.Err, e.Detail, e.Span)
}

func (e *InternalError) Unwrap() error { return e.Err }

// bailout carries an *InternalError through panic up to the pass boundary.
type bailout struct{ err error }

func raise(err error) {
	panic(bailout{err: err})
}

// recoverBailout turns a bailout into *errp. Other panics keep unwinding.
func recoverBailout(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if b, ok := r.(bailout); ok {
		*errp = b.err
		return
	}
	panic(r)
}
