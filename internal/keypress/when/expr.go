package when

import "fmt"

// FlagFunc looks up the current value of a named editor-state flag.
// The second return is false if the flag is not recognized.
type FlagFunc func(name string) (value, ok bool)

// Expr is an immutable parsed when-clause. It is built once from source
// text and re-evaluated against live flags on every resolution attempt.
type Expr struct {
	root node
}

// Eval evaluates the expression against the supplied flag lookup.
// An unrecognized identifier yields an error; callers treat that as a
// non-matching clause.
func (e *Expr) Eval(flags FlagFunc) (bool, error) {
	if e == nil || e.root == nil {
		return true, nil
	}
	return e.root.eval(flags)
}

type node interface {
	eval(flags FlagFunc) (bool, error)
}

type identNode struct {
	name string
}

func (n identNode) eval(flags FlagFunc) (bool, error) {
	if flags == nil {
		return false, fmt.Errorf("%w: %s", ErrUnknownFlag, n.name)
	}
	v, ok := flags(n.name)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownFlag, n.name)
	}
	return v, nil
}

type notNode struct {
	operand node
}

func (n notNode) eval(flags FlagFunc) (bool, error) {
	v, err := n.operand.eval(flags)
	return !v, err
}

type andNode struct {
	left, right node
}

func (n andNode) eval(flags FlagFunc) (bool, error) {
	// Both sides evaluate even on short-circuit falsity so an unknown
	// identifier anywhere in the clause is always surfaced.
	lv, lerr := n.left.eval(flags)
	rv, rerr := n.right.eval(flags)
	if lerr != nil {
		return false, lerr
	}
	if rerr != nil {
		return false, rerr
	}
	return lv && rv, nil
}

type orNode struct {
	left, right node
}

func (n orNode) eval(flags FlagFunc) (bool, error) {
	lv, lerr := n.left.eval(flags)
	rv, rerr := n.right.eval(flags)
	if lerr != nil {
		return false, lerr
	}
	if rerr != nil {
		return false, rerr
	}
	return lv || rv, nil
}
