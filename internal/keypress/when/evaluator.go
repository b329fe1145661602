package when

// FailureHandler receives clause failures. It is called at most once per
// distinct clause source text, not on every keystroke.
type FailureHandler func(source string, err error)

// Evaluator parses when-clauses once and evaluates the cached trees
// against live flags on every resolution attempt. A clause that fails to
// parse, or that references an unrecognized flag, never matches.
//
// The evaluator is confined to the UI thread along with the rest of the
// keypress core; it performs no locking.
type Evaluator struct {
	exprs    map[string]cachedExpr
	reported map[string]bool
	onFail   FailureHandler
}

type cachedExpr struct {
	expr *Expr
	err  error
}

// NewEvaluator creates an evaluator. onFail may be nil.
func NewEvaluator(onFail FailureHandler) *Evaluator {
	return &Evaluator{
		exprs:    make(map[string]cachedExpr),
		reported: make(map[string]bool),
		onFail:   onFail,
	}
}

// Match reports whether the clause holds under the current flags.
// The empty clause always matches. Malformed clauses and unknown flags
// fail closed.
func (e *Evaluator) Match(source string, flags FlagFunc) bool {
	if source == "" {
		return true
	}

	cached, ok := e.exprs[source]
	if !ok {
		expr, err := Parse(source)
		cached = cachedExpr{expr: expr, err: err}
		e.exprs[source] = cached
	}
	if cached.err != nil {
		e.report(source, cached.err)
		return false
	}

	v, err := cached.expr.Eval(flags)
	if err != nil {
		e.report(source, err)
		return false
	}
	return v
}

// report surfaces a failure once per distinct clause.
func (e *Evaluator) report(source string, err error) {
	if e.reported[source] {
		return
	}
	e.reported[source] = true
	if e.onFail != nil {
		e.onFail(source, err)
	}
}

// Invalidate drops the cached parse and failure record for a clause.
// Called when a binding's when text is edited so the new text gets a
// fresh parse and, if still broken, a fresh report.
func (e *Evaluator) Invalidate(source string) {
	delete(e.exprs, source)
	delete(e.reported, source)
}
