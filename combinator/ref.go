package combinator

import "sync/atomic"

// Ref is a placeholder for a parser that does not exist yet, used to
// build self-referential grammars: hand the Ref to the parsers that need
// the rule, then Set it once the rule is assembled.
//
//	expr := combinator.NewRef[Expr]()
//	list := combinator.Between(open, close, combinator.OneOrMore(expr))
//	expr.Set(combinator.Choice(number, list))
//
// A Ref is written once during assembly and only read while parsing.
type Ref[R any] struct {
	target atomic.Pointer[Parser[R]]
	name   string
}

// NewRef returns an unset Ref.
func NewRef[R any]() *Ref[R] {
	return &Ref[R]{name: "Ref"}
}

// NamedRef returns an unset Ref whose trace output uses name.
func NamedRef[R any](name string) *Ref[R] {
	return &Ref[R]{name: name}
}

// Set binds r to p. It panics if r is already set or p is nil.
func (r *Ref[R]) Set(p Parser[R]) {
	if p == nil {
		panic("combinator: Ref.Set called with a nil parser")
	}
	if !r.target.CompareAndSwap(nil, &p) {
		panic("combinator: Ref " + r.name + " set twice")
	}
}

// IsSet reports whether r has been bound.
func (r *Ref[R]) IsSet() bool {
	return r.target.Load() != nil
}

func (r *Ref[R]) Transform(s State[R]) State[R] {
	p := r.target.Load()
	if p == nil {
		panic("combinator: Ref " + r.name + " used before Set")
	}
	return step(s, r.name, (*p).Transform)
}

func (r *Ref[R]) String() string {
	return r.name
}
