package combinator

import "strconv"

// Parser is implemented by every combinator. Transform takes the current
// state and returns the next one without modifying its argument. A
// successful step advances Index and carries a value; a failed step
// carries an error and leaves Index where the failure was detected.
type Parser[R any] interface {
	Transform(s State[R]) State[R]
}

// Func adapts an ordinary function to the Parser interface.
type Func[R any] func(s State[R]) State[R]

// Transform calls f(s).
func (f Func[R]) Transform(s State[R]) State[R] {
	return f(s)
}

// Option configures an Input.
type Option func(*Input)

// WithTracer routes trace output of a run to t.
func WithTracer(t Tracer) Option {
	return func(in *Input) {
		if t == nil {
			t = nopTracer{}
		}
		in.tracer = t
	}
}

// Run parses input with p, starting at offset 0 with no result.
func Run[R any](p Parser[R], input string, opts ...Option) State[R] {
	return p.Transform(Seed[R](NewInput(input, opts...)))
}

// Parse runs p over input and returns its value or error. Trailing input
// is allowed; see ParseAll.
func Parse[R any](p Parser[R], input string, opts ...Option) (Cardinality[R], error) {
	s := Run(p, input, opts...)
	if err := s.Err(); err != nil {
		return Cardinality[R]{}, err
	}
	return s.Value(), nil
}

// ParseAll is like Parse but fails when p does not consume all of input.
func ParseAll[R any](p Parser[R], input string, opts ...Option) (Cardinality[R], error) {
	s := Run(p, input, opts...)
	if err := s.Err(); err != nil {
		return Cardinality[R]{}, err
	}
	if s.Index < s.Target.Len() {
		return Cardinality[R]{}, &Error{
			Kind:   Unconsumed,
			Offset: s.Index,
			Parser: "ParseAll",
			Got:    excerpt(s.Residual(), 16),
		}
	}
	return s.Value(), nil
}

// step wraps a transform with the sticky-error rule and tracing. Failed
// states are returned untouched; everything else runs inside a trace
// scope named after the combinator.
func step[R any](s State[R], name string, fn func(State[R]) State[R]) State[R] {
	if s.Failed() {
		return s
	}
	t := s.Target.tracer
	if _, off := t.(nopTracer); off {
		return fn(s)
	}
	t.Log(name + " @ " + strconv.Itoa(s.Index))
	t.StartScope()
	out := fn(s)
	t.EndScope()
	if out.Failed() {
		t.Log(name + " failed: " + out.Result.Err.Error())
	} else {
		t.Log(name + " -> " + strconv.Itoa(out.Index))
	}
	return out
}
