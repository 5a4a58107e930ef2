package combinator

import (
	"fmt"
	"strings"
)

// Input is the immutable text being parsed. A single *Input is shared by
// every state derived from one Run, including discarded alternatives.
type Input struct {
	text   string
	tracer Tracer
}

// NewInput wraps text for parsing.
func NewInput(text string, opts ...Option) *Input {
	in := &Input{text: text, tracer: nopTracer{}}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Text returns the whole input.
func (in *Input) Text() string {
	return in.text
}

// Len returns the length of the input in bytes.
func (in *Input) Len() int {
	return len(in.text)
}

// Residual returns the unconsumed suffix starting at offset.
func (in *Input) Residual(offset int) string {
	if offset >= len(in.text) {
		return ""
	}
	return in.text[offset:]
}

// Slice returns the input between two offsets.
func (in *Input) Slice(start, end int) string {
	if end > len(in.text) {
		end = len(in.text)
	}
	if start > end {
		return ""
	}
	return in.text[start:end]
}

// Position converts a byte offset into a line and column.
func (in *Input) Position(offset int) Position {
	if offset > len(in.text) {
		offset = len(in.text)
	}
	before := in.text[:offset]
	line := strings.Count(before, "\n") + 1
	col := offset - strings.LastIndexByte(before, '\n')
	return Position{Offset: offset, Line: line, Column: col}
}

// Position is a location in the input. Line and Column are 1-based.
type Position struct {
	Offset int `json:"offset" yaml:"offset"`
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is the half-open byte range [Start, End) consumed by a parser.
type Span struct {
	Start int
	End   int
}

// Result is the outcome of a parse step: either a value or an error.
type Result[R any] struct {
	Value Cardinality[R]
	Err   error
}

// Ok builds a successful result.
func Ok[R any](v Cardinality[R]) Result[R] {
	return Result[R]{Value: v}
}

// Fail builds a failed result.
func Fail[R any](err error) Result[R] {
	return Result[R]{Err: err}
}

// IsOK reports whether the step succeeded.
func (r Result[R]) IsOK() bool {
	return r.Err == nil
}

// State is the parsing cursor threaded through every Transform. States are
// values: combinators return new states and never modify the one given.
//
// A nil Result means no step has run yet; only the seed state has it.
type State[R any] struct {
	Index  int
	Target *Input
	Result *Result[R]
}

// Seed returns the initial state for input: offset 0, nothing attempted.
func Seed[R any](in *Input) State[R] {
	return State[R]{Index: 0, Target: in}
}

// Failed reports whether s carries an error.
func (s State[R]) Failed() bool {
	return s.Result != nil && s.Result.Err != nil
}

// Succeeded reports whether s carries a value.
func (s State[R]) Succeeded() bool {
	return s.Result != nil && s.Result.Err == nil
}

// Err returns the error carried by s, or nil.
func (s State[R]) Err() error {
	if s.Result == nil {
		return nil
	}
	return s.Result.Err
}

// Value returns the value carried by s. It panics if s did not succeed.
func (s State[R]) Value() Cardinality[R] {
	if !s.Succeeded() {
		panic("combinator: Value called on a state without a successful result")
	}
	return s.Result.Value
}

// Residual returns the unconsumed input at s.
func (s State[R]) Residual() string {
	return s.Target.Residual(s.Index)
}

// Ok returns a copy of s at index with a successful result.
func (s State[R]) Ok(index int, v Cardinality[R]) State[R] {
	r := Ok(v)
	return State[R]{Index: index, Target: s.Target, Result: &r}
}

// Fail returns a copy of s at index with a failed result.
func (s State[R]) Fail(index int, err error) State[R] {
	r := Fail[R](err)
	return State[R]{Index: index, Target: s.Target, Result: &r}
}

// fresh returns s with its result cleared, ready for the next child.
func (s State[R]) fresh() State[R] {
	return State[R]{Index: s.Index, Target: s.Target}
}

func (s State[R]) String() string {
	switch {
	case s.Result == nil:
		return fmt.Sprintf("State{index: %d, pending}", s.Index)
	case s.Result.Err != nil:
		return fmt.Sprintf("State{index: %d, error: %v}", s.Index, s.Result.Err)
	default:
		return fmt.Sprintf("State{index: %d, result: %v}", s.Index, s.Result.Value)
	}
}

// Cast moves s across a result-type boundary. The index and target are
// kept and an error is carried over; a value is dropped and the result
// becomes pending.
func Cast[S, R any](s State[R]) State[S] {
	out := State[S]{Index: s.Index, Target: s.Target}
	if s.Failed() {
		r := Fail[S](s.Result.Err)
		out.Result = &r
	}
	return out
}
