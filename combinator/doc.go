// Package combinator provides a small algebra of composable parsers.
//
// # Overview
//
// Every parser implements [Parser], a single Transform method from one
// [State] to the next. A State is a cursor over an immutable [Input]: the
// next unconsumed offset and the result of the most recent step. Parsers
// never mutate a State; they return a new one, which makes backtracking a
// matter of reusing an earlier value.
//
//	┌──────────┐  Run   ┌─────────────┐ Transform ┌─────────────┐
//	│  string  │───────▶│ State{0,nil}│──────────▶│ State{n,res}│
//	└──────────┘        └─────────────┘           └─────────────┘
//
// Results are wrapped in a [Cardinality]: unit matchers such as [Literal]
// and [Digits] yield One value, aggregating combinators such as [Sequence],
// [ZeroOrMore] and [SepBy] yield Many, flattening the aggregates of their
// children.
//
// # Failures
//
// A failed step carries an [*Error] and leaves the index where the
// failure was detected. Failures are sticky: every combinator returns a
// failed input state untouched, so a failure travels to the caller of
// [Run] as data. Only [Choice], [ZeroOrMore], [SepBy] and [Optional]
// recover from a child failure.
//
// Misuse that indicates a programming error panics: an empty [Sequence],
// unwrapping the wrong [Cardinality] variant, or using an unset [Ref].
//
// # Recursive grammars
//
// A rule that contains itself is built through a [Ref], bound once the
// rule exists:
//
//	expr := combinator.NewRef[string]()
//	parens := combinator.Between(combinator.Literal("("), combinator.Literal(")"), expr)
//	expr.Set(combinator.Choice(combinator.Digits(), parens))
//
// Assemble the grammar completely before parsing. An assembled grammar is
// read-only and may be shared between goroutines.
//
// # Tracing
//
// Pass [WithTracer] to [Run] to receive an indented log of every step. The
// trace package provides implementations.
package combinator
