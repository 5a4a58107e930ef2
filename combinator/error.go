package combinator

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// EndOfInput means the residual input was empty where a match was required.
	EndOfInput ErrorKind = iota
	// Mismatch means the residual input did not start with the expected literal.
	Mismatch
	// ClassMismatch means no run of the expected character class was found.
	ClassMismatch
	// NoAlternative means every branch of a Choice failed.
	NoAlternative
	// EmptyRepetition means a one-or-more combinator matched zero times.
	EmptyRepetition
	// Unconsumed means the parse succeeded but input remained.
	Unconsumed
	// Custom is a failure produced by a user mapping function.
	Custom
)

var kindNames = map[ErrorKind]string{
	EndOfInput:      "end of input",
	Mismatch:        "mismatch",
	ClassMismatch:   "class mismatch",
	NoAlternative:   "no alternative",
	EmptyRepetition: "empty repetition",
	Unconsumed:      "unconsumed input",
	Custom:          "custom",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error describes a parse failure. Parser names the combinator that
// detected it and Offset the byte offset of the contradiction.
type Error struct {
	Kind     ErrorKind
	Offset   int
	Parser   string
	Expected string
	Got      string
	Err      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case EndOfInput:
		return fmt.Sprintf("%s: unexpected end of input at index %d", e.Parser, e.Offset)
	case Mismatch:
		return fmt.Sprintf("%s: expected %q, got %q at index %d", e.Parser, e.Expected, e.Got, e.Offset)
	case ClassMismatch:
		return fmt.Sprintf("%s: no %s were matched at index %d", e.Parser, e.Expected, e.Offset)
	case NoAlternative:
		return fmt.Sprintf("%s: failed to parse any of the provided choices at index %d", e.Parser, e.Offset)
	case EmptyRepetition:
		return fmt.Sprintf("%s: unable to match any input at index %d", e.Parser, e.Offset)
	case Unconsumed:
		return fmt.Sprintf("%s: unconsumed input %q at index %d", e.Parser, e.Got, e.Offset)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v at index %d", e.Parser, e.Err, e.Offset)
	}
	return fmt.Sprintf("%s: parse failed at index %d", e.Parser, e.Offset)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf builds a Custom failure at offset, for use in mapping functions.
func Errorf(offset int, format string, args ...any) *Error {
	return &Error{
		Kind:   Custom,
		Offset: offset,
		Parser: "Map",
		Err:    fmt.Errorf(format, args...),
	}
}

// AsError extracts a *Error from err, if there is one.
func AsError(err error) (*Error, bool) {
	var perr *Error
	if errors.As(err, &perr) {
		return perr, true
	}
	return nil, false
}

// excerpt returns at most n bytes of s for use in messages.
func excerpt(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
