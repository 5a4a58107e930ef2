package combinator

import "fmt"

// Cardinality holds the value(s) produced by a successful parse step.
// It is either One value or Many values; the variant is part of the
// contract of each combinator and is never inferred from the length.
type Cardinality[R any] struct {
	items []R
	many  bool
}

// One wraps a single produced value.
func One[R any](v R) Cardinality[R] {
	return Cardinality[R]{items: []R{v}}
}

// Many wraps an ordered, possibly empty, list of produced values.
func Many[R any](vs ...R) Cardinality[R] {
	if vs == nil {
		vs = []R{}
	}
	return Cardinality[R]{items: vs, many: true}
}

// IsOne reports whether c holds exactly one value produced by a unit parser.
func (c Cardinality[R]) IsOne() bool {
	return !c.many
}

// IsMany reports whether c is an aggregate.
func (c Cardinality[R]) IsMany() bool {
	return c.many
}

// UnwrapOne returns the single value. It panics if c is Many.
func (c Cardinality[R]) UnwrapOne() R {
	if c.many {
		panic("combinator: UnwrapOne called on Many")
	}
	return c.items[0]
}

// UnwrapMany returns the aggregated values. It panics if c is One.
func (c Cardinality[R]) UnwrapMany() []R {
	if !c.many {
		panic("combinator: UnwrapMany called on One")
	}
	return c.items
}

// Values returns the contained values regardless of the variant.
func (c Cardinality[R]) Values() []R {
	return c.items
}

// Len returns the number of contained values.
func (c Cardinality[R]) Len() int {
	return len(c.items)
}

func (c Cardinality[R]) String() string {
	if c.many {
		return fmt.Sprintf("Many%v", c.items)
	}
	if len(c.items) == 0 {
		return "One()"
	}
	return fmt.Sprintf("One(%v)", c.items[0])
}
