package combinator

type between[R any] struct {
	seq *SequenceParser[R]
}

// Between parses left, value and right in sequence and yields Many of the
// values produced by value; the delimiters' own values are dropped. Any
// failure is that of the underlying sequence, index included.
func Between[R, D any](left, right Parser[D], value Parser[R]) Parser[R] {
	return &between[R]{seq: Sequence(Skip[R](left), value, Skip[R](right))}
}

func (p *between[R]) Transform(s State[R]) State[R] {
	return step(s, "Between", p.seq.Transform)
}
