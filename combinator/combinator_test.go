package combinator

import (
	"errors"
	"strings"
	"testing"
)

func TestLiteral(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		input   string
		wantOK  bool
		wantIdx int
		kind    ErrorKind
	}{
		{"exact", "Test", "Test", true, 4, 0},
		{"prefix", "Test", "TestStuff", true, 4, 0},
		{"mismatch", "Test", "Stuff", false, 0, Mismatch},
		{"short input", "Test", "Te", false, 0, Mismatch},
		{"empty input", "Test", "", false, 0, EndOfInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Run(Literal(tt.literal), tt.input)
			if s.Succeeded() != tt.wantOK {
				t.Fatalf("succeeded = %v, want %v (%v)", s.Succeeded(), tt.wantOK, s)
			}
			if s.Index != tt.wantIdx {
				t.Errorf("index = %d, want %d", s.Index, tt.wantIdx)
			}
			if tt.wantOK {
				if got := s.Value().UnwrapOne(); got != tt.literal {
					t.Errorf("value = %q, want %q", got, tt.literal)
				}
				return
			}
			perr, ok := AsError(s.Err())
			if !ok {
				t.Fatalf("error %T is not *Error", s.Err())
			}
			if perr.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", perr.Kind, tt.kind)
			}
		})
	}
}

func TestLiteralMessage(t *testing.T) {
	s := Run(Literal("Test"), "Stuff")
	want := `Literal: expected "Test", got "Stuf" at index 0`
	if got := s.Err().Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLiteralPrefixProperty(t *testing.T) {
	inputs := []string{"", "a", "ab", "abc", "abcd", "xabc", "aab", "abab"}
	literals := []string{"a", "ab", "abc", "b", "abcd"}
	for _, in := range inputs {
		for _, lit := range literals {
			s := Run(Literal(lit), in)
			want := strings.HasPrefix(in, lit) && in != ""
			if s.Succeeded() != want {
				t.Errorf("Literal(%q) on %q: succeeded = %v, want %v", lit, in, s.Succeeded(), want)
			}
			if want && s.Index != len(lit) {
				t.Errorf("Literal(%q) on %q: index = %d, want %d", lit, in, s.Index, len(lit))
			}
			if !want && s.Index != 0 {
				t.Errorf("Literal(%q) on %q: failed at index %d, want 0", lit, in, s.Index)
			}
		}
	}
}

func TestClasses(t *testing.T) {
	tests := []struct {
		name    string
		parser  Parser[string]
		input   string
		want    string
		wantIdx int
	}{
		{"digits", Digits(), "123s", "123", 3},
		{"digits fail", Digits(), "s123s", "", 0},
		{"digits empty", Digits(), "", "", 0},
		{"letters", Letters(), "abcD1", "abcD", 4},
		{"letters fail", Letters(), "1abc", "", 0},
		{"whitespace", Whitespace(), " \t\nx", " \t\n", 3},
		{"range", CharRange('a', 'f'), "cat", "c", 1},
		{"range fail", CharRange('a', 'f'), "zoo", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Run(tt.parser, tt.input)
			if s.Index != tt.wantIdx {
				t.Errorf("index = %d, want %d", s.Index, tt.wantIdx)
			}
			if tt.want == "" {
				if !s.Failed() {
					t.Fatalf("expected failure, got %v", s)
				}
				return
			}
			if !s.Succeeded() {
				t.Fatalf("unexpected failure: %v", s.Err())
			}
			if got := s.Value().UnwrapOne(); got != tt.want {
				t.Errorf("value = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassIsAnchored(t *testing.T) {
	s := Run(Sequence(Literal("ab"), Digits()), "ab12cd34")
	if !s.Succeeded() {
		t.Fatalf("unexpected failure: %v", s.Err())
	}
	if got := s.Value().UnwrapMany(); len(got) != 2 || got[1] != "12" {
		t.Errorf("got %v, want [ab 12]", got)
	}
	if s.Index != 4 {
		t.Errorf("index = %d, want 4", s.Index)
	}

	s = Run(Sequence(Literal("ab"), Digits()), "abcd34")
	want := "Digits: no digits were matched at index 2"
	if s.Index != 2 || s.Err() == nil || s.Err().Error() != want {
		t.Errorf("got index %d err %v, want index 2 err %q", s.Index, s.Err(), want)
	}
}

func TestZeroOrMore(t *testing.T) {
	tests := []struct {
		input   string
		count   int
		wantIdx int
	}{
		{"TestTestTest", 3, 12},
		{"TestStuffTest", 1, 4},
		{"StuffTest", 0, 0},
		{"", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := Run(ZeroOrMore(Literal("Test")), tt.input)
			if !s.Succeeded() {
				t.Fatalf("ZeroOrMore failed: %v", s.Err())
			}
			if got := len(s.Value().UnwrapMany()); got != tt.count {
				t.Errorf("count = %d, want %d", got, tt.count)
			}
			if s.Index != tt.wantIdx {
				t.Errorf("index = %d, want %d", s.Index, tt.wantIdx)
			}
		})
	}
}

func TestOneOrMore(t *testing.T) {
	s := Run(OneOrMore(Literal("Test")), "TestTestTest")
	if !s.Succeeded() || s.Value().Len() != 3 || s.Index != 12 {
		t.Errorf("got %v, want 3 matches at index 12", s)
	}

	s = Run(OneOrMore(Literal("Test")), "StuffTest")
	if !s.Failed() {
		t.Fatalf("expected failure, got %v", s)
	}
	if s.Index != 0 {
		t.Errorf("index = %d, want 0", s.Index)
	}
	if perr, _ := AsError(s.Err()); perr == nil || perr.Kind != EmptyRepetition {
		t.Errorf("error = %v, want empty repetition", s.Err())
	}
}

func TestOneOrMoreResetsIndex(t *testing.T) {
	p := Sequence(Literal("x"), OneOrMore(Literal("Test")))
	s := Run(p, "xStuff")
	if s.Index != 1 {
		t.Errorf("index = %d, want 1", s.Index)
	}
}

func TestRepetitionOfNullableParser(t *testing.T) {
	s := Run(ZeroOrMore(ZeroOrMore(Literal("a"))), "aab")
	if !s.Succeeded() {
		t.Fatalf("unexpected failure: %v", s.Err())
	}
	if s.Index != 2 {
		t.Errorf("index = %d, want 2", s.Index)
	}
}

func TestRepetitionFlattens(t *testing.T) {
	p := ZeroOrMore(Sequence(Literal("a"), Literal("b")))
	s := Run(p, "ababx")
	got := s.Value().UnwrapMany()
	want := []string{"a", "b", "a", "b"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSepBy(t *testing.T) {
	tests := []struct {
		name    string
		parser  Parser[string]
		input   string
		wantOK  bool
		count   int
		wantIdx int
	}{
		{"sepby full", SepBy(Literal(","), Literal("Test")), "Test,Test,Test", true, 3, 14},
		{"sepby trailing separator", SepBy(Literal(","), Literal("Test")), "Test,Test,", true, 2, 10},
		{"sepby empty", SepBy(Literal(","), Literal("Test")), "", true, 0, 0},
		{"sepby no match", SepBy(Literal(","), Literal("Test")), "Stuff", true, 0, 0},
		{"sepby1 full", SepBy1(Literal(","), Literal("Test")), "Test,Test,Test", true, 3, 14},
		{"sepby1 trailing separator", SepBy1(Literal(","), Literal("Test")), "Test,Test,", true, 2, 10},
		{"sepby1 empty", SepBy1(Literal(","), Literal("Test")), "", false, 0, 0},
		{"sepby1 stops at value", SepBy1(Literal(","), Literal("Test")), "Test,Stuff", true, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Run(tt.parser, tt.input)
			if s.Succeeded() != tt.wantOK {
				t.Fatalf("succeeded = %v, want %v (%v)", s.Succeeded(), tt.wantOK, s)
			}
			if s.Index != tt.wantIdx {
				t.Errorf("index = %d, want %d", s.Index, tt.wantIdx)
			}
			if tt.wantOK && s.Value().Len() != tt.count {
				t.Errorf("count = %d, want %d", s.Value().Len(), tt.count)
			}
		})
	}
}

func TestSepByResumes(t *testing.T) {
	p := SepBy(Literal(","), Digits())
	input := "1,2,3;4,5"

	first := Run(p, input)
	if first.Index != 5 {
		t.Fatalf("index = %d, want 5", first.Index)
	}

	rest := input[first.Index:]
	resumed := Run(Sequence(Literal(";"), p), rest)
	if !resumed.Succeeded() {
		t.Fatalf("resumed parse failed: %v", resumed.Err())
	}
	want := []string{";", "4", "5"}
	if got := resumed.Value().Values(); strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("got %v, want %v", got, want)
	}

	whole := Run(Sequence(p, Literal(";"), p), input)
	if whole.Index != first.Index+resumed.Index {
		t.Errorf("whole index = %d, want %d", whole.Index, first.Index+resumed.Index)
	}
}

func TestSequence(t *testing.T) {
	p := Sequence(Literal("Test1"), Literal("Test2"))

	s := Run(p, "Test1Test2")
	if !s.Succeeded() || s.Value().Len() != 2 || s.Index != 10 {
		t.Errorf("got %v, want 2 values at index 10", s)
	}

	s = Run(p, "Test1Test3")
	if !s.Failed() {
		t.Fatalf("expected failure, got %v", s)
	}
	if s.Index != 5 {
		t.Errorf("index = %d, want 5", s.Index)
	}
	if perr, _ := AsError(s.Err()); perr == nil || perr.Offset != 5 || perr.Expected != "Test2" {
		t.Errorf("error = %v, want mismatch on Test2 at 5", s.Err())
	}
}

func TestSequenceSingleChildIsMany(t *testing.T) {
	s := Run(Sequence(Literal("a")), "a")
	if !s.Value().IsMany() {
		t.Errorf("got %v, want Many", s.Value())
	}
}

func TestSequencePush(t *testing.T) {
	p := Sequence(Literal("a"))
	p.Push(Literal("b"))
	s := Run[string](p, "ab")
	if s.Index != 2 {
		t.Errorf("index = %d, want 2", s.Index)
	}
}

func TestEmptySequencePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Sequence[string]()
}

func TestChoice(t *testing.T) {
	p := Choice(Literal("ab"), Literal("a"), Literal("b"))

	tests := []struct {
		input   string
		want    string
		wantIdx int
	}{
		{"abc", "ab", 2},
		{"ac", "a", 1},
		{"bc", "b", 1},
		{"c", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := Run[string](p, tt.input)
			if s.Index != tt.wantIdx {
				t.Errorf("index = %d, want %d", s.Index, tt.wantIdx)
			}
			if tt.want == "" {
				perr, _ := AsError(s.Err())
				if perr == nil || perr.Kind != NoAlternative {
					t.Errorf("error = %v, want no alternative", s.Err())
				}
				return
			}
			if got := s.Value().UnwrapOne(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChoiceOrderPreserving(t *testing.T) {
	a := Sequence(Literal("a"), Literal("b"))
	b := Sequence(Literal("a"))
	c := Literal("x")

	alone := Run[string](a, "abz")
	chosen := Run[string](Choice[string](a, b, c), "abz")
	if alone.Index != chosen.Index || alone.Value().String() != chosen.Value().String() {
		t.Errorf("choice = %v, first alternative alone = %v", chosen, alone)
	}
}

func TestChoiceResetsBetweenAlternatives(t *testing.T) {
	p := Choice[string](Sequence(Literal("a"), Literal("x")), Sequence(Literal("a"), Literal("b")))
	s := Run[string](p, "ab")
	if !s.Succeeded() || s.Index != 2 {
		t.Errorf("got %v, want success at 2", s)
	}
}

func TestChoiceAdd(t *testing.T) {
	p := Choice[string]()
	if s := Run[string](p, "a"); !s.Failed() {
		t.Fatalf("empty choice succeeded: %v", s)
	}
	p.Add(Literal("a"))
	if s := Run[string](p, "a"); !s.Succeeded() {
		t.Errorf("choice with added alternative failed: %v", s.Err())
	}
}

func TestBetween(t *testing.T) {
	p := Between(Literal("("), Literal(")"), Literal("test"))

	s := Run(p, "(test)")
	if !s.Succeeded() {
		t.Fatalf("unexpected failure: %v", s.Err())
	}
	if got := s.Value().UnwrapMany(); len(got) != 1 || got[0] != "test" {
		t.Errorf("payload = %v, want [test]", got)
	}
	if s.Index != 6 {
		t.Errorf("index = %d, want 6", s.Index)
	}

	s = Run(p, "(Test)")
	if !s.Failed() || s.Index != 1 {
		t.Errorf("got %v, want failure at 1", s)
	}

	s = Run(p, "(test")
	if perr, _ := AsError(s.Err()); perr == nil || perr.Kind != EndOfInput || s.Index != 5 {
		t.Errorf("got %v, want end of input at 5", s)
	}
}

func TestBetweenRoundTrip(t *testing.T) {
	value := SepBy(Literal(","), Digits())
	tests := []struct {
		left, right, text string
	}{
		{"(", ")", "1,2,3"},
		{"[[", "]]", "42"},
		{"<", ">", ""},
	}
	for _, tt := range tests {
		t.Run(tt.left+tt.text+tt.right, func(t *testing.T) {
			direct := Run(value, tt.text)
			wrapped := Run(Between(Literal(tt.left), Literal(tt.right), value), tt.left+tt.text+tt.right)
			if !wrapped.Succeeded() {
				t.Fatalf("unexpected failure: %v", wrapped.Err())
			}
			if got, want := strings.Join(wrapped.Value().Values(), ","), strings.Join(direct.Value().Values(), ","); got != want {
				t.Errorf("payload = %q, want %q", got, want)
			}
			if want := len(tt.left) + len(tt.text) + len(tt.right); wrapped.Index != want {
				t.Errorf("index = %d, want %d", wrapped.Index, want)
			}
		})
	}
}

func TestStickyError(t *testing.T) {
	in := NewInput("Test")
	failed := Seed[string](in).Fail(3, errors.New("earlier failure"))

	parsers := map[string]Parser[string]{
		"literal":    Literal("Test"),
		"digits":     Digits(),
		"sequence":   Sequence(Literal("Test")),
		"choice":     Choice(Literal("Test")),
		"zeroOrMore": ZeroOrMore(Literal("Test")),
		"sepBy":      SepBy(Literal(","), Literal("Test")),
		"optional":   Optional(Literal("Test")),
	}
	for name, p := range parsers {
		t.Run(name, func(t *testing.T) {
			out := p.Transform(failed)
			if out.Index != 3 || out.Err() == nil || out.Err().Error() != "earlier failure" {
				t.Errorf("got %v, want the failed state unchanged", out)
			}
		})
	}
}

func TestTransformDoesNotMutateInput(t *testing.T) {
	start := Seed[string](NewInput("TestTest"))
	before := start
	ZeroOrMore(Literal("Test")).Transform(start)
	if start != before || start.Result != nil {
		t.Errorf("state changed: %v", start)
	}
}

func TestParseAll(t *testing.T) {
	if _, err := ParseAll(Digits(), "123"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	_, err := ParseAll(Digits(), "123abc")
	perr, ok := AsError(err)
	if !ok || perr.Kind != Unconsumed || perr.Offset != 3 {
		t.Errorf("error = %v, want unconsumed input at 3", err)
	}
	if v, err := Parse(Digits(), "123abc"); err != nil || v.UnwrapOne() != "123" {
		t.Errorf("Parse = %v, %v", v, err)
	}
}

func TestPosition(t *testing.T) {
	in := NewInput("ab\ncd\n\nef")
	tests := []struct {
		offset int
		want   string
	}{
		{0, "1:1"},
		{1, "1:2"},
		{3, "2:1"},
		{4, "2:2"},
		{7, "4:1"},
		{100, "4:3"},
	}
	for _, tt := range tests {
		if got := in.Position(tt.offset).String(); got != tt.want {
			t.Errorf("Position(%d) = %s, want %s", tt.offset, got, tt.want)
		}
	}
}

func TestCastCarriesError(t *testing.T) {
	s := Seed[string](NewInput("x")).Fail(0, errors.New("boom"))
	c := Cast[int](s)
	if !c.Failed() || c.Err().Error() != "boom" {
		t.Errorf("got %v, want carried error", c)
	}
	ok := Seed[string](NewInput("x")).Ok(1, One("x"))
	if c := Cast[int](ok); c.Result != nil || c.Index != 1 {
		t.Errorf("got %v, want pending state at 1", c)
	}
}
