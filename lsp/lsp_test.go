package lsp

import (
	"errors"
	"strings"
	"testing"

	"github.com/dhamidi/parsec/ebnf/parse"
	"github.com/dhamidi/parsec/lisp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var lispChecker = CheckFunc(func(text string) error {
	_, err := lisp.Parse(text)
	return err
})

func TestDiagnose_Clean(t *testing.T) {
	got := Diagnose(lispChecker, "(+ 1 (* 2 3))\n")
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want an empty, non-nil list", got)
	}
}

func TestDiagnose_Positions(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		start     protocol.Position
		end       protocol.Position
		wantInMsg string
	}{
		{
			name:      "unconsumed on second line",
			text:      "(+ 1 2)\n  x",
			start:     protocol.Position{Line: 1, Character: 2},
			end:       protocol.Position{Line: 1, Character: 3},
			wantInMsg: "unconsumed input",
		},
		{
			name:      "unclosed list",
			text:      "(+ 1 2",
			start:     protocol.Position{Line: 0, Character: 0},
			end:       protocol.Position{Line: 0, Character: 1},
			wantInMsg: "failed to parse any of the provided choices",
		},
		{
			name:      "empty document",
			text:      "",
			start:     protocol.Position{Line: 0, Character: 0},
			end:       protocol.Position{Line: 0, Character: 0},
			wantInMsg: "index 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diagnose(lispChecker, tt.text)
			if len(got) != 1 {
				t.Fatalf("got %d diagnostics, want 1", len(got))
			}
			d := got[0]
			if d.Range.Start != tt.start || d.Range.End != tt.end {
				t.Errorf("got range %v-%v, want %v-%v", d.Range.Start, d.Range.End, tt.start, tt.end)
			}
			if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError {
				t.Errorf("got severity %v, want error", d.Severity)
			}
			if !strings.Contains(d.Message, tt.wantInMsg) {
				t.Errorf("got message %q, want it to contain %q", d.Message, tt.wantInMsg)
			}
		})
	}
}

func TestDiagnose_PlainError(t *testing.T) {
	got := Diagnose(CheckFunc(func(string) error { return errors.New("boom") }), "abc")
	if len(got) != 1 || got[0].Message != "boom" {
		t.Fatalf("got %v, want one diagnostic saying boom", got)
	}
	if got[0].Range.Start != (protocol.Position{}) {
		t.Errorf("got start %v, want 0:0", got[0].Range.Start)
	}
}

func TestGrammarChecker(t *testing.T) {
	g, err := parse.ParseGrammar("list.ebnf", strings.NewReader(`
		List = "[" [ Item { "," Item } ] "]" .
		Item = number .
		number = digit { digit } .
		digit = "0" … "9" .
	`))
	if err != nil {
		t.Fatalf("parse grammar: %v", err)
	}
	p, err := parse.Compile(g, "List", parse.WithWhitespace())
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	checker := GrammarChecker(p)

	if got := Diagnose(checker, "[1, 2, 30]"); len(got) != 0 {
		t.Errorf("got %v, want no diagnostics", got)
	}

	got := Diagnose(checker, "[1, 2]\n]")
	if len(got) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(got))
	}
	if want := (protocol.Position{Line: 1, Character: 0}); got[0].Range.Start != want {
		t.Errorf("got start %v, want %v", got[0].Range.Start, want)
	}
}

func TestServerDocuments(t *testing.T) {
	ls := NewServer(lispChecker, "test")
	if _, ok := ls.Document("file:///a.lisp"); ok {
		t.Fatal("unexpected document")
	}
	ls.mu.Lock()
	ls.docs["file:///a.lisp"] = "(+ 1 2)"
	ls.mu.Unlock()
	if text, ok := ls.Document("file:///a.lisp"); !ok || text != "(+ 1 2)" {
		t.Errorf("got %q %v", text, ok)
	}
}

func TestDisplayPath(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"file:///tmp/x/../a.lisp", "/tmp/a.lisp"},
		{"untitled:1", "untitled:1"},
	}
	for _, tt := range tests {
		if got := displayPath(tt.uri); got != tt.want {
			t.Errorf("displayPath(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}
