package format

import (
	"github.com/dhamidi/parsec/combinator"
)

// Report summarises one parse run.
type Report struct {
	Input    string              `json:"input" yaml:"input"`
	OK       bool                `json:"ok" yaml:"ok"`
	Index    int                 `json:"index" yaml:"index"`
	Position combinator.Position `json:"position" yaml:"position"`
	Error    *ReportError        `json:"error,omitempty" yaml:"error,omitempty"`
	Values   []any               `json:"values,omitempty" yaml:"values,omitempty"`
}

// ReportError describes the failure of a run.
type ReportError struct {
	Kind     string              `json:"kind" yaml:"kind"`
	Parser   string              `json:"parser,omitempty" yaml:"parser,omitempty"`
	Expected string              `json:"expected,omitempty" yaml:"expected,omitempty"`
	Got      string              `json:"got,omitempty" yaml:"got,omitempty"`
	Position combinator.Position `json:"position" yaml:"position"`
	Message  string              `json:"message" yaml:"message"`
}

// NewReport builds a report from the final state of a run.
func NewReport[R any](s combinator.State[R]) *Report {
	in := s.Target
	r := &Report{
		Input:    in.Text(),
		Index:    s.Index,
		Position: in.Position(s.Index),
	}
	if err := s.Err(); err != nil {
		r.fail(in, err)
		return r
	}
	if !s.Succeeded() {
		return r
	}
	r.OK = true
	for _, v := range s.Value().Values() {
		r.Values = append(r.Values, v)
	}
	return r
}

// NewResult builds a report for APIs that return a value and an error
// rather than a state. A nil value is left out.
func NewResult(input string, value any, err error) *Report {
	in := combinator.NewInput(input)
	r := &Report{Input: input}
	if err != nil {
		r.fail(in, err)
		return r
	}
	r.OK = true
	r.Index = in.Len()
	r.Position = in.Position(in.Len())
	if value != nil {
		r.Values = []any{value}
	}
	return r
}

func (r *Report) fail(in *combinator.Input, err error) {
	r.OK = false
	re := &ReportError{Kind: "error", Message: err.Error()}
	if perr, ok := combinator.AsError(err); ok {
		re.Kind = perr.Kind.String()
		re.Parser = perr.Parser
		re.Expected = perr.Expected
		re.Got = perr.Got
		re.Position = in.Position(perr.Offset)
		r.Index = perr.Offset
		r.Position = re.Position
	}
	r.Error = re
}
