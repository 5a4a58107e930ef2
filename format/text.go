package format

import (
	"fmt"
	"io"
	"strings"
)

// TextEncoder writes one tab-separated record per line:
//
//	ok	<index>	<line:col>
//	value	<value>
//
// or, for a failed run,
//
//	error	<line:col>	<kind>	<message>
type TextEncoder struct {
	w      io.Writer
	report *Report
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(report *Report) error {
	e.report = report
	return write(e.w, e)
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	r := e.report

	if r.Error != nil {
		fmt.Fprintf(&sb, "error\t%s\t%s\t%s\n", r.Position, r.Error.Kind, oneLine(r.Error.Message))
		return []byte(sb.String()), nil
	}

	status := "ok"
	if !r.OK {
		status = "pending"
	}
	fmt.Fprintf(&sb, "%s\t%d\t%s\n", status, r.Index, r.Position)
	for _, v := range r.Values {
		fmt.Fprintf(&sb, "value\t%s\n", oneLine(fmt.Sprint(v)))
	}
	return []byte(sb.String()), nil
}

func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", `\n`)
}
