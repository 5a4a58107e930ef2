// Package format renders the outcome of a parse as JSON, YAML or text.
package format

import (
	"encoding"
	"fmt"
	"io"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(report *Report) error
}

// Names lists the accepted encoder names.
var Names = []string{"json", "yaml", "text"}

// NewEncoder returns the encoder called name writing to w.
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	case "text", "":
		return NewTextEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want one of %v)", name, Names)
	}
}

func write(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
