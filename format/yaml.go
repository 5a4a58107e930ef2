package format

import (
	"io"

	"gopkg.in/yaml.v3"
)

type YAMLEncoder struct {
	w      io.Writer
	report *Report
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(report *Report) error {
	e.report = report
	return write(e.w, e)
}

func (e *YAMLEncoder) MarshalText() ([]byte, error) {
	return yaml.Marshal(e.report)
}
