package format

import (
	"io"

	"github.com/dhamidi/exped/expr"
)

// DumpEncoder writes the indented one-token-per-line tree dump.
type DumpEncoder struct {
	w    io.Writer
	expr expr.Expression
}

func NewDumpEncoder(w io.Writer) *DumpEncoder {
	return &DumpEncoder{w: w}
}

func (e *DumpEncoder) Encode(x expr.Expression) error {
	e.expr = x
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *DumpEncoder) MarshalText() ([]byte, error) {
	if e.expr == nil {
		return nil, nil
	}
	return []byte(e.expr.ConvertToString(0)), nil
}
