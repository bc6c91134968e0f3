package format

import (
	"io"

	"github.com/dhamidi/exped/expr"
)

// InfixEncoder writes the expression back as text, with parentheses only
// where the tree has a parenthetical.
type InfixEncoder struct {
	w    io.Writer
	expr expr.Expression
}

func NewInfixEncoder(w io.Writer) *InfixEncoder {
	return &InfixEncoder{w: w}
}

func (e *InfixEncoder) Encode(x expr.Expression) error {
	e.expr = x
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *InfixEncoder) MarshalText() ([]byte, error) {
	if e.expr == nil {
		return nil, nil
	}
	return []byte(e.expr.String() + "\n"), nil
}
