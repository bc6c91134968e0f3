package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/exped/expr"
)

// LineEncoder writes one tab-separated line per node: the node's path of
// child indices from the root ("." for the root), its kind and its token.
type LineEncoder struct {
	w    io.Writer
	expr expr.Expression
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(x expr.Expression) error {
	e.expr = x
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	if e.expr != nil {
		e.writeNode(&sb, e.expr, nil)
	}
	return []byte(sb.String()), nil
}

func (e *LineEncoder) writeNode(sb *strings.Builder, x expr.Expression, path []int) {
	fmt.Fprintf(sb, "%s\t%s\t%s\n", pathString(path), x.Kind(), token(x))
	if c, ok := x.(expr.Compound); ok {
		for i, child := range c.Children() {
			e.writeNode(sb, child, append(path[:len(path):len(path)], i))
		}
	}
}

func token(x expr.Expression) string {
	switch x := x.(type) {
	case *expr.Literal:
		return x.Text()
	case *expr.Chain:
		return string(x.Operator())
	default:
		return "()"
	}
}

func pathString(path []int) string {
	if len(path) == 0 {
		return "."
	}
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ".")
}
