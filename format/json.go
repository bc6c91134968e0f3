package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/exped/expr"
)

type JSONEncoder struct {
	w    io.Writer
	expr expr.Expression
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(x expr.Expression) error {
	e.expr = x
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(NodeJSON(e.expr), "", "  ")
}

// Node is the JSON shape of an expression.
type Node struct {
	Kind     string  `json:"kind"`
	Text     string  `json:"text,omitempty"`
	Op       string  `json:"op,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// NodeJSON converts a tree to its JSON shape. A nil tree gives nil.
func NodeJSON(x expr.Expression) *Node {
	if x == nil {
		return nil
	}
	n := &Node{Kind: x.Kind().String()}

	switch x := x.(type) {
	case *expr.Literal:
		n.Text = x.Text()
	case *expr.Chain:
		n.Op = string(x.Operator())
	}

	if c, ok := x.(expr.Compound); ok && len(c.Children()) > 0 {
		n.Children = make([]*Node, len(c.Children()))
		for i, child := range c.Children() {
			n.Children[i] = NodeJSON(child)
		}
	}
	return n
}
