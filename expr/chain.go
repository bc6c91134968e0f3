package expr

import "strings"

type Operator string

const (
	Add      Operator = "+"
	Multiply Operator = "*"
)

// Precedence orders operators by binding strength.
func (o Operator) Precedence() int {
	switch o {
	case Multiply:
		return 2
	case Add:
		return 1
	}
	return 0
}

// A Chain is an n-ary application of one associative operator, such as
// a+b+c or 2*x*y. The order of the operands is the order they are
// written in.
type Chain struct {
	compound
	op Operator
}

// NewChain returns a chain over the given operands, attaching them to it.
func NewChain(op Operator, operands ...Expression) *Chain {
	c := &Chain{op: op}
	for _, e := range operands {
		c.AddSubexpression(e)
	}
	return c
}

func (c *Chain) Kind() Kind {
	return KindChain
}

func (c *Chain) Operator() Operator {
	return c.op
}

func (c *Chain) AddSubexpression(child Expression) {
	c.children = append(c.children, child)
	child.setParent(c)
}

// Flatten rewrites the subtree bottom-up. Every child that is a chain
// of the same operator is replaced, in place, by its own operands.
// Parentheticals are never merged.
func (c *Chain) Flatten() {
	flat := make([]Expression, 0, len(c.children))
	for _, child := range c.children {
		child.Flatten()
		if sub, ok := child.(*Chain); ok && sub.op == c.op {
			flat = append(flat, sub.children...)
			continue
		}
		flat = append(flat, child)
	}

	c.ClearSubexpression()
	for _, e := range flat {
		c.AddSubexpression(e)
	}
}

func (c *Chain) DeepCopy() Expression {
	cp := &Chain{op: c.op}
	for _, child := range c.children {
		cp.AddSubexpression(child.DeepCopy())
	}
	return cp
}

func (c *Chain) ConvertToString(indentLevel int) string {
	return dumpCompound(c, string(c.op), indentLevel)
}

func (c *Chain) Focus(x, y float64, g Geometry) Expression {
	return focusCompound(c, x, y, g)
}

func (c *Chain) String() string {
	parts := make([]string, len(c.children))
	for i, child := range c.children {
		s := child.String()
		if sub, ok := child.(*Chain); ok && sub.op.Precedence() < c.op.Precedence() {
			s = "(" + s + ")"
		}
		parts[i] = s
	}
	return strings.Join(parts, string(c.op))
}
