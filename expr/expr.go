// Package expr implements the expression tree behind the editor: literals,
// n-ary operator chains and parentheticals, together with the structural
// operations the editor performs on them (flattening, deep copies, hit
// testing and drag-driven reordering).
package expr

import "strings"

type Kind int

const (
	KindLiteral Kind = iota
	KindChain
	KindParen
)

var kindNames = map[Kind]string{
	KindLiteral: "Literal",
	KindChain:   "Chain",
	KindParen:   "Paren",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// An Expression is a node in an expression tree.
//
// The set of implementations is closed: *Literal, *Chain and *Paren.
type Expression interface {
	Kind() Kind

	// Parent returns the compound expression this expression is
	// attached to, or nil for a root.
	Parent() Compound

	// Focus returns the deepest expression in the subtree whose box,
	// as reported by g, contains the point (x, y).
	Focus(x, y float64, g Geometry) Expression

	// DeepCopy returns an independent copy of the subtree. The copy
	// has no parent.
	DeepCopy() Expression

	// Flatten merges nested chains of the same operator into their
	// parent, throughout the subtree.
	Flatten()

	// ConvertToString dumps the subtree one token per line, indented
	// with one tab per level starting at indentLevel.
	ConvertToString(indentLevel int) string

	// String returns the infix form of the expression.
	String() string

	setParent(p Compound)
}

// A Compound is an expression with children.
type Compound interface {
	Expression

	// Children returns the ordered children. The slice aliases the
	// expression's storage and is only valid until the next
	// structural change. To address a child across changes, keep the
	// child itself and look it up again with IndexOf, or keep its Path
	// and resolve it with At.
	Children() []Expression

	// AddSubexpression appends child and makes this expression its
	// parent. The child must not be attached elsewhere.
	AddSubexpression(child Expression)

	// ClearSubexpression empties the child list. The parent fields of
	// the removed children are left as they are.
	ClearSubexpression()

	swapChildren(i, j int)
}

type node struct {
	parent Compound
}

func (n *node) Parent() Compound {
	return n.parent
}

func (n *node) setParent(p Compound) {
	n.parent = p
}

type compound struct {
	node
	children []Expression
}

func (c *compound) Children() []Expression {
	return c.children
}

func (c *compound) ClearSubexpression() {
	c.children = nil
}

func (c *compound) swapChildren(i, j int) {
	c.children[i], c.children[j] = c.children[j], c.children[i]
}

func indentLine(level int, token string) string {
	return strings.Repeat("\t", level) + token + "\n"
}

func dumpCompound(c Compound, token string, indentLevel int) string {
	var sb strings.Builder
	sb.WriteString(indentLine(indentLevel, token))
	for _, child := range c.Children() {
		sb.WriteString(child.ConvertToString(indentLevel + 1))
	}
	return sb.String()
}

// IndexOf returns the position of child among the children of c, or -1.
func IndexOf(c Compound, child Expression) int {
	for i, e := range c.Children() {
		if e == child {
			return i
		}
	}
	return -1
}

// Root walks up the parent links and returns the topmost expression.
func Root(e Expression) Expression {
	for {
		p := e.Parent()
		if p == nil {
			return e
		}
		e = p
	}
}

// Within reports whether e is ancestor itself or lies in its subtree.
func Within(e, ancestor Expression) bool {
	for e != nil {
		if e == ancestor {
			return true
		}
		p := e.Parent()
		if p == nil {
			return false
		}
		e = p
	}
	return false
}
