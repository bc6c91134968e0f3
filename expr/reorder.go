package expr

import "math"

// Visual is one rendered child of a compound: an operand, or an
// operator token when Expr is nil.
type Visual struct {
	Expr Expression
	Box  Box
}

// Layout is what Reorder needs to know about the rendering.
type Layout interface {
	Geometry

	// VisualChildren returns the rendered children of parent from left
	// to right, operands interleaved with operator tokens.
	VisualChildren(parent Compound) []Visual

	// SwapVisual exchanges the visual children at i and j. It is called
	// after the corresponding operands were exchanged in the tree.
	SwapVisual(parent Compound, i, j int)
}

// Swap describes the outcome of Reorder. From and To are operand
// indices within the parent.
type Swap struct {
	Moved bool
	From  int
	To    int
}

// Reorder decides whether e, dragged so that its left edge would be at
// x, should trade places with the operand to its left or right, and
// performs at most one such exchange in both the tree and l.
//
// The anchor of a neighbouring slot is where e's left edge would be
// after the exchange. e moves when x is strictly closer to that anchor
// than to e's current left edge. The left neighbour is tried first.
func Reorder(e Expression, x float64, l Layout) Swap {
	parent := e.Parent()
	if parent == nil {
		return Swap{}
	}
	current, ok := l.Bounds(e)
	if !ok {
		return Swap{}
	}

	visual := l.VisualChildren(parent)
	i := visualIndex(visual, e)
	if i < 0 {
		return Swap{}
	}
	currentX := current.X

	var operatorWidth float64
	if len(visual) > 1 {
		if i == 0 {
			operatorWidth = visual[1].Box.Width
		} else {
			operatorWidth = visual[len(visual)-2].Box.Width
		}
	}

	// Edge of the slot preceding e. Without a left neighbour that is
	// the operator-sized gap in front of e.
	leftEdge := currentX - operatorWidth
	if i-2 >= 0 {
		left := visual[i-2].Box
		leftEdge = left.MaxX()
		if math.Abs(x-left.X) < math.Abs(x-currentX) {
			return swap(parent, l, i, i-2)
		}
	}

	if i+2 < len(visual) {
		rightX := leftEdge + 2*operatorWidth + visual[i+2].Box.Width
		if math.Abs(x-rightX) < math.Abs(x-currentX) {
			return swap(parent, l, i, i+2)
		}
	}

	return Swap{}
}

func swap(parent Compound, l Layout, i, j int) Swap {
	parent.swapChildren(i/2, j/2)
	l.SwapVisual(parent, i, j)
	return Swap{Moved: true, From: i / 2, To: j / 2}
}

func visualIndex(visual []Visual, e Expression) int {
	for i, v := range visual {
		if v.Expr == e {
			return i
		}
	}
	return -1
}
