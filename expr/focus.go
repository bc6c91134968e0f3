package expr

// Box is an axis-aligned rectangle in scene coordinates.
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether the point lies inside the box. The right and
// bottom edges are exclusive.
func (b Box) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

func (b Box) MaxX() float64 {
	return b.X + b.Width
}

// Geometry reports where expressions were rendered.
type Geometry interface {
	// Bounds returns the box of e, or false if e is not rendered.
	Bounds(e Expression) (Box, bool)
}

// focusCompound checks children before the node itself because a
// compound's box contains the boxes of its children.
func focusCompound(c Compound, x, y float64, g Geometry) Expression {
	for _, child := range c.Children() {
		if found := child.Focus(x, y, g); found != nil {
			return found
		}
	}
	if box, ok := g.Bounds(c); ok && box.Contains(x, y) {
		return c
	}
	return nil
}
