package expr

// A Paren is an explicit grouping around a single subexpression. It is
// a boundary for Flatten: chains inside it are never merged with chains
// outside it.
type Paren struct {
	compound
}

func NewParen(child Expression) *Paren {
	p := &Paren{}
	p.AddSubexpression(child)
	return p
}

func (p *Paren) Kind() Kind {
	return KindParen
}

// Child returns the grouped subexpression.
func (p *Paren) Child() Expression {
	if len(p.children) == 0 {
		return nil
	}
	return p.children[0]
}

// AddSubexpression sets the grouped subexpression. A Paren has exactly
// one child, so adding replaces the current one; the replaced child keeps
// its parent field, as with ClearSubexpression.
func (p *Paren) AddSubexpression(child Expression) {
	p.children = append(p.children[:0], child)
	child.setParent(p)
}

func (p *Paren) Flatten() {
	for _, child := range p.children {
		child.Flatten()
	}
}

func (p *Paren) DeepCopy() Expression {
	cp := &Paren{}
	for _, child := range p.children {
		cp.AddSubexpression(child.DeepCopy())
	}
	return cp
}

func (p *Paren) ConvertToString(indentLevel int) string {
	return dumpCompound(p, "()", indentLevel)
}

func (p *Paren) Focus(x, y float64, g Geometry) Expression {
	return focusCompound(p, x, y, g)
}

func (p *Paren) String() string {
	if c := p.Child(); c != nil {
		return "(" + c.String() + ")"
	}
	return "()"
}
