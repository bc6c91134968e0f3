package expr

// A Literal is a numeral or an identifier.
type Literal struct {
	node
	text string
}

func NewLiteral(text string) *Literal {
	return &Literal{text: text}
}

func (l *Literal) Kind() Kind {
	return KindLiteral
}

// Text returns the literal exactly as it was written.
func (l *Literal) Text() string {
	return l.text
}

func (l *Literal) String() string {
	return l.text
}

func (l *Literal) Focus(x, y float64, g Geometry) Expression {
	if box, ok := g.Bounds(l); ok && box.Contains(x, y) {
		return l
	}
	return nil
}

func (l *Literal) DeepCopy() Expression {
	return NewLiteral(l.text)
}

// Flatten does nothing; literals have no structure.
func (l *Literal) Flatten() {}

func (l *Literal) ConvertToString(indentLevel int) string {
	return indentLine(indentLevel, l.text)
}
