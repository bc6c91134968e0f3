// Package layout places an expression tree on a single row of fixed-width
// cells and answers the geometric questions the editor asks about it:
// where each expression is, which tokens a compound renders, and in what
// order.
package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/dhamidi/exped/expr"
)

// Metrics sizes the grid. Terminal hosts use one unit per cell, the web
// host uses pixels.
type Metrics struct {
	CellWidth       float64
	CellHeight      float64
	OperatorPadding int
}

var (
	DefaultMetrics = Metrics{CellWidth: 1, CellHeight: 1, OperatorPadding: 1}
	PixelMetrics   = Metrics{CellWidth: 14, CellHeight: 28, OperatorPadding: 1}
)

type Point struct {
	X float64
	Y float64
}

type RunKind int

const (
	RunLiteral RunKind = iota
	RunOperator
	RunOpenParen
	RunCloseParen
)

var runKindNames = map[RunKind]string{
	RunLiteral:    "literal",
	RunOperator:   "operator",
	RunOpenParen:  "open",
	RunCloseParen: "close",
}

func (k RunKind) String() string {
	if name, ok := runKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// A Run is one rendered token. Owner is the literal itself, or the chain
// or parenthetical the operator or bracket belongs to.
type Run struct {
	Kind  RunKind
	Text  string
	Box   expr.Box
	Owner expr.Expression
}

// Layout is the rendering of one tree. It implements expr.Layout.
type Layout struct {
	root    expr.Expression
	metrics Metrics
	origin  Point

	boxes   map[expr.Expression]expr.Box
	visuals map[expr.Compound][]expr.Visual
	runs    []Run
	width   float64
}

func New(root expr.Expression, metrics Metrics, origin Point) *Layout {
	l := &Layout{
		root:    root,
		metrics: metrics,
		origin:  origin,
	}
	l.Relayout()
	return l
}

func (l *Layout) Root() expr.Expression {
	return l.root
}

func (l *Layout) Origin() Point {
	return l.origin
}

func (l *Layout) Metrics() Metrics {
	return l.metrics
}

// Relayout recomputes every box from the current shape of the tree.
func (l *Layout) Relayout() {
	l.boxes = make(map[expr.Expression]expr.Box)
	l.visuals = make(map[expr.Compound][]expr.Visual)
	l.runs = nil
	l.width = 0
	if l.root == nil {
		return
	}
	l.width = l.place(l.root, l.origin.X) - l.origin.X
}

func (l *Layout) place(e expr.Expression, x float64) float64 {
	start := x
	switch e := e.(type) {
	case *expr.Literal:
		x = l.emit(RunLiteral, e.Text(), e, x)

	case *expr.Paren:
		x = l.emit(RunOpenParen, "(", e, x)
		if child := e.Child(); child != nil {
			x = l.place(child, x)
			l.visuals[e] = []expr.Visual{{Expr: child, Box: l.boxes[child]}}
		}
		x = l.emit(RunCloseParen, ")", e, x)

	case *expr.Chain:
		pad := strings.Repeat(" ", l.metrics.OperatorPadding)
		var visual []expr.Visual
		for i, child := range e.Children() {
			if i > 0 {
				opStart := x
				x = l.emit(RunOperator, pad+string(e.Operator())+pad, e, x)
				visual = append(visual, expr.Visual{Box: l.box(opStart, x)})
			}
			x = l.place(child, x)
			visual = append(visual, expr.Visual{Expr: child, Box: l.boxes[child]})
		}
		l.visuals[e] = visual
	}

	l.boxes[e] = l.box(start, x)
	return x
}

func (l *Layout) emit(kind RunKind, text string, owner expr.Expression, x float64) float64 {
	end := x + float64(utf8.RuneCountInString(text))*l.metrics.CellWidth
	l.runs = append(l.runs, Run{Kind: kind, Text: text, Box: l.box(x, end), Owner: owner})
	return end
}

func (l *Layout) box(from, to float64) expr.Box {
	return expr.Box{X: from, Y: l.origin.Y, Width: to - from, Height: l.metrics.CellHeight}
}

func (l *Layout) Bounds(e expr.Expression) (expr.Box, bool) {
	b, ok := l.boxes[e]
	return b, ok
}

func (l *Layout) VisualChildren(parent expr.Compound) []expr.Visual {
	return l.visuals[parent]
}

// SwapVisual re-lays the tree out. The tree already holds the new order,
// so recomputing is equivalent to exchanging the two entries and
// shifting everything between them.
func (l *Layout) SwapVisual(parent expr.Compound, i, j int) {
	l.Relayout()
}

// Runs returns the rendered tokens from left to right.
func (l *Layout) Runs() []Run {
	return l.runs
}

func (l *Layout) Width() float64 {
	return l.width
}

// Text returns the row as plain text, one character per cell.
func (l *Layout) Text() string {
	var sb strings.Builder
	for _, r := range l.runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Focus returns the deepest expression rendered at (x, y).
func (l *Layout) Focus(x, y float64) expr.Expression {
	if l.root == nil {
		return nil
	}
	return l.root.Focus(x, y, l)
}
