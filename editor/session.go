// Package editor holds the interactive state shared by every host: the
// current tree and its layout, which expression has focus, and the ghost
// copy that follows the pointer while an operand is dragged.
package editor

import (
	"fmt"

	"github.com/dhamidi/exped/expr"
	"github.com/dhamidi/exped/expr/parser"
	"github.com/dhamidi/exped/layout"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("exped.editor")

// Session is not safe for concurrent use. Hosts serialize events.
type Session struct {
	config Config

	text    string
	root    expr.Expression
	layout  *layout.Layout
	focus   expr.Expression
	invalid bool
	err     error

	ghost       expr.Expression
	ghostLayout *layout.Layout
	offsetX     float64
	offsetY     float64
	pointerX    float64
	pointerY    float64
}

// NewSession starts a session and parses config.Expression if set.
func NewSession(config Config) (*Session, error) {
	s := &Session{config: config}
	if config.Expression != "" {
		if err := s.Parse(config.Expression); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Session) Config() Config {
	return s.config
}

// Parse replaces the tree with the parsed text. On failure the current
// tree is kept and the session is marked invalid until the next Edit or
// successful Parse.
func (s *Session) Parse(text string) error {
	e, err := parser.Parse(text, true)
	if err != nil {
		s.invalid = true
		s.err = err
		log.Infof("rejected %q: %s", text, err)
		return fmt.Errorf("parse expression: %w", err)
	}
	if s.config.Flatten {
		e.Flatten()
	}

	s.Release()
	s.text = text
	s.root = e
	s.focus = e
	s.layout = layout.New(e, s.config.Metrics, s.config.Origin)
	s.invalid = false
	s.err = nil
	log.Debugf("parsed %s", e)
	return nil
}

// Edit notes that the input text changed since the last parse.
func (s *Session) Edit() {
	s.invalid = false
	s.err = nil
}

// Press moves the focus one level down: to the operand of the focused
// expression under the pointer, or back to the root when there is none.
// A focused operand is lifted and a ghost copy of it is created.
func (s *Session) Press(x, y float64) expr.Expression {
	if s.root == nil {
		return nil
	}
	s.Release()

	next := s.root
	if c, ok := s.focus.(expr.Compound); ok {
		for _, child := range c.Children() {
			if box, ok := s.layout.Bounds(child); ok && box.Contains(x, y) {
				next = child
				break
			}
		}
	}
	s.focus = next
	s.pointerX, s.pointerY = x, y

	if next != s.root {
		s.ghost = next.DeepCopy()
		s.ghostLayout = layout.New(s.ghost, s.config.Metrics, layout.Point{})
	}
	return next
}

// Drag moves the ghost with the pointer and lets the lifted operand trade
// places with a neighbour when the ghost is closer to that slot.
func (s *Session) Drag(x, y float64) expr.Swap {
	if s.ghost == nil {
		return expr.Swap{}
	}
	s.offsetX += x - s.pointerX
	s.offsetY += y - s.pointerY
	s.pointerX, s.pointerY = x, y

	before, ok := s.layout.Bounds(s.focus)
	if !ok {
		return expr.Swap{}
	}
	result := expr.Reorder(s.focus, before.X+s.offsetX, s.layout)
	if result.Moved {
		after, _ := s.layout.Bounds(s.focus)
		s.offsetX -= after.X - before.X
		log.Debugf("moved %s from %d to %d", s.focus, result.From, result.To)
	}
	return result
}

// Release drops the ghost. The focus stays where it is.
func (s *Session) Release() {
	s.ghost = nil
	s.ghostLayout = nil
	s.offsetX = 0
	s.offsetY = 0
}

// Locate returns the deepest expression at the point.
func (s *Session) Locate(x, y float64) expr.Expression {
	if s.layout == nil {
		return nil
	}
	return s.layout.Focus(x, y)
}

func (s *Session) Text() string {
	return s.text
}

func (s *Session) Root() expr.Expression {
	return s.root
}

func (s *Session) Layout() *layout.Layout {
	return s.layout
}

func (s *Session) Focused() expr.Expression {
	return s.focus
}

func (s *Session) Ghost() expr.Expression {
	return s.ghost
}

// GhostOffset is how far the ghost has travelled from the lifted
// operand's current position.
func (s *Session) GhostOffset() (float64, float64) {
	return s.offsetX, s.offsetY
}

func (s *Session) Invalid() bool {
	return s.invalid
}

// Err returns the parse error behind Invalid.
func (s *Session) Err() error {
	return s.err
}
