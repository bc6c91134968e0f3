package editor

import (
	"github.com/dhamidi/exped/expr"
	"github.com/dhamidi/exped/layout"
)

// RunView is one rendered token as hosts draw it.
type RunView struct {
	Kind    string  `json:"kind"`
	Text    string  `json:"text"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Focused bool    `json:"focused,omitempty"`
	Lifted  bool    `json:"lifted,omitempty"`
}

// Snapshot is the drawable state of a session.
type Snapshot struct {
	Text  string    `json:"text"`
	Valid bool      `json:"valid"`
	Error string    `json:"error,omitempty"`
	Width float64   `json:"width"`
	Runs  []RunView `json:"runs"`
	Ghost []RunView `json:"ghost,omitempty"`
	Focus string    `json:"focus,omitempty"`
	Dump  string    `json:"dump"`
	Infix string    `json:"infix"`
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Text:  s.text,
		Valid: !s.invalid,
		Runs:  []RunView{},
	}
	if s.err != nil {
		snap.Error = s.err.Error()
	}
	if s.root == nil {
		return snap
	}

	snap.Width = s.layout.Width()
	snap.Dump = s.root.ConvertToString(0)
	snap.Infix = s.root.String()

	selected := s.focus != s.root
	if selected {
		snap.Focus = s.focus.String()
	}
	for _, run := range s.layout.Runs() {
		view := newRunView(run, 0, 0)
		if selected && expr.Within(run.Owner, s.focus) {
			view.Focused = true
			view.Lifted = s.ghost != nil
		}
		snap.Runs = append(snap.Runs, view)
	}

	if s.ghost != nil {
		box, _ := s.layout.Bounds(s.focus)
		for _, run := range s.ghostLayout.Runs() {
			snap.Ghost = append(snap.Ghost, newRunView(run, box.X+s.offsetX, box.Y+s.offsetY))
		}
	}
	return snap
}

func newRunView(run layout.Run, dx, dy float64) RunView {
	return RunView{
		Kind:   run.Kind.String(),
		Text:   run.Text,
		X:      run.Box.X + dx,
		Y:      run.Box.Y + dy,
		Width:  run.Box.Width,
		Height: run.Box.Height,
	}
}
