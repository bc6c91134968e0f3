// Package tui is the terminal host of the editor. The first line is the
// input field; the expression is drawn below it and rearranged with the
// mouse.
package tui

import (
	"fmt"
	"strings"

	"github.com/dhamidi/exped/editor"
	"github.com/dhamidi/exped/layout"

	"github.com/gdamore/tcell/v2"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("exped.tui")

const (
	inputRow  = 0
	statusRow = 1
	sceneRow  = 3
	dumpRow   = 5
	sceneCol  = 2
	prompt    = "> "
)

var (
	styleInput   = tcell.StyleDefault
	styleInvalid = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleRun     = tcell.StyleDefault
	styleFocused = tcell.StyleDefault.Underline(true)
	styleLifted  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleGhost   = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleDump    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Feedback is told about the outcome of user actions.
type Feedback interface {
	Swapped()
	Rejected()
}

type silent struct{}

func (silent) Swapped()  {}
func (silent) Rejected() {}

type App struct {
	screen   tcell.Screen
	session  *editor.Session
	feedback Feedback

	input    []rune
	cursor   int
	dragging bool
}

// NewScreen creates and initializes the terminal screen.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

// New starts a session laid out in terminal cells below the input line.
// feedback may be nil.
func New(screen tcell.Screen, config editor.Config, feedback Feedback) (*App, error) {
	config.Metrics = layout.DefaultMetrics
	config.Origin = layout.Point{X: sceneCol, Y: sceneRow}

	session, err := editor.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	if feedback == nil {
		feedback = silent{}
	}

	a := &App{
		screen:   screen,
		session:  session,
		feedback: feedback,
		input:    []rune(session.Text()),
	}
	a.cursor = len(a.input)
	return a, nil
}

func (a *App) Session() *editor.Session {
	return a.session
}

// Input returns the text currently in the input field.
func (a *App) Input() string {
	return string(a.input)
}

// Run draws and processes events until the user quits. Events are read
// on a separate goroutine and handled here one at a time.
func (a *App) Run() error {
	a.screen.EnableMouse()
	defer a.screen.DisableMouse()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	a.Draw()
	for ev := range events {
		if !a.HandleEvent(ev) {
			return nil
		}
		a.Draw()
	}
	return nil
}

func (a *App) Close() {
	a.screen.Fini()
}

// HandleEvent applies one event and reports whether the app should keep
// running.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false

	case tcell.KeyEnter:
		if err := a.session.Parse(string(a.input)); err != nil {
			a.feedback.Rejected()
		}
		return true

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if a.cursor > 0 {
			a.input = append(a.input[:a.cursor-1], a.input[a.cursor:]...)
			a.cursor--
		}

	case tcell.KeyDelete:
		if a.cursor < len(a.input) {
			a.input = append(a.input[:a.cursor], a.input[a.cursor+1:]...)
		}

	case tcell.KeyLeft:
		if a.cursor > 0 {
			a.cursor--
		}
		return true

	case tcell.KeyRight:
		if a.cursor < len(a.input) {
			a.cursor++
		}
		return true

	case tcell.KeyHome:
		a.cursor = 0
		return true

	case tcell.KeyEnd:
		a.cursor = len(a.input)
		return true

	case tcell.KeyRune:
		a.input = append(a.input[:a.cursor], append([]rune{ev.Rune()}, a.input[a.cursor:]...)...)
		a.cursor++

	default:
		return true
	}

	a.session.Edit()
	return true
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	x, y := float64(col)+0.5, float64(row)+0.5

	if ev.Buttons()&tcell.Button1 != 0 {
		if !a.dragging {
			a.dragging = true
			focus := a.session.Press(x, y)
			log.Debugf("press at %d,%d focused %v", col, row, focus)
			return
		}
		if swap := a.session.Drag(x, y); swap.Moved {
			a.feedback.Swapped()
		}
		return
	}

	if a.dragging {
		a.dragging = false
		a.session.Release()
	}
}

// Draw renders the whole screen.
func (a *App) Draw() {
	a.screen.Clear()

	style := styleInput
	if a.session.Invalid() {
		style = styleInvalid
	}
	a.drawText(0, inputRow, prompt+string(a.input), style)
	a.screen.ShowCursor(len(prompt)+a.cursor, inputRow)

	if err := a.session.Err(); err != nil {
		a.drawText(0, statusRow, err.Error(), styleStatus)
	}

	snap := a.session.Snapshot()
	for _, run := range snap.Runs {
		style := styleRun
		switch {
		case run.Lifted:
			style = styleLifted
		case run.Focused:
			style = styleFocused
		}
		a.drawText(int(run.X), int(run.Y), run.Text, style)
	}
	for _, run := range snap.Ghost {
		a.drawText(cell(run.X), cell(run.Y), run.Text, styleGhost)
	}

	if snap.Dump != "" {
		for i, line := range strings.Split(strings.TrimSuffix(snap.Dump, "\n"), "\n") {
			a.drawText(sceneCol, dumpRow+i, strings.ReplaceAll(line, "\t", "  "), styleDump)
		}
	}

	a.screen.Show()
}

func (a *App) drawText(x, y int, text string, style tcell.Style) {
	width, height := a.screen.Size()
	if y < 0 || y >= height {
		return
	}
	for _, r := range text {
		if x >= width {
			return
		}
		if x >= 0 {
			a.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

// cell rounds a scene coordinate to the nearest terminal cell.
func cell(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
