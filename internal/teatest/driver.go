// Package teatest drives bubbletea models synchronously in tests.
//
// The driver calls Update directly and runs any returned Cmds inline, so a
// model can be exercised without a tea.Program or a terminal.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many chained Cmds one Send may run.
const MaxDrainDepth = 50

// cmdTimeout skips Cmds that block on timers (ticks, cursor blinks).
const cmdTimeout = 10 * time.Millisecond

// Driver is a synchronous harness for a tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a Cmd produces tea.QuitMsg.
	Quitting bool
}

// Option configures the Driver during construction.
type Option func(*Driver)

// WithSize sends a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Resize(w, h)
	}
}

// New creates a Driver for model and runs its Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	d.drain(d.Model.Init(), 0)
	return d
}

// Send dispatches msg through Update and drains the resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drain(cmd, 0)
}

// Resize sends a WindowSizeMsg.
func (d *Driver) Resize(w, h int) {
	d.Send(tea.WindowSizeMsg{Width: w, Height: h})
}

// Press sends one key per name. Names follow tea.KeyMsg.String(), e.g.
// "down", "pgdown", "ctrl+c", "esc" or a single character.
func (d *Driver) Press(names ...string) {
	d.T.Helper()
	for _, name := range names {
		d.Send(KeyMsg(name))
	}
}

// View returns the model's rendered output.
func (d *Driver) View() string {
	return d.Model.View()
}

// KeyMsg builds the tea.KeyMsg whose String() is name.
func KeyMsg(name string) tea.KeyMsg {
	if t, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

var namedKeys = map[string]tea.KeyType{
	"up":     tea.KeyUp,
	"down":   tea.KeyDown,
	"pgup":   tea.KeyPgUp,
	"pgdown": tea.KeyPgDown,
	"home":   tea.KeyHome,
	"end":    tea.KeyEnd,
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEsc,
	"ctrl+c": tea.KeyCtrlC,
	"ctrl+d": tea.KeyCtrlD,
	"ctrl+u": tea.KeyCtrlU,
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := runWithTimeout(cmd)
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drain(sub, depth+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
	default:
		updated, next := d.Model.Update(msg)
		d.Model = updated
		d.drain(next, depth+1)
	}
}

func runWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}
