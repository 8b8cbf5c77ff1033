package teatest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type counter struct {
	n      int
	width  int
	events []string
}

type bumpMsg struct{}

func (c counter) Init() tea.Cmd { return func() tea.Msg { return bumpMsg{} } }

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
	case bumpMsg:
		c.n++
	case tea.KeyMsg:
		c.events = append(c.events, msg.String())
		switch msg.String() {
		case "+":
			return c, tea.Batch(
				func() tea.Msg { return bumpMsg{} },
				func() tea.Msg { return bumpMsg{} },
			)
		case "q":
			return c, tea.Quit
		}
	}
	return c, nil
}

func (c counter) View() string { return "" }

func TestDriver_InitAndBatch(t *testing.T) {
	d := New(t, counter{}, WithSize(40, 10))
	assert.Equal(t, 40, d.Model.(counter).width)
	assert.Equal(t, 1, d.Model.(counter).n)

	d.Press("+")
	assert.Equal(t, 3, d.Model.(counter).n)
}

func TestDriver_QuitStopsDelivery(t *testing.T) {
	d := New(t, counter{})
	d.Press("a", "q", "b")

	assert.True(t, d.Quitting)
	assert.Equal(t, []string{"a", "q"}, d.Model.(counter).events)
}

func TestKeyMsg_RoundTripsNames(t *testing.T) {
	for _, name := range []string{"up", "down", "pgup", "pgdown", "esc", "ctrl+c", "enter", "j", "q"} {
		assert.Equal(t, name, KeyMsg(name).String())
	}
}
