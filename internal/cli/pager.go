package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/briefsmith/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// pagerChrome is the number of lines taken by the title and status bars.
const pagerChrome = 2

type pagerModel struct {
	title   string
	content string
	vp      viewport.Model
	ready   bool
}

func newPagerModel(title, content string) pagerModel {
	vp := viewport.New(0, 0)
	vp.KeyMap = pagerKeyMap()
	return pagerModel{title: title, content: content, vp: vp}
}

func (m pagerModel) Init() tea.Cmd { return nil }

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-pagerChrome, 1)
		if !m.ready {
			m.vp.SetContent(m.content)
			m.ready = true
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	var b strings.Builder
	b.WriteString(formatter.Bold(m.title))
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(scrollIndicator(m.vp))
	b.WriteString(formatter.Dim("  ↑/↓ scroll · pgup/pgdn page · q quit"))
	return b.String()
}

// pagerKeyMap scrolls with arrows, page keys and vim letters; q stays free
// to quit.
func pagerKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown", " ", "f")),
		PageUp:       key.NewBinding(key.WithKeys("pgup", "b")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u", "u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d", "d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
}

// scrollIndicator returns a dim scroll position string for the status bar.
func scrollIndicator(vp viewport.Model) string {
	if vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	pct := int(vp.ScrollPercent() * 100)
	return formatter.Dim(fmt.Sprintf("[%d%%]", pct))
}

func runPager(title, content string) error {
	_, err := tea.NewProgram(newPagerModel(title, content), tea.WithAltScreen()).Run()
	return err
}
