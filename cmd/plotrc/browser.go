package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/plotrc/pkg/palette"
	"gitlab.com/tinyland/lab/plotrc/pkg/swatch"
)

// browserKeys holds the palette browser keybindings.
type browserKeys struct {
	Up    key.Binding
	Down  key.Binding
	More  key.Binding
	Fewer key.Binding
	Quit  key.Binding
}

var defaultBrowserKeys = browserKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous palette"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next palette"),
	),
	More: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "more colors"),
	),
	Fewer: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "fewer colors"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// browser is the bubbletea model for the interactive palette browser.
type browser struct {
	names  []string
	cursor int
	n      int
	desat  float64
	width  int
	height int
	keys   browserKeys
	err    error
}

func newBrowser(n int, desat float64, width, height int) browser {
	if n <= 0 {
		n = 6
	}
	return browser{
		names:  palette.Names(),
		n:      n,
		desat:  desat,
		width:  width,
		height: height,
		keys:   defaultBrowserKeys,
	}
}

func (m browser) Init() tea.Cmd {
	return nil
}

func (m browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.names)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.More):
			if m.n < 20 {
				m.n++
			}
		case key.Matches(msg, m.keys.Fewer):
			if m.n > 1 {
				m.n--
			}
		}
	}
	return m, nil
}

func (m browser) View() string {
	var list strings.Builder
	for i, name := range m.names {
		marker := "  "
		line := name
		if i == m.cursor {
			marker = "> "
			line = lipgloss.NewStyle().Bold(true).Render(name)
		}
		list.WriteString(marker + line + "\n")
	}

	preview := m.preview()
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().MarginRight(3).Render(list.String()),
		preview,
	)

	help := fmt.Sprintf("n=%d  %s  %s  %s  %s  %s",
		m.n,
		m.keys.Up.Help().Key+" "+m.keys.Up.Help().Desc,
		m.keys.Down.Help().Key+" "+m.keys.Down.Help().Desc,
		m.keys.More.Help().Key+" "+m.keys.More.Help().Desc,
		m.keys.Fewer.Help().Key+" "+m.keys.Fewer.Help().Desc,
		m.keys.Quit.Help().Key+" "+m.keys.Quit.Help().Desc,
	)
	return body + "\n" + lipgloss.NewStyle().Faint(true).Render(help)
}

func (m browser) preview() string {
	name := m.names[m.cursor]
	p, err := palette.Colors(name, m.n, m.desat)
	if err != nil {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(err.Error())
	}
	return swatch.PaletteCard(name, p)
}
