// Package ui implements the optional interactive fleet browser behind the
// -tui flag: a machine list on the left, the selected machine's audit
// detail on the right. Data is collected once before the program starts;
// there is no refresh loop.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorRed   = lipgloss.Color("#FF5555")
	colorGreen = lipgloss.Color("#50FA7B")
	colorCyan  = lipgloss.Color("#8BE9FD")
	colorGray  = lipgloss.Color("#6272A4")
	colorPanel = lipgloss.Color("#44475A")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	okStyle    = lipgloss.NewStyle().Foreground(colorGreen)
	failStyle  = lipgloss.NewStyle().Foreground(colorRed)
	helpStyle  = lipgloss.NewStyle().Foreground(colorGray)

	selectedStyle = lipgloss.NewStyle().Background(colorPanel).Bold(true)

	listPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	detailPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorCyan).
				Padding(0, 1)
)

// Item is one browsable machine result.
type Item struct {
	Name   string
	Pass   bool
	Detail string // pre-rendered report block
}

// Model is the bubbletea model for the fleet browser.
type Model struct {
	title  string
	items  []Item
	cursor int
	width  int
	height int
}

// NewModel builds a browser over pre-computed audit results.
func NewModel(title string, items []Item) Model {
	return Model{title: title, items: items}
}

// Browse runs the fullscreen browser until the user quits.
func Browse(title string, items []Item) error {
	p := tea.NewProgram(NewModel(title, items), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "j", "down":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "g", "home":
			m.cursor = 0
		case "G", "end":
			m.cursor = len(m.items) - 1
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.items) == 0 {
		return titleStyle.Render(m.title) + "\n\nNo machines returned.\n\n" +
			helpStyle.Render("q quit")
	}

	listWidth := 30
	if m.width > 0 && m.width/3 < listWidth {
		listWidth = m.width / 3
	}
	panelHeight := m.height - 4
	if panelHeight < 5 {
		panelHeight = 5
	}

	list := m.renderList(listWidth, panelHeight)
	detail := m.renderDetail(panelHeight)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		listPanelStyle.Height(panelHeight).Render(list),
		detailPanelStyle.Height(panelHeight).Render(detail),
	)

	header := titleStyle.Render(m.title)
	footer := helpStyle.Render("↑/↓ or j/k select · g/G first/last · q quit")
	return header + "\n" + body + "\n" + footer
}

func (m Model) renderList(width, height int) string {
	// Keep the cursor visible inside the window.
	top := 0
	if m.cursor >= height {
		top = m.cursor - height + 1
	}

	var sb strings.Builder
	for i := top; i < len(m.items) && i < top+height; i++ {
		it := m.items[i]
		icon := failStyle.Render("✗")
		if it.Pass {
			icon = okStyle.Render("✓")
		}
		line := fmt.Sprintf("%s %s", icon, truncate(it.Name, width-4))
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		sb.WriteString(line)
		if i < len(m.items)-1 && i < top+height-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (m Model) renderDetail(height int) string {
	detail := strings.TrimPrefix(m.items[m.cursor].Detail, "\n")
	lines := strings.Split(detail, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
