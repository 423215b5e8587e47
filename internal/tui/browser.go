// Package tui provides an interactive terminal browser for solved runs.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aiexplorations/beam-column-simulation/internal/storage"
	"github.com/aiexplorations/beam-column-simulation/internal/viz"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	tabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	activeTab   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

type model struct {
	run    *storage.Run
	series []viz.Series
	cursor int

	width  int
	height int
}

func newModel(run *storage.Run) model {
	return model{
		run:    run,
		series: viz.SeriesList(run.Solution, run.Stress),
		width:  80,
		height: 24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.series) - 1
			}
		case "right", "l", "tab":
			m.cursor++
			if m.cursor >= len(m.series) {
				m.cursor = 0
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(fmt.Sprintf("run %s", m.run.Meta.ID)))
	sb.WriteString("\n")

	tabs := make([]string, len(m.series))
	for i, s := range m.series {
		if i == m.cursor {
			tabs[i] = activeTab.Render(s.Name)
		} else {
			tabs[i] = tabStyle.Render(s.Name)
		}
	}
	sb.WriteString(strings.Join(tabs, "  "))
	sb.WriteString("\n\n")

	plotWidth := m.width - 12
	if plotWidth < 30 {
		plotWidth = 30
	}
	plotHeight := m.height - 12
	if plotHeight < 6 {
		plotHeight = 6
	}
	sb.WriteString(viz.Plot(m.series[m.cursor], plotWidth, plotHeight))
	sb.WriteString("\n\n")

	sb.WriteString(viz.RenderSummary(m.run.Meta.Summary, m.run.Meta.Approximate))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("←/→ switch diagram · q quit"))

	return sb.String()
}

// Browse opens the interactive viewer for a stored run.
func Browse(run *storage.Run) error {
	p := tea.NewProgram(newModel(run), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
