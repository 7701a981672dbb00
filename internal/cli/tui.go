package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/llennemann/badgepress/pkg/badge"
	"github.com/llennemann/badgepress/pkg/roster"
)

// =============================================================================
// RosterModel - Interactive roster browser
// =============================================================================

// RosterModel is the bubbletea model for browsing the selected roster.
// It shows one row per badge and can toggle to the diagnostics list.
type RosterModel struct {
	Attendees   []roster.Attendee
	Diagnostics []roster.Diagnostic
	Opts        badge.Options

	Cursor    int
	Height    int
	Offset    int
	ShowDiags bool
}

// NewRosterModel creates a roster browser over the selected attendees.
func NewRosterModel(attendees []roster.Attendee, diags []roster.Diagnostic, opts badge.Options) RosterModel {
	return RosterModel{
		Attendees:   attendees,
		Diagnostics: diags,
		Opts:        opts,
		Height:      15,
	}
}

func (m RosterModel) Init() tea.Cmd {
	return nil
}

func (m RosterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "d":
			m.ShowDiags = !m.ShowDiags
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Attendees)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 7
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m RosterModel) View() string {
	if m.ShowDiags {
		return m.diagnosticsView()
	}
	return m.rosterView()
}

func (m RosterModel) rosterView() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Badge Roster"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  d diagnostics  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Attendees) {
		end = len(m.Attendees)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		a := m.Attendees[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			strconv.Itoa(a.Row),
			orDash(a.DisplayName),
			orDash(a.RoleLine()),
			orDash(badge.PronounLine(a, m.Opts)),
			orDash(badge.RibbonText(a, m.Opts)),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Row", "Name", "Role", "Pronouns", "Ribbon").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			if col == 1 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Attendees))))

	return b.String()
}

func (m RosterModel) diagnosticsView() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Roster Diagnostics"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("d roster  q quit"))
	b.WriteString("\n\n")

	if len(m.Diagnostics) == 0 {
		b.WriteString(StyleDim.Render("  no problems found"))
		b.WriteString("\n")
		return b.String()
	}

	for _, d := range m.Diagnostics {
		line := fmt.Sprintf("  row %-5d %s", d.Row, d.Reason)
		b.WriteString(StyleWarning.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
