package cli

import (
	"context"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/llennemann/badgepress/pkg/badge"
	"github.com/llennemann/badgepress/pkg/config"
	"github.com/llennemann/badgepress/pkg/pipeline"
	"github.com/llennemann/badgepress/pkg/roster"
)

// inspectCommand creates the inspect command for reviewing the roster.
func (c *CLI) inspectCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "inspect [badgepress.toml]",
		Short: "Show who gets a badge and what it will say",
		Long: `Show who gets a badge and what it will say.

The inspect command runs the same filtering and normalization as
generate but renders nothing. Use it to review name, role line,
pronouns, and ribbon text per attendee before committing to paper.

With --interactive the roster opens in a scrollable terminal browser.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(args)
			if err != nil {
				return err
			}
			return c.runInspect(cmd.Context(), cfg, configPath(args), interactive)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse the roster in the terminal")

	return cmd
}

// runInspect loads and selects the roster, then presents it.
func (c *CLI) runInspect(ctx context.Context, cfg *config.Config, cfgPath string, interactive bool) error {
	opts := pipeline.Options{Config: cfg}

	spinner := newSpinnerWithContext(ctx, "Reading roster...")
	spinner.Start()
	result, err := c.newRunner().Inspect(ctx, opts)
	if err != nil {
		spinner.StopWithError("Roster inspection failed")
		return err
	}
	spinner.Stop()

	// Icons never influence badge text, so none are loaded here.
	badgeOpts := opts.RenderOptions(nil, nil)

	if interactive {
		p := tea.NewProgram(NewRosterModel(result.Attendees, result.Diagnostics, badgeOpts))
		_, err := p.Run()
		return err
	}

	printSuccess("%d of %d rows get badges", result.Stats.Eligible, result.Stats.RowsRead)
	printNewline()
	fmt.Println(rosterTable(result.Attendees, badgeOpts))

	if len(result.Diagnostics) > 0 {
		printNewline()
		for _, d := range result.Diagnostics {
			printDiagnostic(d.Row, d.Reason)
		}
	}

	printNewline()
	printNextStep("Generate", appName+" generate "+cfgPath)
	return nil
}

// rosterTable renders the selected attendees as a bordered table.
func rosterTable(attendees []roster.Attendee, opts badge.Options) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, len(attendees))
	for i, a := range attendees {
		rows[i] = []string{
			strconv.Itoa(a.Row),
			orDash(a.DisplayName),
			orDash(a.RoleLine()),
			orDash(badge.PronounLine(a, opts)),
			orDash(badge.RibbonText(a, opts)),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Row", "Name", "Role", "Pronouns", "Ribbon").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	return t.Render()
}

// orDash substitutes a dash for empty cell values.
func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
