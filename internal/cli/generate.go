package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/llennemann/badgepress/pkg/config"
	"github.com/llennemann/badgepress/pkg/errors"
	"github.com/llennemann/badgepress/pkg/pipeline"
)

// generateFlags holds the command-line flags for the generate command.
// Each one overrides the corresponding config file setting.
type generateFlags struct {
	output string // output PDF path
	mode   string // output mode: "single" or "per-sheet"
	guides bool   // draw dashed cut guides
	sheet  string // worksheet name for xlsx input
	event  string // event name shown on ribbons
}

// generateCommand creates the generate command for rendering badge sheets.
func (c *CLI) generateCommand() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate [badgepress.toml]",
		Short: "Render the badge sheets and write PDF output",
		Long: `Render the badge sheets and write PDF output.

The generate command reads the roster named in the config file, filters
out donation tickets and photo-consent gaps, and lays the remaining
attendees out six to a letter sheet. Rows with problems are reported
but never stop the run.

Without an argument the config is read from ` + defaultConfigPath + `.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(args)
			if err != nil {
				return err
			}
			if err := applyGenerateFlags(cfg, cmd, &flags); err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), cfg, configPath(args))
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output PDF file (or base path in per-sheet mode)")
	cmd.Flags().StringVar(&flags.mode, "mode", "", "output mode: single (default), per-sheet")
	cmd.Flags().BoolVar(&flags.guides, "guides", false, "draw dashed cut guides around each badge")
	cmd.Flags().StringVar(&flags.sheet, "sheet", "", "worksheet name for xlsx rosters")
	cmd.Flags().StringVar(&flags.event, "event", "", "event name shown on ribbons")

	return cmd
}

// applyGenerateFlags overrides config settings with explicitly set flags.
// The config is already validated, so each override is checked here.
func applyGenerateFlags(cfg *config.Config, cmd *cobra.Command, flags *generateFlags) error {
	if cmd.Flags().Changed("output") {
		if err := errors.ValidateOutputPath(flags.output); err != nil {
			return err
		}
		cfg.Output.Path = flags.output
	}
	if cmd.Flags().Changed("mode") {
		if !config.ValidOutputModes[flags.mode] {
			return errors.New(errors.ErrCodeInvalidInput,
				"invalid --mode: %q (must be one of: single, per-sheet)", flags.mode)
		}
		cfg.Output.Mode = flags.mode
	}
	if cmd.Flags().Changed("guides") {
		cfg.Output.WithGuides = flags.guides
	}
	if cmd.Flags().Changed("sheet") {
		if err := errors.ValidateSheetName(flags.sheet); err != nil {
			return err
		}
		cfg.Input.Sheet = flags.sheet
	}
	if cmd.Flags().Changed("event") {
		cfg.Event.Name = flags.event
	}
	return nil
}

// runGenerate executes the pipeline and prints the run summary.
func (c *CLI) runGenerate(ctx context.Context, cfg *config.Config, cfgPath string) error {
	spinner := newSpinnerWithContext(ctx, "Rendering badges...")
	spinner.Start()

	result, err := c.newRunner().Execute(ctx, pipeline.Options{Config: cfg})
	if err != nil {
		spinner.StopWithError("Badge generation failed")
		return err
	}
	spinner.Stop()

	for _, d := range result.Diagnostics {
		printDiagnostic(d.Row, d.Reason)
	}

	printSuccess("Badges generated")
	for _, path := range result.Outputs {
		printFile(path)
	}
	printStats(result.Stats.Eligible, result.Stats.Sheets, result.Stats.Skipped,
		result.Stats.ReadTime+result.Stats.RenderTime)

	printNewline()
	printNextStep("Preview in browser", appName+" preview "+cfgPath)
	return nil
}
