// Package pipeline provides the core badge generation pipeline for Badgepress.
//
// This package implements the complete read → select → render pipeline that
// can be used by CLI, preview server, and batch components. By centralizing
// this logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Read: Load attendee rows from a roster spreadsheet (xlsx or csv)
//  2. Select: Filter non-attendee rows and normalize names and pronouns
//  3. Render: Paginate badges onto letter sheets and write PDF output
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{ConfigPath: "badgepress.toml"}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Outputs)
//
// Inspect the roster without writing any PDF:
//
//	result, err := runner.Inspect(ctx, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/llennemann/badgepress/pkg/badge"
	"github.com/llennemann/badgepress/pkg/config"
	"github.com/llennemann/badgepress/pkg/errors"
	"github.com/llennemann/badgepress/pkg/roster"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the badge pipeline.
type Options struct {
	// ConfigPath is a TOML config file to load. Ignored when Config is
	// set directly.
	ConfigPath string

	// Config is the run configuration. Loaded from ConfigPath when nil.
	Config *config.Config

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this run in logs.
	RunID string

	// Outputs lists the PDF files written, in sheet order.
	Outputs []string

	// Attendees are the selected records, one badge each.
	Attendees []roster.Attendee

	// Diagnostics are the per-row problems found during selection.
	Diagnostics []roster.Diagnostic

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RowsRead   int
	Eligible   int
	Skipped    int
	Sheets     int
	ReadTime   time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults loads the config if needed and validates it.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Config == nil {
		if o.ConfigPath == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "config or config path is required")
		}
		cfg, err := config.Load(o.ConfigPath)
		if err != nil {
			return err
		}
		o.Config = cfg
	}
	if err := o.Config.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ReadOptions projects the config onto roster read options.
func (o *Options) ReadOptions() roster.ReadOptions {
	cfg := o.Config
	return roster.ReadOptions{
		Sheet: cfg.Input.Sheet,
		Columns: roster.Columns{
			Name:           cfg.Columns.Name,
			Ticket:         cfg.Columns.Ticket,
			JobTitle:       cfg.Columns.JobTitle,
			Company:        cfg.Columns.Company,
			School:         cfg.Columns.School,
			PhotoOptOut:    cfg.Columns.PhotoOptOut,
			PronounConsent: cfg.Columns.PronounConsent,
			Pronouns:       cfg.Columns.Pronouns,
			Category:       cfg.Columns.Category,
			QRData:         cfg.QR.Column,
		},
	}
}

// Rules projects the config onto roster selection rules.
func (o *Options) Rules() roster.Rules {
	cfg := o.Config
	return roster.Rules{
		IgnoreTicket:    cfg.Sentinels.IgnoreTicket,
		BlankPrefix:     cfg.Sentinels.BlankName,
		PronounStyle:    pronounStyle(cfg.Pronouns.Style),
		RequireCategory: cfg.RibbonFromCategory(),
	}
}

// RenderOptions projects the config onto badge rendering options.
// The icons come from the caller since loading them is the runner's job.
func (o *Options) RenderOptions(logo, optOut badge.Icon) badge.Options {
	cfg := o.Config
	opts := badge.Options{
		Logo:                        logo,
		OptOut:                      optOut,
		EventName:                   cfg.Event.Name,
		RibbonFromCategory:          cfg.RibbonFromCategory(),
		PrintPronounsWhenUnanswered: cfg.PrintPronounsWhenUnanswered(),
		RoleStartSize:               cfg.Text.RoleStartSize,
		WithGuides:                  cfg.Output.WithGuides,
		OptOutValue:                 cfg.Sentinels.OptOut,
		ConsentYes:                  cfg.Sentinels.ConsentYes,
		NoPronouns:                  cfg.Sentinels.NoPronouns,
	}
	if cfg.QREnabled() {
		opts.QRSize = cfg.QR.Size
	}
	return opts
}

func pronounStyle(style string) roster.PronounStyle {
	switch style {
	case config.PronounStyleFormatted:
		return roster.PronounsFormatted
	case config.PronounStyleStandardized:
		return roster.PronounsStandardized
	default:
		return roster.PronounsRaw
	}
}
