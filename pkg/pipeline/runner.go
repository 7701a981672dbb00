package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/llennemann/badgepress/pkg/badge"
	"github.com/llennemann/badgepress/pkg/pdf"
	"github.com/llennemann/badgepress/pkg/roster"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner with the given logger.
// If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete read → select → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result, err := r.Inspect(ctx, opts)
	if err != nil {
		return nil, err
	}
	cfg := opts.Config

	// Stage 3: Render
	renderStart := time.Now()
	icons := pdf.NewIcons()
	logo, err := icons.Load(cfg.Icons.Logo)
	if err != nil {
		return nil, fmt.Errorf("load logo icon: %w", err)
	}
	optOut, err := icons.Load(cfg.Icons.PhotoOptOut)
	if err != nil {
		return nil, fmt.Errorf("load photo opt-out icon: %w", err)
	}

	surface := pdf.NewSurface(cfg.Output.Path, cfg.SplitPerSheet())
	writer, err := badge.NewWriter(surface, opts.RenderOptions(logo, optOut))
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	for _, a := range result.Attendees {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		if err := writer.Place(a); err != nil {
			return nil, fmt.Errorf("render badge for row %d: %w", a.Row, err)
		}
	}
	if err := writer.Finalize(); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}
	result.Outputs = surface.Outputs()
	result.Stats.Sheets = writer.Sheets()
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered badges",
		"badges", writer.Placed(),
		"sheets", writer.Sheets(),
		"duration", result.Stats.RenderTime)
	for _, path := range result.Outputs {
		opts.Logger.Info("wrote output", "path", path)
	}

	return result, nil
}

// Inspect runs the read and select stages without rendering anything.
// The returned result carries the selected attendees and diagnostics
// but no outputs.
func (r *Runner) Inspect(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	cfg := opts.Config

	result := &Result{RunID: uuid.NewString()}
	opts.Logger.Debug("starting run", "run_id", result.RunID, "input", cfg.Input.Path)

	// Stage 1: Read
	readStart := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	rows, err := r.LoadRoster(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	result.Stats.RowsRead = len(rows)
	result.Stats.ReadTime = time.Since(readStart)

	opts.Logger.Info("read roster",
		"rows", len(rows),
		"duration", result.Stats.ReadTime)

	// Stage 2: Select
	attendees, diags := roster.Select(rows, opts.Rules())
	result.Attendees = attendees
	result.Diagnostics = diags
	result.Stats.Eligible = len(attendees)
	result.Stats.Skipped = len(rows) - len(attendees)

	for _, d := range diags {
		opts.Logger.Warn("roster diagnostic", "row", d.Row, "reason", d.Reason)
	}
	opts.Logger.Info("selected attendees",
		"eligible", result.Stats.Eligible,
		"skipped", result.Stats.Skipped)

	return result, nil
}

// LoadRoster loads the raw attendee rows without selection.
func (r *Runner) LoadRoster(_ context.Context, opts Options) ([]roster.Attendee, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return roster.ReadFile(opts.Config.Input.Path, opts.ReadOptions())
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
