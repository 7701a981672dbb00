// Package config loads and validates badge run configuration.
//
// A run is described by a single TOML file covering the input roster, the
// output PDF, event branding, icon artwork, and the column/sentinel mapping
// used to interpret the registration export. The zero value plus
// ValidateAndSetDefaults yields a usable configuration for everything except
// the required fields (input path and event name).
//
// # Usage
//
//	cfg, err := config.Load("pybeach.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// cfg is validated and defaulted; hand it to pipeline.Options.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/llennemann/badgepress/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Pipeline
// =============================================================================

const (
	// DefaultOutputPath is the PDF written when [output].path is omitted.
	DefaultOutputPath = "badges.pdf"

	// DefaultRoleStartSize is the starting font size for the role line.
	DefaultRoleStartSize = 16.0

	// DefaultQRSize is the rendered QR square in points.
	DefaultQRSize = 36.0
)

// Output modes.
const (
	OutputModeSingle   = "single"    // one PDF containing every sheet
	OutputModePerSheet = "per-sheet" // numbered PDF per sheet
)

// Ribbon text sources.
const (
	RibbonSourceEvent    = "event"    // every ribbon shows the event name
	RibbonSourceCategory = "category" // ribbons show the attendee category
)

// Pronoun policies for rows that never answered the consent question.
const (
	PronounsOmit  = "omit"  // skip pronouns without an affirmative answer
	PronounsPrint = "print" // print pronouns unless consent was declined
)

// Pronoun rendering styles.
const (
	PronounStyleRaw          = "raw"          // print the cell as entered
	PronounStyleFormatted    = "formatted"    // normalize spacing and capitalization
	PronounStyleStandardized = "standardized" // map known sets to canonical forms
)

// ValidOutputModes is the set of supported output modes.
var ValidOutputModes = map[string]bool{
	OutputModeSingle:   true,
	OutputModePerSheet: true,
}

// ValidRibbonSources is the set of supported ribbon text sources.
var ValidRibbonSources = map[string]bool{
	RibbonSourceEvent:    true,
	RibbonSourceCategory: true,
}

// ValidPronounPolicies is the set of supported unanswered-consent policies.
var ValidPronounPolicies = map[string]bool{
	PronounsOmit:  true,
	PronounsPrint: true,
}

// ValidPronounStyles is the set of supported pronoun rendering styles.
var ValidPronounStyles = map[string]bool{
	PronounStyleRaw:          true,
	PronounStyleFormatted:    true,
	PronounStyleStandardized: true,
}

// =============================================================================
// Config Sections
// =============================================================================

// Input describes the roster spreadsheet to read.
type Input struct {
	// Path is the roster file. Extension selects the reader (.xlsx or .csv).
	Path string `toml:"path"`
	// Sheet is the worksheet name for xlsx input. Empty means the first sheet.
	Sheet string `toml:"sheet"`
}

// Output describes where and how the PDF is written.
type Output struct {
	Path string `toml:"path"`
	// Mode is "single" (default) or "per-sheet".
	Mode string `toml:"mode"`
	// WithGuides draws dashed cut guides around each badge.
	WithGuides bool `toml:"with_guides"`
}

// Event holds event branding.
type Event struct {
	// Name appears on the ribbon (in event mode) and as the category fallback.
	Name string `toml:"name"`
}

// Icons holds paths to the SVG artwork every run needs: the event logo
// and the photo opt-out marker.
type Icons struct {
	Logo        string `toml:"logo"`
	PhotoOptOut string `toml:"photo_opt_out"`
}

// Ribbon controls the colored strip near the bottom of each badge.
type Ribbon struct {
	// Source is "event" (default) or "category".
	Source string `toml:"source"`
}

// Pronouns controls pronoun rendering.
type Pronouns struct {
	// WhenUnanswered is "omit" (default) or "print".
	WhenUnanswered string `toml:"when_unanswered"`
	// Style is "raw" (default), "formatted", or "standardized".
	Style string `toml:"style"`
}

// Text holds typography overrides.
type Text struct {
	// RoleStartSize is the starting font size for the role line.
	RoleStartSize float64 `toml:"role_size"`
}

// QR controls the optional check-in QR code.
type QR struct {
	// Column names the roster column holding the per-attendee payload.
	// Empty disables QR codes entirely.
	Column string `toml:"column"`
	// Size is the rendered square in points.
	Size float64 `toml:"size"`
}

// Columns maps logical roster fields to spreadsheet header names.
// Defaults match the registration platform's export headers.
type Columns struct {
	Name           string `toml:"name"`
	Ticket         string `toml:"ticket"`
	JobTitle       string `toml:"job_title"`
	Company        string `toml:"company"`
	School         string `toml:"school"`
	PhotoOptOut    string `toml:"photo_opt_out"`
	PronounConsent string `toml:"pronoun_consent"`
	Pronouns       string `toml:"pronouns"`
	Category       string `toml:"category"`
}

// Sentinels holds the magic cell values the roster export uses.
type Sentinels struct {
	// IgnoreTicket names the ticket type excluded from badge runs.
	IgnoreTicket string `toml:"ignore_ticket"`
	// BlankName is the prefix a registrant uses to request a blank name.
	BlankName string `toml:"blank_name"`
	// NoPronouns is the cell value meaning "no pronouns provided".
	NoPronouns string `toml:"no_pronouns"`
	// OptOut is the cell value that triggers the photo opt-out icon.
	OptOut string `toml:"opt_out"`
	// ConsentYes is the prefix of an affirmative pronoun consent answer.
	ConsentYes string `toml:"consent_yes"`
}

// =============================================================================
// Config
// =============================================================================

// Config is the full badge run configuration.
type Config struct {
	Input     Input     `toml:"input"`
	Output    Output    `toml:"output"`
	Event     Event     `toml:"event"`
	Icons     Icons     `toml:"icons"`
	Ribbon    Ribbon    `toml:"ribbon"`
	Pronouns  Pronouns  `toml:"pronouns"`
	Text      Text      `toml:"text"`
	QR        QR        `toml:"qr"`
	Columns   Columns   `toml:"columns"`
	Sentinels Sentinels `toml:"sentinels"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `toml:"-"`
}

// Load reads, parses, validates, and defaults a TOML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to read config %s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to parse config %s", path)
	}

	if err := cfg.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (c *Config) ValidateAndSetDefaults() error {
	if c.validated {
		return nil
	}

	if c.Input.Path == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "input.path is required")
	}
	if err := errors.ValidateFilePath(c.Input.Path); err != nil {
		return err
	}
	if err := errors.ValidateSheetName(c.Input.Sheet); err != nil {
		return err
	}
	if c.Icons.Logo == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "icons.logo is required")
	}
	if err := errors.ValidateFilePath(c.Icons.Logo); err != nil {
		return err
	}
	if c.Icons.PhotoOptOut == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "icons.photo_opt_out is required")
	}
	if err := errors.ValidateFilePath(c.Icons.PhotoOptOut); err != nil {
		return err
	}

	c.setDefaults()

	// In category mode every ribbon can come from the roster, so the
	// event name is only required when ribbons show it.
	if c.Event.Name == "" && c.Ribbon.Source == RibbonSourceEvent {
		return errors.New(errors.ErrCodeInvalidConfig,
			"event.name is required when ribbon.source is %q", RibbonSourceEvent)
	}

	if err := errors.ValidateOutputPath(c.Output.Path); err != nil {
		return err
	}
	if !ValidOutputModes[c.Output.Mode] {
		return errors.New(errors.ErrCodeInvalidConfig,
			"invalid output.mode: %q (must be one of: single, per-sheet)", c.Output.Mode)
	}
	if !ValidRibbonSources[c.Ribbon.Source] {
		return errors.New(errors.ErrCodeInvalidConfig,
			"invalid ribbon.source: %q (must be one of: event, category)", c.Ribbon.Source)
	}
	if !ValidPronounPolicies[c.Pronouns.WhenUnanswered] {
		return errors.New(errors.ErrCodeInvalidConfig,
			"invalid pronouns.when_unanswered: %q (must be one of: omit, print)", c.Pronouns.WhenUnanswered)
	}
	if !ValidPronounStyles[c.Pronouns.Style] {
		return errors.New(errors.ErrCodeInvalidConfig,
			"invalid pronouns.style: %q (must be one of: raw, formatted, standardized)", c.Pronouns.Style)
	}
	if c.Text.RoleStartSize <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"text.role_size must be positive, got %v", c.Text.RoleStartSize)
	}
	if c.QR.Size <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"qr.size must be positive, got %v", c.QR.Size)
	}

	c.validated = true
	return nil
}

// setDefaults fills every empty optional field.
func (c *Config) setDefaults() {
	if c.Output.Path == "" {
		c.Output.Path = DefaultOutputPath
	}
	if c.Output.Mode == "" {
		c.Output.Mode = OutputModeSingle
	}
	if c.Ribbon.Source == "" {
		c.Ribbon.Source = RibbonSourceEvent
	}
	if c.Pronouns.WhenUnanswered == "" {
		c.Pronouns.WhenUnanswered = PronounsOmit
	}
	if c.Pronouns.Style == "" {
		c.Pronouns.Style = PronounStyleRaw
	}
	if c.Text.RoleStartSize == 0 {
		c.Text.RoleStartSize = DefaultRoleStartSize
	}
	if c.QR.Size == 0 {
		c.QR.Size = DefaultQRSize
	}

	cols := &c.Columns
	if cols.Name == "" {
		cols.Name = "What name would you like printed on your badge?"
	}
	if cols.Ticket == "" {
		cols.Ticket = "Ticket"
	}
	if cols.JobTitle == "" {
		cols.JobTitle = "Ticket Job Title"
	}
	if cols.Company == "" {
		cols.Company = "Ticket Company Name"
	}
	if cols.School == "" {
		cols.School = "What school do you attend?"
	}
	if cols.PhotoOptOut == "" {
		cols.PhotoOptOut = "Photo opt-out"
	}
	if cols.PronounConsent == "" {
		cols.PronounConsent = "Would you like your pronouns printed on your badge?"
	}
	if cols.Pronouns == "" {
		cols.Pronouns = "Pronouns"
	}
	if cols.Category == "" {
		cols.Category = "Attendee Category"
	}

	sent := &c.Sentinels
	if sent.IgnoreTicket == "" {
		sent.IgnoreTicket = "Donate to PyBeach"
	}
	if sent.BlankName == "" {
		sent.BlankName = "*"
	}
	if sent.NoPronouns == "" {
		sent.NoPronouns = "-"
	}
	if sent.OptOut == "" {
		sent.OptOut = "Opt-out"
	}
	if sent.ConsentYes == "" {
		sent.ConsentYes = "Yes"
	}
}

// SplitPerSheet returns true when each sheet becomes its own PDF.
func (c *Config) SplitPerSheet() bool {
	return c.Output.Mode == OutputModePerSheet
}

// RibbonFromCategory returns true when ribbons show the attendee category.
func (c *Config) RibbonFromCategory() bool {
	return c.Ribbon.Source == RibbonSourceCategory
}

// PrintPronounsWhenUnanswered returns true when pronouns print for rows
// that left the consent question blank.
func (c *Config) PrintPronounsWhenUnanswered() bool {
	return c.Pronouns.WhenUnanswered == PronounsPrint
}

// QREnabled returns true when a QR payload column is configured.
func (c *Config) QREnabled() bool {
	return c.QR.Column != ""
}
