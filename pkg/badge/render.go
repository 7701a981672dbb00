package badge

import (
	"math"
	"strings"

	"github.com/skip2/go-qrcode"

	"github.com/llennemann/badgepress/pkg/errors"
	"github.com/llennemann/badgepress/pkg/roster"
)

// qrImagePixels is the raster resolution QR codes are encoded at before
// being placed into their (much smaller) box on the badge.
const qrImagePixels = 256

// Options configures badge rendering for a run.
type Options struct {
	// Logo is drawn top-center on every badge.
	Logo Icon
	// OptOut is drawn top-left on badges whose attendee opted out of
	// photos.
	OptOut Icon

	// EventName is the ribbon text in event mode, and the fallback when
	// a category-mode record has no category.
	EventName string
	// RibbonFromCategory switches the ribbon text to the attendee's
	// category.
	RibbonFromCategory bool

	// PrintPronounsWhenUnanswered prints pronouns for rows that left
	// the consent question blank. An explicit non-affirmative answer
	// always omits them.
	PrintPronounsWhenUnanswered bool

	// RoleStartSize is the starting font size for the role line.
	// Zero means DefaultRoleStartSize.
	RoleStartSize float64

	// WithGuides draws dashed cut guides around the badge.
	WithGuides bool

	// QRSize is the side of the QR square in points. Drawn only for
	// records carrying QR data.
	QRSize float64

	// Sentinel values from the roster export.
	OptOutValue string // photo cell value that triggers the icon
	ConsentYes  string // prefix of an affirmative consent answer
	NoPronouns  string // pronoun cell value meaning "none provided"
}

// Render draws one attendee badge with its top-left corner at slot.
//
// Elements draw in a fixed order: opt-out icon, pronouns, logo, name,
// role, ribbon, QR, guides. Optional elements skip silently; icon and
// QR failures stop the run since a half-drawn badge sheet is worse
// than no sheet.
func Render(c Canvas, slot Slot, a roster.Attendee, opts Options) error {
	if opts.OptOut != nil && a.PhotoOptOut == opts.OptOutValue {
		err := drawIconInBox(c, opts.OptOut, slot.X+EdgeMargin, slot.Y+OptOutIconBottom, OptOutIconBox)
		if err != nil {
			return err
		}
	}

	if pn := PronounLine(a, opts); pn != "" {
		c.Text(slot.X+BadgeWidth-EdgeMargin, slot.Y+PronounBaseline,
			pn, Regular, PronounSize, Black, Right)
	}

	if opts.Logo != nil {
		err := drawIconInBox(c, opts.Logo, slot.X+(BadgeWidth-LogoIconBox)/2, slot.Y+LogoIconBottom, LogoIconBox)
		if err != nil {
			return err
		}
	}

	role := a.RoleLine()

	if name := a.DisplayName; name != "" {
		baseline := NameBaseline
		if role == "" {
			baseline = NameBaselineAlone
		}
		size := FitSize(c, BadgeWidth, name, NameStartSize)
		c.Text(slot.X+BadgeWidth/2, slot.Y+baseline, name, Bold, size, Black, Center)
	}

	if role != "" {
		start := opts.RoleStartSize
		if start <= 0 {
			start = DefaultRoleStartSize
		}
		size := FitSize(c, BadgeWidth, role, start)
		c.Text(slot.X+BadgeWidth/2, slot.Y+RoleBaseline, role, Regular, size, Black, Center)
	}

	ribbon := RibbonText(a, opts)
	c.FillRect(slot.X-RibbonOverhang, slot.Y+RibbonTop,
		BadgeWidth+2*RibbonOverhang, RibbonHeight, RibbonBlue)
	if ribbon != "" {
		c.Text(slot.X+BadgeWidth/2, slot.Y+RibbonBaseline,
			ribbon, Bold, RibbonTextSize, White, Center)
	}

	if a.QRData != "" && opts.QRSize > 0 {
		png, err := qrcode.Encode(a.QRData, qrcode.Medium, qrImagePixels)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err,
				"failed to encode qr code for row %d", a.Row)
		}
		err = c.DrawPNG(png, slot.X+BadgeWidth-EdgeMargin-opts.QRSize, slot.Y+QRTop,
			opts.QRSize, opts.QRSize)
		if err != nil {
			return err
		}
	}

	if opts.WithGuides {
		c.DashedRect(slot.X-GuideMargin, slot.Y-GuideMargin,
			BadgeWidth+2*GuideMargin, BadgeHeight+2*GuideMargin,
			GuideLineWidth, GuideDash)
	}

	return nil
}

// RibbonText returns the text the attendee's ribbon will carry. In
// category mode a record without a category falls back to the event
// name.
func RibbonText(a roster.Attendee, opts Options) string {
	if opts.RibbonFromCategory {
		if cat := strings.TrimSpace(a.Category); cat != "" {
			return cat
		}
	}
	return opts.EventName
}

// PronounLine returns the pronoun text to print, or "" to omit it.
func PronounLine(a roster.Attendee, opts Options) string {
	consent := strings.TrimSpace(a.PronounConsent)
	switch {
	case opts.ConsentYes != "" && strings.HasPrefix(consent, opts.ConsentYes):
		// affirmative answer
	case consent == "" && opts.PrintPronounsWhenUnanswered:
		// never answered; policy says print anyway
	default:
		return ""
	}

	pn := strings.TrimSpace(a.Pronouns)
	if pn == "" || pn == opts.NoPronouns {
		return ""
	}
	return pn
}

// drawIconInBox scales ic uniformly to fit a box×box square and draws
// it resting on the box's bottom edge, flush with the box's left edge.
// boxBottom is the y of that bottom edge.
func drawIconInBox(c Canvas, ic Icon, x, boxBottom, box float64) error {
	w, h := ic.Size()
	scale := math.Min(box/w, box/h)
	return c.DrawIcon(ic, x, boxBottom-h*scale, scale)
}
