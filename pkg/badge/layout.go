package badge

// Page and badge geometry, in PDF points from the top-left corner.
// The badge stock is Avery-style 4in × 2.875in name badge inserts,
// six to a US Letter sheet.
const (
	PageWidth  = 612.0
	PageHeight = 792.0

	BadgeWidth  = 288.0 // 4 in
	BadgeHeight = 207.0 // 2.875 in

	SlotsPerSheet = 6

	// EdgeMargin insets elements from the badge edges.
	EdgeMargin = 8.0
)

// Element layout within a badge, as offsets from the slot origin.
const (
	// OptOutIconBox is the square the photo opt-out icon scales into.
	// The box bottom sits OptOutIconBottom under the badge top, inset
	// EdgeMargin from the left.
	OptOutIconBox    = 50.0
	OptOutIconBottom = 54.0

	// LogoIconBox is the square the event logo scales into, centered
	// horizontally with its bottom LogoIconBottom under the badge top.
	LogoIconBox    = 96.0
	LogoIconBottom = 98.0

	// Pronouns sit right-aligned against the top-right corner.
	PronounSize     = 14.0
	PronounBaseline = 16.0

	// The name line is bold and vertically centered-ish; it moves up
	// slightly when a role line prints underneath.
	NameStartSize     = 20.0
	NameBaseline      = 128.0 // with a role line
	NameBaselineAlone = 138.0 // without one

	// The role line prints regular weight under the name.
	RoleBaseline         = 150.0
	DefaultRoleStartSize = 16.0

	// The ribbon is a filled strip near the bottom edge, overhanging
	// the badge slightly on both sides so trimming can't leave a white
	// sliver.
	RibbonHeight   = 30.0
	RibbonOverhang = 5.0
	RibbonTop      = BadgeHeight - RibbonHeight - RibbonOverhang
	RibbonTextSize = 16.0
	RibbonBaseline = BadgeHeight - RibbonHeight/2

	// QRTop positions the optional QR square under the pronoun line,
	// inset EdgeMargin from the right edge.
	QRTop = 24.0
)

// Cut guide geometry.
const (
	GuideMargin    = 3.0
	GuideLineWidth = 2.0
)

// GuideDash is the on/off dash pattern for cut guides.
var GuideDash = []float64{5, 5}

// Slot is the top-left corner of one badge position on a sheet.
type Slot struct {
	X, Y float64
}

// Slots are the six badge positions, filled left-to-right then
// top-to-bottom.
var Slots = [SlotsPerSheet]Slot{
	{X: 10, Y: 20},
	{X: 316, Y: 20},
	{X: 10, Y: 247},
	{X: 316, Y: 247},
	{X: 10, Y: 474},
	{X: 316, Y: 474},
}
