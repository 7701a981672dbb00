package badge

// Weight selects the typeface variant for a run of text. Badges set
// everything in Helvetica; only the weight varies.
type Weight int

const (
	Regular Weight = iota
	Bold
)

// Align positions text horizontally relative to its anchor point.
type Align int

const (
	Left Align = iota
	Center
	Right
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B int
}

// Colors used on a badge.
var (
	Black      = RGB{0, 0, 0}
	White      = RGB{255, 255, 255}
	RibbonBlue = RGB{51, 122, 183} // #337ab7
)

// Measurer reports rendered text widths, for font fitting.
type Measurer interface {
	// TextWidth returns the width of text in points when set at size.
	TextWidth(text string, w Weight, size float64) float64
}

// Icon is a parsed vector asset ready to draw.
type Icon interface {
	// Size returns the intrinsic width and height in points.
	Size() (w, h float64)
}

// Canvas is one sheet's drawing surface. Coordinates are points from
// the page's top-left corner; text y positions are baselines.
type Canvas interface {
	Measurer

	// Text draws one line anchored at (x, y) according to align.
	Text(x, y float64, text string, w Weight, size float64, color RGB, align Align)

	// FillRect draws a borderless filled rectangle.
	FillRect(x, y, w, h float64, color RGB)

	// DashedRect strokes a rectangle outline with the given dash
	// pattern, leaving the canvas's dash state untouched afterward.
	DashedRect(x, y, w, h, lineWidth float64, dash []float64)

	// DrawIcon draws a vector icon with its top-left corner at (x, y),
	// scaled uniformly by scale.
	DrawIcon(ic Icon, x, y, scale float64) error

	// DrawPNG draws an encoded PNG image into the given box.
	DrawPNG(png []byte, x, y, w, h float64) error
}

// Surface produces sheets and persists the finished document(s).
// Implementations decide whether sheets share one file or split into
// many; the paginator only asks for the next sheet.
type Surface interface {
	// NextSheet appends a fresh blank sheet and returns its canvas.
	NextSheet() (Canvas, error)

	// Close flushes every sheet to its destination.
	Close() error
}
