package badge

// Font fitting steps a size down until the text fits its box. The step
// and floor match the reference badge sheets printed in past years.
const (
	FontStep    = 3.0
	MinFontSize = 1.0
)

// FitSize returns the largest font size, starting at start and stepping
// down by FontStep, at which text fits within boxWidth on one line.
// Never returns less than MinFontSize, so pathological inputs (a very
// long unbroken name) degrade to tiny text instead of looping forever.
//
// Widths are measured on the regular face; the bold name line rendered
// at the fitted size can run a hair wider than the box, which the slot
// padding absorbs.
func FitSize(m Measurer, boxWidth float64, text string, start float64) float64 {
	size := start
	for size > MinFontSize && m.TextWidth(text, Regular, size) > boxWidth {
		size -= FontStep
		if size < MinFontSize {
			size = MinFontSize
		}
	}
	return size
}
