package badge

import (
	"github.com/llennemann/badgepress/pkg/roster"
)

// Writer places badges onto sheets six at a time, starting a fresh
// sheet whenever the current one fills.
type Writer struct {
	surface Surface
	canvas  Canvas
	opts    Options

	slot   int // next slot index on the current sheet, 0..SlotsPerSheet
	placed int
	sheets int
}

// NewWriter starts a writer on surface. The first sheet is allocated
// immediately, so a run with zero badges still finalizes into a valid
// single-page document.
func NewWriter(s Surface, opts Options) (*Writer, error) {
	c, err := s.NextSheet()
	if err != nil {
		return nil, err
	}
	return &Writer{surface: s, canvas: c, opts: opts, sheets: 1}, nil
}

// Place renders the next badge into the next free slot. A full sheet
// rolls over to a new one before drawing; a sheet that ends exactly
// full never grows a trailing blank page.
func (w *Writer) Place(a roster.Attendee) error {
	if w.slot == SlotsPerSheet {
		c, err := w.surface.NextSheet()
		if err != nil {
			return err
		}
		w.canvas = c
		w.slot = 0
		w.sheets++
	}

	if err := Render(w.canvas, Slots[w.slot], a, w.opts); err != nil {
		return err
	}

	w.slot++
	w.placed++
	return nil
}

// Finalize flushes every sheet through the surface. The writer must
// not be used afterward.
func (w *Writer) Finalize() error {
	return w.surface.Close()
}

// Placed returns the number of badges rendered so far.
func (w *Writer) Placed() int { return w.placed }

// Sheets returns the number of sheets started, counting the initial
// sheet of an empty run.
func (w *Writer) Sheets() int { return w.sheets }
