// Package pdf implements the badge drawing contracts on gofpdf.
//
// A [Doc] is one PDF document whose pages are badge sheets; it
// implements badge.Canvas. The two [Surface] implementations decide how
// sheets map to files: [SingleSurface] collects every sheet into one
// document, [SplitSurface] writes each sheet as its own numbered file.
// SVG artwork loads through [Icons], which parses each file once per
// run.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/llennemann/badgepress/pkg/badge"
	"github.com/llennemann/badgepress/pkg/errors"
)

// iconStrokeWidth is the pen width SVG icon paths are stroked with.
const iconStrokeWidth = 0.35

// Doc is one PDF document rendered a sheet at a time. Coordinates are
// points from the page's top-left corner, matching the badge package.
type Doc struct {
	pdf    *gofpdf.Fpdf
	images int // names registered images uniquely within the document
}

func newDoc() *Doc {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	// Badge slots are positioned absolutely; gofpdf must never insert
	// its own page breaks.
	pdf.SetAutoPageBreak(false, 0)
	return &Doc{pdf: pdf}
}

func fontStyle(w badge.Weight) string {
	if w == badge.Bold {
		return "B"
	}
	return ""
}

// TextWidth implements badge.Measurer using the document's Helvetica
// metrics.
func (d *Doc) TextWidth(text string, w badge.Weight, size float64) float64 {
	d.pdf.SetFont("Helvetica", fontStyle(w), size)
	return d.pdf.GetStringWidth(text)
}

// Text draws one line anchored at (x, y) per align, with y naming the
// baseline.
func (d *Doc) Text(x, y float64, text string, w badge.Weight, size float64, color badge.RGB, align badge.Align) {
	d.pdf.SetFont("Helvetica", fontStyle(w), size)
	d.pdf.SetTextColor(color.R, color.G, color.B)

	switch align {
	case badge.Center:
		x -= d.pdf.GetStringWidth(text) / 2
	case badge.Right:
		x -= d.pdf.GetStringWidth(text)
	}
	d.pdf.Text(x, y, text)
}

// FillRect draws a borderless filled rectangle.
func (d *Doc) FillRect(x, y, w, h float64, color badge.RGB) {
	d.pdf.SetFillColor(color.R, color.G, color.B)
	d.pdf.Rect(x, y, w, h, "F")
}

// DashedRect strokes a black rectangle outline with the given dash
// pattern, restoring solid strokes afterward.
func (d *Doc) DashedRect(x, y, w, h, lineWidth float64, dash []float64) {
	d.pdf.SetDrawColor(0, 0, 0)
	d.pdf.SetLineWidth(lineWidth)
	d.pdf.SetDashPattern(dash, 0)
	d.pdf.Rect(x, y, w, h, "D")
	d.pdf.SetDashPattern([]float64{}, 0)
}

// DrawIcon strokes a parsed SVG icon with its top-left corner at (x, y).
func (d *Doc) DrawIcon(ic badge.Icon, x, y, scale float64) error {
	icon, ok := ic.(*Icon)
	if !ok {
		return errors.New(errors.ErrCodeInternal, "icon %T was not loaded by this backend", ic)
	}

	d.pdf.SetDrawColor(0, 0, 0)
	d.pdf.SetLineWidth(iconStrokeWidth)
	d.pdf.SetLineCapStyle("round")
	d.pdf.SetXY(x, y)
	d.pdf.SVGBasicWrite(&icon.sig, scale)
	return d.err()
}

// DrawPNG places an encoded PNG into the given box.
func (d *Doc) DrawPNG(png []byte, x, y, w, h float64) error {
	d.images++
	name := fmt.Sprintf("img%d", d.images)

	opts := gofpdf.ImageOptions{ImageType: "png"}
	d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	d.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	return d.err()
}

// err surfaces gofpdf's sticky error state as a structured error.
func (d *Doc) err() error {
	if d.pdf.Err() {
		return errors.Wrap(errors.ErrCodeInternal, d.pdf.Error(), "pdf renderer error")
	}
	return nil
}
