// Package badge renders attendee badges onto letter-sized sheets.
//
// # Overview
//
// This is the layout core of badgepress. It owns the sheet geometry
// (six fixed 4in × 2.875in slots per US Letter page), the per-badge
// element layout, and the text fitting that keeps long names on one
// line. It draws through small contracts so the PDF backend stays
// swappable:
//
//   - [Canvas]: one sheet's drawing surface (text, rects, icons, images)
//   - [Icon]: a parsed vector asset with an intrinsic size
//   - [Surface]: produces sheets and persists the finished document(s)
//
// # Rendering
//
// [Render] draws a single badge at a [Slot]. [Writer] wraps Render with
// the six-slot page cursor:
//
//	w, err := badge.NewWriter(surface, opts)
//	for _, a := range attendees {
//	    if err := w.Place(a); err != nil { ... }
//	}
//	err = w.Finalize()
//
// The writer starts its first sheet immediately, so an empty run still
// produces a valid single-page document.
//
// # Coordinates
//
// All coordinates are PDF points measured from the top-left corner of
// the page. Text positions name the baseline, not the cap height.
package badge
