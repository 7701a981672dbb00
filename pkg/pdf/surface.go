package pdf

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/llennemann/badgepress/pkg/badge"
	"github.com/llennemann/badgepress/pkg/errors"
)

// Surface extends badge.Surface with output reporting, so callers can
// log exactly which files a run produced.
type Surface interface {
	badge.Surface

	// Outputs lists the files written so far, in write order.
	Outputs() []string
}

// =============================================================================
// Single-Document Surface
// =============================================================================

// SingleSurface collects every sheet as a page of one PDF, written on
// Close.
type SingleSurface struct {
	path  string
	doc   *Doc
	wrote bool
}

// NewSingleSurface writes all sheets to the PDF at path.
func NewSingleSurface(path string) *SingleSurface {
	return &SingleSurface{path: path}
}

func (s *SingleSurface) NextSheet() (badge.Canvas, error) {
	if s.doc == nil {
		s.doc = newDoc()
	}
	s.doc.pdf.AddPage()
	if err := s.doc.err(); err != nil {
		return nil, err
	}
	return s.doc, nil
}

func (s *SingleSurface) Close() error {
	if s.doc == nil {
		return nil
	}
	if err := s.doc.pdf.OutputFileAndClose(s.path); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "failed to write %s", s.path)
	}
	s.wrote = true
	return nil
}

func (s *SingleSurface) Outputs() []string {
	if !s.wrote {
		return nil
	}
	return []string{s.path}
}

// =============================================================================
// Per-Sheet Surface
// =============================================================================

// SplitSurface writes each sheet as its own single-page PDF, numbered
// from the configured path's stem: badges.pdf becomes badges_1.pdf,
// badges_2.pdf, and so on. Sheets are flushed as soon as the next one
// starts, so memory stays flat however long the run is.
type SplitSurface struct {
	base    string
	doc     *Doc
	sheets  int
	outputs []string
}

// NewSplitSurface numbers output files from path's stem.
func NewSplitSurface(path string) *SplitSurface {
	return &SplitSurface{base: path}
}

func (s *SplitSurface) NextSheet() (badge.Canvas, error) {
	if s.doc != nil {
		if err := s.flush(); err != nil {
			return nil, err
		}
	}
	s.doc = newDoc()
	s.doc.pdf.AddPage()
	s.sheets++
	if err := s.doc.err(); err != nil {
		return nil, err
	}
	return s.doc, nil
}

func (s *SplitSurface) Close() error {
	if s.doc == nil {
		return nil
	}
	return s.flush()
}

func (s *SplitSurface) Outputs() []string {
	return s.outputs
}

// flush writes the current sheet's document and drops it.
func (s *SplitSurface) flush() error {
	path := s.sheetPath(s.sheets)
	if err := s.doc.pdf.OutputFileAndClose(path); err != nil {
		return errors.Wrap(errors.ErrCodeOutputWrite, err, "failed to write %s", path)
	}
	s.outputs = append(s.outputs, path)
	s.doc = nil
	return nil
}

// sheetPath derives the numbered filename for sheet n.
func (s *SplitSurface) sheetPath(n int) string {
	ext := filepath.Ext(s.base)
	stem := strings.TrimSuffix(s.base, ext)
	return fmt.Sprintf("%s_%d%s", stem, n, ext)
}

// NewSurface returns the surface for the requested output mode.
func NewSurface(path string, split bool) Surface {
	if split {
		return NewSplitSurface(path)
	}
	return NewSingleSurface(path)
}
