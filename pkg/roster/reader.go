package roster

import (
	"path/filepath"
	"strings"

	"github.com/llennemann/badgepress/pkg/errors"
)

// Columns maps logical roster fields to spreadsheet header names.
// Name, Ticket, and PhotoOptOut are required; the rest read as empty
// when the column is absent or unmapped.
type Columns struct {
	Name           string
	Ticket         string
	JobTitle       string
	Company        string
	School         string
	PhotoOptOut    string
	PronounConsent string
	Pronouns       string
	Category       string
	QRData         string
}

// ReadOptions configures a roster read.
type ReadOptions struct {
	// Sheet is the worksheet name for workbook formats. Empty means the
	// first sheet. Ignored by flat formats like csv.
	Sheet string

	// Columns maps logical fields to header names.
	Columns Columns
}

// Reader loads attendee rows from a roster file.
type Reader interface {
	// Read loads the roster at path and returns attendee rows in file order.
	Read(path string, opts ReadOptions) ([]Attendee, error)
	// Supports reports whether this reader handles the given filename.
	Supports(filename string) bool
	// Type returns the format identifier (e.g., "csv", "xlsx").
	Type() string
}

// DefaultReaders returns the built-in readers in detection order.
func DefaultReaders() []Reader {
	return []Reader{&XLSXReader{}, &CSVReader{}}
}

// DetectReader finds a reader that supports the given file path.
// Returns an error if no reader matches.
func DetectReader(path string, readers ...Reader) (Reader, error) {
	name := filepath.Base(path)
	for _, r := range readers {
		if r.Supports(name) {
			return r, nil
		}
	}
	return nil, errors.New(errors.ErrCodeUnsupported,
		"unsupported roster format: %s (use .xlsx or .csv)", name)
}

// ReadFile loads a roster using the built-in readers, detecting the
// format from the file extension.
func ReadFile(path string, opts ReadOptions) ([]Attendee, error) {
	r, err := DetectReader(path, DefaultReaders()...)
	if err != nil {
		return nil, err
	}
	return r.Read(path, opts)
}

// fromTable converts a header row plus data rows into attendees.
// Shared by every reader so header mapping and row numbering behave
// identically across formats.
func fromTable(rows [][]string, cols Columns) ([]Attendee, error) {
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeRosterFormat, "roster has no header row")
	}

	idx := headerIndex(rows[0])

	required := []struct{ field, header string }{
		{"name", cols.Name},
		{"ticket", cols.Ticket},
		{"photo opt-out", cols.PhotoOptOut},
	}
	for _, req := range required {
		if _, ok := idx[req.header]; !ok {
			return nil, errors.New(errors.ErrCodeMissingColumn,
				"roster has no %s column %q", req.field, req.header)
		}
	}

	cell := func(row []string, header string) string {
		i, ok := idx[header]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	attendees := make([]Attendee, 0, len(rows)-1)
	for n, row := range rows[1:] {
		attendees = append(attendees, Attendee{
			Row:            n + 2, // header is row 1
			Name:           cell(row, cols.Name),
			Ticket:         cell(row, cols.Ticket),
			JobTitle:       cell(row, cols.JobTitle),
			Company:        cell(row, cols.Company),
			School:         cell(row, cols.School),
			PhotoOptOut:    cell(row, cols.PhotoOptOut),
			PronounConsent: cell(row, cols.PronounConsent),
			Pronouns:       cell(row, cols.Pronouns),
			Category:       cell(row, cols.Category),
			QRData:         cell(row, cols.QRData),
		})
	}
	return attendees, nil
}

// headerIndex maps trimmed header names to column positions. The first
// occurrence wins; empty headers are skipped.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if _, seen := idx[h]; !seen {
			idx[h] = i
		}
	}
	return idx
}
