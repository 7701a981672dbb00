package roster

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/llennemann/badgepress/pkg/errors"
)

// CSVReader reads comma-separated roster exports.
type CSVReader struct{}

func (r *CSVReader) Type() string { return "csv" }

func (r *CSVReader) Supports(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".csv")
}

func (r *CSVReader) Read(path string, opts ReadOptions) ([]Attendee, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRosterRead, err, "failed to open roster %s", path)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	// Exports pad or truncate trailing columns per row; take what's there.
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRosterFormat, err, "failed to parse csv %s", path)
	}

	return fromTable(rows, opts.Columns)
}
