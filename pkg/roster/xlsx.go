package roster

import (
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/llennemann/badgepress/pkg/errors"
)

// XLSXReader reads Excel workbook roster exports.
type XLSXReader struct{}

func (r *XLSXReader) Type() string { return "xlsx" }

func (r *XLSXReader) Supports(filename string) bool {
	ext := filepath.Ext(filename)
	return strings.EqualFold(ext, ".xlsx") || strings.EqualFold(ext, ".xlsm")
}

func (r *XLSXReader) Read(path string, opts ReadOptions) ([]Attendee, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRosterRead, err, "failed to open workbook %s", path)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New(errors.ErrCodeRosterFormat, "workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRosterFormat, err,
			"failed to read sheet %q from %s", sheet, path)
	}

	return fromTable(rows, opts.Columns)
}
