package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/llennemann/badgepress/pkg/errors"
)

func testColumns() Columns {
	return Columns{
		Name:           "Badge Name",
		Ticket:         "Ticket",
		JobTitle:       "Job Title",
		Company:        "Company",
		School:         "School",
		PhotoOptOut:    "Photo opt-out",
		PronounConsent: "Print pronouns?",
		Pronouns:       "Pronouns",
		Category:       "Category",
	}
}

func writeCSV(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.csv")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func writeXLSX(t *testing.T, sheet string, rows [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			t.Fatalf("rename sheet: %v", err)
		}
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "roster.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestDetectReader(t *testing.T) {
	tests := []struct {
		path     string
		wantType string
		wantErr  bool
	}{
		{"roster.csv", "csv", false},
		{"roster.CSV", "csv", false},
		{"roster.xlsx", "xlsx", false},
		{"roster.XLSX", "xlsx", false},
		{"roster.xlsm", "xlsx", false},
		{"dir/nested/roster.csv", "csv", false},
		{"roster.ods", "", true},
		{"roster", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r, err := DetectReader(tt.path, DefaultReaders()...)
			if tt.wantErr {
				if err == nil {
					t.Fatal("DetectReader() error = nil, want error")
				}
				if !errors.Is(err, errors.ErrCodeUnsupported) {
					t.Errorf("error code = %v, want UNSUPPORTED", errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectReader() error = %v", err)
			}
			if r.Type() != tt.wantType {
				t.Errorf("Type() = %q, want %q", r.Type(), tt.wantType)
			}
		})
	}
}

func TestReadCSV(t *testing.T) {
	path := writeCSV(t, `Badge Name,Ticket,Job Title,Company,Photo opt-out,Pronouns
Jane Doe,Corporate,Engineer,Acme,Opt-in,she/her
John Roe,General Admission,,,Opt-out,
`)

	rows, err := ReadFile(path, ReadOptions{Columns: testColumns()})
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}

	first := rows[0]
	if first.Row != 2 {
		t.Errorf("Row = %d, want 2", first.Row)
	}
	if first.Name != "Jane Doe" || first.Ticket != "Corporate" ||
		first.JobTitle != "Engineer" || first.Company != "Acme" ||
		first.PhotoOptOut != "Opt-in" || first.Pronouns != "she/her" {
		t.Errorf("first row = %+v", first)
	}
	// Unmapped optional columns read as empty.
	if first.School != "" || first.Category != "" || first.QRData != "" {
		t.Errorf("absent columns should be empty, got %+v", first)
	}

	second := rows[1]
	if second.Row != 3 {
		t.Errorf("Row = %d, want 3", second.Row)
	}
	if second.PhotoOptOut != "Opt-out" {
		t.Errorf("PhotoOptOut = %q", second.PhotoOptOut)
	}
}

func TestReadCSVRaggedRows(t *testing.T) {
	// Short rows read missing trailing cells as empty.
	path := writeCSV(t, `Badge Name,Ticket,Photo opt-out,Pronouns
Jane Doe,General Admission,Opt-in
`)

	rows, err := ReadFile(path, ReadOptions{Columns: testColumns()})
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	if rows[0].Pronouns != "" {
		t.Errorf("Pronouns = %q, want empty for short row", rows[0].Pronouns)
	}
}

func TestReadCSVMissingRequiredColumn(t *testing.T) {
	path := writeCSV(t, `Badge Name,Photo opt-out
Jane Doe,Opt-in
`)

	_, err := ReadFile(path, ReadOptions{Columns: testColumns()})
	if err == nil {
		t.Fatal("ReadFile() error = nil, want error")
	}
	if !errors.Is(err, errors.ErrCodeMissingColumn) {
		t.Errorf("error code = %v, want MISSING_COLUMN", errors.GetCode(err))
	}
}

func TestReadCSVMissingFile(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"), ReadOptions{Columns: testColumns()})
	if err == nil {
		t.Fatal("ReadFile() error = nil, want error")
	}
	if !errors.Is(err, errors.ErrCodeRosterRead) {
		t.Errorf("error code = %v, want ROSTER_READ", errors.GetCode(err))
	}
}

func TestReadXLSX(t *testing.T) {
	path := writeXLSX(t, "Sheet1", [][]string{
		{"Badge Name", "Ticket", "Photo opt-out", "Pronouns"},
		{"Jane Doe", "Student", "Opt-in", "she/her"},
		{"John Roe", "General Admission", "Opt-out", ""},
	})

	rows, err := ReadFile(path, ReadOptions{Columns: testColumns()})
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].Name != "Jane Doe" || rows[0].Ticket != "Student" {
		t.Errorf("first row = %+v", rows[0])
	}
	if rows[1].Row != 3 {
		t.Errorf("Row = %d, want 3", rows[1].Row)
	}
}

func TestReadXLSXNamedSheet(t *testing.T) {
	path := writeXLSX(t, "Attendees", [][]string{
		{"Badge Name", "Ticket", "Photo opt-out"},
		{"Jane Doe", "Corporate", "Opt-in"},
	})

	t.Run("by name", func(t *testing.T) {
		rows, err := ReadFile(path, ReadOptions{Sheet: "Attendees", Columns: testColumns()})
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("len(rows) = %d, want 1", len(rows))
		}
	})

	t.Run("empty defaults to first sheet", func(t *testing.T) {
		rows, err := ReadFile(path, ReadOptions{Columns: testColumns()})
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("len(rows) = %d, want 1", len(rows))
		}
	})

	t.Run("unknown sheet", func(t *testing.T) {
		_, err := ReadFile(path, ReadOptions{Sheet: "Wrong", Columns: testColumns()})
		if err == nil {
			t.Fatal("ReadFile() error = nil, want error")
		}
		if !errors.Is(err, errors.ErrCodeRosterFormat) {
			t.Errorf("error code = %v, want ROSTER_FORMAT", errors.GetCode(err))
		}
	})
}

func TestReadXLSXMissingFile(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.xlsx"), ReadOptions{Columns: testColumns()})
	if err == nil {
		t.Fatal("ReadFile() error = nil, want error")
	}
	if !errors.Is(err, errors.ErrCodeRosterRead) {
		t.Errorf("error code = %v, want ROSTER_READ", errors.GetCode(err))
	}
}

func TestFromTable(t *testing.T) {
	t.Run("empty table", func(t *testing.T) {
		_, err := fromTable(nil, testColumns())
		if err == nil {
			t.Fatal("fromTable() error = nil, want error")
		}
		if !errors.Is(err, errors.ErrCodeRosterFormat) {
			t.Errorf("error code = %v, want ROSTER_FORMAT", errors.GetCode(err))
		}
	})

	t.Run("header only", func(t *testing.T) {
		rows, err := fromTable([][]string{{"Badge Name", "Ticket", "Photo opt-out"}}, testColumns())
		if err != nil {
			t.Fatalf("fromTable() error = %v", err)
		}
		if len(rows) != 0 {
			t.Errorf("len(rows) = %d, want 0", len(rows))
		}
	})

	t.Run("header cells are trimmed", func(t *testing.T) {
		rows, err := fromTable([][]string{
			{" Badge Name ", "Ticket", "Photo opt-out"},
			{"Jane Doe", "Corporate", "Opt-in"},
		}, testColumns())
		if err != nil {
			t.Fatalf("fromTable() error = %v", err)
		}
		if rows[0].Name != "Jane Doe" {
			t.Errorf("Name = %q, want %q", rows[0].Name, "Jane Doe")
		}
	})

	t.Run("duplicate headers keep first column", func(t *testing.T) {
		rows, err := fromTable([][]string{
			{"Badge Name", "Ticket", "Photo opt-out", "Ticket"},
			{"Jane Doe", "Corporate", "Opt-in", "Student"},
		}, testColumns())
		if err != nil {
			t.Fatalf("fromTable() error = %v", err)
		}
		if rows[0].Ticket != "Corporate" {
			t.Errorf("Ticket = %q, want first column's value", rows[0].Ticket)
		}
	})
}
