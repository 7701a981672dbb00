package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/llennemann/badgepress/pkg/badge"
	"github.com/llennemann/badgepress/pkg/roster"
)

func TestTextWidth(t *testing.T) {
	doc := newDoc()

	short := doc.TextWidth("Ada", badge.Regular, 20)
	long := doc.TextWidth("Ada Lovelace", badge.Regular, 20)
	if short <= 0 {
		t.Errorf("TextWidth(short) = %v, want > 0", short)
	}
	if long <= short {
		t.Errorf("TextWidth(long) = %v, want > %v", long, short)
	}

	small := doc.TextWidth("Ada Lovelace", badge.Regular, 10)
	if small >= long {
		t.Errorf("TextWidth at size 10 = %v, want < %v at size 20", small, long)
	}
}

func TestTextWidthWeight(t *testing.T) {
	doc := newDoc()

	regular := doc.TextWidth("Conference", badge.Regular, 16)
	bold := doc.TextWidth("Conference", badge.Bold, 16)
	if bold <= regular {
		t.Errorf("bold width = %v, want > regular width %v", bold, regular)
	}
}

func TestDrawIconForeignType(t *testing.T) {
	doc := newDoc()

	err := doc.DrawIcon(fakeIcon{}, 0, 0, 1)
	if err == nil {
		t.Fatal("DrawIcon() accepted an icon from another backend")
	}
}

type fakeIcon struct{}

func (fakeIcon) Size() (float64, float64) { return 10, 10 }

// TestRenderSheets drives the whole drawing stack: real icons, QR codes,
// ribbons, and crop guides through the gofpdf backend, paginated across
// surfaces in both output modes.
func TestRenderSheets(t *testing.T) {
	logo, err := LoadIcon(writeIcon(t, "logo.svg", testSVG))
	if err != nil {
		t.Fatalf("load logo: %v", err)
	}
	optOut, err := LoadIcon(writeIcon(t, "camera.svg", testSVG))
	if err != nil {
		t.Fatalf("load opt-out icon: %v", err)
	}

	opts := badge.Options{
		Logo:          logo,
		OptOut:        optOut,
		EventName:     "PyBeach 2026",
		RoleStartSize: 16,
		WithGuides:    true,
		QRSize:        36,
		OptOutValue:   "Opt-out",
		ConsentYes:    "Yes",
		NoPronouns:    "-",
	}

	attendees := make([]roster.Attendee, 13)
	for i := range attendees {
		attendees[i] = roster.Attendee{
			Row:            i + 2,
			DisplayName:    fmt.Sprintf("Attendee Number %d", i+1),
			Ticket:         "Corporate",
			JobTitle:       "Engineer",
			Company:        "Acme Corp",
			PhotoOptOut:    "Opt-out",
			PronounConsent: "Yes",
			Pronouns:       "She / Her",
			QRData:         fmt.Sprintf("https://pybeach.org/a/%d", i+1),
		}
	}

	t.Run("single", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "badges.pdf")
		writer, err := badge.NewWriter(NewSurface(path, false), opts)
		if err != nil {
			t.Fatalf("NewWriter() error = %v", err)
		}
		for _, a := range attendees {
			if err := writer.Place(a); err != nil {
				t.Fatalf("Place(%q) error = %v", a.DisplayName, err)
			}
		}
		if err := writer.Finalize(); err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}
		if writer.Sheets() != 3 {
			t.Errorf("Sheets() = %d, want 3", writer.Sheets())
		}
		checkPDF(t, path)

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat output: %v", err)
		}
		if info.Size() < 2048 {
			t.Errorf("output is %d bytes, too small for three drawn sheets", info.Size())
		}
	})

	t.Run("per sheet", func(t *testing.T) {
		dir := t.TempDir()
		surface := NewSurface(filepath.Join(dir, "badges.pdf"), true)
		writer, err := badge.NewWriter(surface, opts)
		if err != nil {
			t.Fatalf("NewWriter() error = %v", err)
		}
		for _, a := range attendees {
			if err := writer.Place(a); err != nil {
				t.Fatalf("Place(%q) error = %v", a.DisplayName, err)
			}
		}
		if err := writer.Finalize(); err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}

		outs := surface.Outputs()
		if len(outs) != 3 {
			t.Fatalf("Outputs() = %v, want 3 files", outs)
		}
		for _, path := range outs {
			checkPDF(t, path)
		}
	})
}
