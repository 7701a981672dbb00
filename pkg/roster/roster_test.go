package roster

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		ticket string
		want   TicketClass
	}{
		{"Corporate", ClassCorporate},
		{"Early Bird Corporate", ClassCorporate},
		{"Student", ClassStudent},
		{"Early Bird Student", ClassStudent},
		{"General Admission", ClassGeneral},
		{"Speaker", ClassGeneral},
		{"", ClassGeneral},
		{"corporate", ClassGeneral}, // matching is exact
	}

	for _, tt := range tests {
		t.Run(tt.ticket, func(t *testing.T) {
			if got := Classify(tt.ticket); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.ticket, got, tt.want)
			}
		})
	}
}

func TestRoleLine(t *testing.T) {
	tests := []struct {
		name     string
		attendee Attendee
		want     string
	}{
		{
			name:     "corporate with title and company",
			attendee: Attendee{Ticket: "Corporate", JobTitle: "Engineer", Company: "Acme"},
			want:     "Engineer, Acme",
		},
		{
			name:     "early bird corporate",
			attendee: Attendee{Ticket: "Early Bird Corporate", JobTitle: "CTO", Company: "Initech"},
			want:     "CTO, Initech",
		},
		{
			name:     "corporate missing title",
			attendee: Attendee{Ticket: "Corporate", Company: "Acme"},
			want:     "Acme",
		},
		{
			name:     "corporate missing company",
			attendee: Attendee{Ticket: "Corporate", JobTitle: "Engineer"},
			want:     "Engineer",
		},
		{
			name:     "corporate missing both",
			attendee: Attendee{Ticket: "Corporate"},
			want:     "",
		},
		{
			name:     "student with school",
			attendee: Attendee{Ticket: "Student", School: "State University"},
			want:     "Student, State University",
		},
		{
			name:     "early bird student without school",
			attendee: Attendee{Ticket: "Early Bird Student"},
			want:     "Student",
		},
		{
			name:     "student ignores job title",
			attendee: Attendee{Ticket: "Student", JobTitle: "Intern", School: "State University"},
			want:     "Student, State University",
		},
		{
			name:     "general with title",
			attendee: Attendee{Ticket: "General Admission", JobTitle: "Developer"},
			want:     "Developer",
		},
		{
			name:     "general without title",
			attendee: Attendee{Ticket: "General Admission"},
			want:     "",
		},
		{
			name:     "general ignores company",
			attendee: Attendee{Ticket: "General Admission", JobTitle: "Developer", Company: "Acme"},
			want:     "Developer",
		},
		{
			name:     "whitespace-only parts read as empty",
			attendee: Attendee{Ticket: "Corporate", JobTitle: "  ", Company: "Acme"},
			want:     "Acme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.attendee.RoleLine(); got != tt.want {
				t.Errorf("RoleLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func testRules() Rules {
	return Rules{
		IgnoreTicket: "Donate to PyBeach",
		BlankPrefix:  "*",
	}
}

func TestSelectFilters(t *testing.T) {
	rows := []Attendee{
		{Row: 2, Name: "Keep Me", Ticket: "General Admission", PhotoOptOut: "Opt-in"},
		{Row: 3, Name: "Donor", Ticket: "Donate to PyBeach", PhotoOptOut: "Opt-in"},
		{Row: 4, Name: "No Photo Answer", Ticket: "General Admission", PhotoOptOut: ""},
		{Row: 5, Name: "Also Keep", Ticket: "Corporate", PhotoOptOut: "Opt-out"},
	}

	kept, diags := Select(rows, testRules())

	if len(kept) != 2 {
		t.Fatalf("kept %d rows, want 2", len(kept))
	}
	if kept[0].DisplayName != "Keep Me" || kept[1].DisplayName != "Also Keep" {
		t.Errorf("kept rows = %q, %q; want order preserved",
			kept[0].DisplayName, kept[1].DisplayName)
	}
	if len(diags) != 0 {
		t.Errorf("diagnostics = %v, want none for silently dropped rows", diags)
	}
}

func TestSelectFiltersCompose(t *testing.T) {
	// A donation row with an unanswered photo question must not sneak
	// through either filter.
	rows := []Attendee{
		{Row: 2, Name: "Donor", Ticket: "Donate to PyBeach", PhotoOptOut: ""},
		{Row: 3, Name: "Donor Who Answered", Ticket: "Donate to PyBeach", PhotoOptOut: "Opt-in"},
		{Row: 4, Name: "Attendee No Answer", Ticket: "General Admission", PhotoOptOut: "  "},
	}

	kept, _ := Select(rows, testRules())
	if len(kept) != 0 {
		t.Errorf("kept %d rows, want 0", len(kept))
	}
}

func TestSelectMissingName(t *testing.T) {
	rows := []Attendee{
		{Row: 2, Name: "", Ticket: "General Admission", PhotoOptOut: "Opt-in"},
		{Row: 3, Name: "   ", Ticket: "General Admission", PhotoOptOut: "Opt-in"},
		{Row: 4, Name: "Jane Doe", Ticket: "General Admission", PhotoOptOut: "Opt-in"},
	}

	kept, diags := Select(rows, testRules())

	if len(kept) != 1 || kept[0].DisplayName != "Jane Doe" {
		t.Fatalf("kept = %v, want only Jane Doe", kept)
	}
	if len(diags) != 2 {
		t.Fatalf("diagnostics = %v, want 2", diags)
	}
	if diags[0].Row != 2 || diags[1].Row != 3 {
		t.Errorf("diagnostic rows = %d, %d; want 2, 3", diags[0].Row, diags[1].Row)
	}
	for _, d := range diags {
		if d.Reason != "name is missing a value" {
			t.Errorf("diagnostic reason = %q", d.Reason)
		}
	}
}

func TestSelectBlankNameRequest(t *testing.T) {
	rows := []Attendee{
		{Row: 2, Name: "*Jane Doe", Ticket: "General Admission", PhotoOptOut: "Opt-in"},
		{Row: 3, Name: "  *anonymous", Ticket: "General Admission", PhotoOptOut: "Opt-in"},
	}

	kept, diags := Select(rows, testRules())

	if len(kept) != 2 {
		t.Fatalf("kept %d rows, want 2", len(kept))
	}
	for _, a := range kept {
		if a.DisplayName != "" {
			t.Errorf("row %d DisplayName = %q, want empty", a.Row, a.DisplayName)
		}
	}
	if len(diags) != 0 {
		t.Errorf("diagnostics = %v, want none", diags)
	}
}

func TestSelectNormalizesDisplayName(t *testing.T) {
	rows := []Attendee{
		{Row: 2, Name: "  Jane \t Ann \n Doe ", Ticket: "General Admission", PhotoOptOut: "Opt-in"},
	}

	kept, _ := Select(rows, testRules())
	if len(kept) != 1 {
		t.Fatal("row dropped unexpectedly")
	}
	if kept[0].DisplayName != "Jane Ann Doe" {
		t.Errorf("DisplayName = %q, want %q", kept[0].DisplayName, "Jane Ann Doe")
	}
	// The raw cell is preserved for inspection.
	if kept[0].Name != "  Jane \t Ann \n Doe " {
		t.Errorf("Name = %q, raw cell should be untouched", kept[0].Name)
	}
}

func TestSelectAppliesPronounStyle(t *testing.T) {
	rows := []Attendee{
		{Row: 2, Name: "Jane", Ticket: "General Admission", PhotoOptOut: "Opt-in", Pronouns: "she/her"},
	}

	rules := testRules()
	rules.PronounStyle = PronounsStandardized

	kept, _ := Select(rows, rules)
	if len(kept) != 1 {
		t.Fatal("row dropped unexpectedly")
	}
	if kept[0].Pronouns != "She / Hers" {
		t.Errorf("Pronouns = %q, want %q", kept[0].Pronouns, "She / Hers")
	}
}

func TestSelectCategoryDiagnostics(t *testing.T) {
	rows := []Attendee{
		{Row: 2, Name: "Has Category", Ticket: "General Admission", PhotoOptOut: "Opt-in", Category: "Speaker"},
		{Row: 3, Name: "No Category", Ticket: "General Admission", PhotoOptOut: "Opt-in"},
	}

	rules := testRules()
	rules.RequireCategory = true

	kept, diags := Select(rows, rules)

	if len(kept) != 2 {
		t.Fatalf("kept %d rows, want 2 (missing category still gets a badge)", len(kept))
	}
	if len(diags) != 1 || diags[0].Row != 3 {
		t.Fatalf("diagnostics = %v, want one for row 3", diags)
	}
}

func TestSelectEmptyRules(t *testing.T) {
	// With no ignore ticket and no blank prefix, only the photo filter
	// and name check apply.
	rows := []Attendee{
		{Row: 2, Name: "*Starts With Star", Ticket: "Donate to PyBeach", PhotoOptOut: "Opt-in"},
	}

	kept, _ := Select(rows, Rules{})
	if len(kept) != 1 {
		t.Fatalf("kept %d rows, want 1", len(kept))
	}
	if kept[0].DisplayName != "*Starts With Star" {
		t.Errorf("DisplayName = %q, star should be literal without a blank prefix", kept[0].DisplayName)
	}
}
