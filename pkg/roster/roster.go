package roster

import (
	"strings"
)

// TicketClass buckets ticket types that change how the role line reads.
type TicketClass int

const (
	// ClassGeneral badges show the job title alone.
	ClassGeneral TicketClass = iota
	// ClassCorporate badges show "title, company".
	ClassCorporate
	// ClassStudent badges show "Student" plus the school.
	ClassStudent
)

// Classify maps a ticket type to its badge class. Ticket names are the
// registration platform's fixed product names, so matching is exact.
func Classify(ticket string) TicketClass {
	switch ticket {
	case "Corporate", "Early Bird Corporate":
		return ClassCorporate
	case "Student", "Early Bird Student":
		return ClassStudent
	default:
		return ClassGeneral
	}
}

// Attendee is one roster row. Fields hold raw cell values as read from
// the spreadsheet; DisplayName is filled by Select.
type Attendee struct {
	// Row is the 1-based spreadsheet row this attendee came from,
	// counting the header as row 1. Used in diagnostics.
	Row int

	// Name is the raw badge-name cell.
	Name string
	// DisplayName is the print-ready name: trimmed, whitespace-collapsed,
	// or empty when the attendee requested a blank badge.
	DisplayName string

	Ticket         string
	JobTitle       string
	Company        string
	School         string
	PhotoOptOut    string
	PronounConsent string
	Pronouns       string
	Category       string

	// QRData is the per-attendee QR payload, when a QR column is mapped.
	QRData string
}

// RoleLine derives the second text line of the badge from the ticket
// class. Corporate tickets combine title and company, student tickets
// show the school, everyone else shows the bare title. Empty parts are
// skipped rather than printed as blanks.
func (a Attendee) RoleLine() string {
	title := strings.TrimSpace(a.JobTitle)

	switch Classify(a.Ticket) {
	case ClassCorporate:
		company := strings.TrimSpace(a.Company)
		switch {
		case title != "" && company != "":
			return title + ", " + company
		case company != "":
			return company
		default:
			return title
		}
	case ClassStudent:
		if school := strings.TrimSpace(a.School); school != "" {
			return "Student, " + school
		}
		return "Student"
	default:
		return title
	}
}

// Diagnostic records a row that was skipped or needs operator attention.
type Diagnostic struct {
	Row    int
	Reason string
}

// Rules configures eligibility filtering and normalization for Select.
type Rules struct {
	// IgnoreTicket drops rows whose ticket matches exactly (donation
	// tickets and similar non-attendee products). Empty disables.
	IgnoreTicket string

	// BlankPrefix marks a name cell as "print no name". The row still
	// gets a badge with logo and ribbon.
	BlankPrefix string

	// PronounStyle selects how the pronoun cell is rewritten.
	PronounStyle PronounStyle

	// RequireCategory emits a diagnostic for rows with an empty category
	// column. Set when ribbons are drawn from the category.
	RequireCategory bool
}

// Select applies the eligibility rules and returns the rows that become
// badges, in input order, plus diagnostics for rows an operator should
// look at.
//
// Ineligible rows (ignored ticket, unanswered photo question) drop
// silently; those are expected in every export. A missing name is a data
// problem and produces a diagnostic.
func Select(rows []Attendee, rules Rules) ([]Attendee, []Diagnostic) {
	var kept []Attendee
	var diags []Diagnostic

	for _, a := range rows {
		if rules.IgnoreTicket != "" && a.Ticket == rules.IgnoreTicket {
			continue
		}
		if strings.TrimSpace(a.PhotoOptOut) == "" {
			continue
		}

		name := strings.TrimSpace(a.Name)
		if name == "" {
			diags = append(diags, Diagnostic{Row: a.Row, Reason: "name is missing a value"})
			continue
		}

		if rules.BlankPrefix != "" && strings.HasPrefix(name, rules.BlankPrefix) {
			a.DisplayName = ""
		} else {
			a.DisplayName = CollapseWhitespace(name)
		}

		a.Pronouns = ApplyPronounStyle(a.Pronouns, rules.PronounStyle)

		if rules.RequireCategory && strings.TrimSpace(a.Category) == "" {
			diags = append(diags, Diagnostic{
				Row:    a.Row,
				Reason: "attendee category is empty; ribbon will show the event name",
			})
		}

		kept = append(kept, a)
	}

	return kept, diags
}
