// Package roster loads and normalizes attendee rows from registration
// exports.
//
// # Overview
//
// Badgepress reads the registration platform's export (xlsx or csv),
// selects the rows that should become badges, and normalizes the fields
// that end up printed. This package provides that whole front half of
// the run:
//
//  1. Read: load raw rows from a spreadsheet ([ReadFile], [Reader])
//  2. Select: apply eligibility filters and collect diagnostics ([Select])
//  3. Normalize: clean names and pronouns ([CollapseWhitespace], [FormatPronouns])
//
// # Reading
//
// Readers implement [Reader] and are chosen by file extension:
//
//	rows, err := roster.ReadFile("registrations.xlsx", roster.ReadOptions{
//	    Columns: roster.Columns{...},
//	})
//
// Column headers are mapped through [Columns] so the same code handles
// exports with renamed questions. Missing required columns (name, ticket,
// photo opt-out) fail the read; optional columns read as empty.
//
// # Selection
//
// [Select] applies the eligibility rules in row order:
//
//   - rows holding the ignored ticket type are dropped silently
//   - rows that never answered the photo question are dropped silently
//   - rows with a missing name are dropped with a [Diagnostic]
//
// Rows that survive receive their print-ready DisplayName and styled
// pronouns. Order is preserved throughout; the first eligible row
// becomes the first badge.
package roster
