package roster

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// PronounStyle selects how the pronoun cell is rewritten before printing.
type PronounStyle int

const (
	// PronounsRaw prints the cell exactly as entered.
	PronounsRaw PronounStyle = iota
	// PronounsFormatted normalizes spacing and capitalization.
	PronounsFormatted
	// PronounsStandardized maps recognized pronoun sets to canonical forms.
	PronounsStandardized
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// CollapseWhitespace trims s and squeezes interior whitespace runs to a
// single space. Registration forms collect names with stray newlines and
// double spaces; badges print them on one line.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

var slashSpacing = regexp.MustCompile(`\s*/\s*`)

// FormatPronouns normalizes a free-text pronoun entry: whitespace runs
// collapse, slashes get a space on both sides, and each word is
// capitalized. "she/her" becomes "She / Her".
func FormatPronouns(s string) string {
	cleaned := strings.Join(strings.Fields(s), " ")
	cleaned = slashSpacing.ReplaceAllString(cleaned, " / ")

	words := strings.Fields(cleaned)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// pronounGroups maps the recognized forms of each pronoun set to its
// canonical key, in the order groups appear in combined output.
var pronounGroups = []struct {
	canon string
	forms []string
}{
	{"he", []string{"he", "him", "his"}},
	{"she", []string{"she", "her", "hers"}},
	{"they", []string{"they", "them", "their", "theirs"}},
}

// canonicalSets holds the full printed form for a single recognized set.
var canonicalSets = map[string]string{
	"he":   "He / Him",
	"she":  "She / Hers",
	"they": "They / Them",
}

// StandardizePronouns maps a pronoun entry onto canonical printed forms.
// A single recognized set prints in full ("she/her/hers" becomes
// "She / Hers"); multiple sets combine ("he/they" becomes "He / They").
// Entries with no recognized set fall back to FormatPronouns so
// uncommon pronouns still print as entered.
func StandardizePronouns(s string) string {
	parts := strings.Split(s, "/")
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}

	var found []string
	for _, g := range pronounGroups {
		if containsAny(parts, g.forms) {
			found = append(found, g.canon)
		}
	}

	switch len(found) {
	case 0:
		return FormatPronouns(s)
	case 1:
		return canonicalSets[found[0]]
	default:
		for i, f := range found {
			found[i] = capitalize(f)
		}
		return strings.Join(found, " / ")
	}
}

// ApplyPronounStyle rewrites a pronoun cell per the configured style.
// Blank cells pass through untouched so sentinel checks downstream
// still work.
func ApplyPronounStyle(s string, style PronounStyle) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	switch style {
	case PronounsFormatted:
		return FormatPronouns(s)
	case PronounsStandardized:
		return StandardizePronouns(s)
	default:
		return s
	}
}

func containsAny(haystack, needles []string) bool {
	for _, h := range haystack {
		for _, n := range needles {
			if h == n {
				return true
			}
		}
	}
	return false
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
