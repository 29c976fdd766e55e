package content

import (
	"regexp"
	"strings"
)

// quoteFolder mirrors the title normalization the front end applies before
// comparing titles: curly quotes become straight, non-breaking hyphens become
// plain, and apostrophes are dropped entirely.
var quoteFolder = strings.NewReplacer(
	"’", "'",
	"‘", "'",
	"‑", "-",
)

var (
	nonAlnum    = regexp.MustCompile(`[^a-z0-9]+`)
	trailingPar = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
)

// NormalizeTitleKey reduces a story title to a comparison key: lowercase,
// quote-folded, apostrophes removed, every other non-alphanumeric run
// collapsed to a single space.
func NormalizeTitleKey(s string) string {
	raw := strings.ToLower(strings.TrimSpace(s))
	if raw == "" {
		return ""
	}
	raw = quoteFolder.Replace(raw)
	raw = strings.ReplaceAll(raw, "'", "")
	raw = nonAlnum.ReplaceAllString(raw, " ")
	return strings.Join(strings.Fields(raw), " ")
}

// stripTrailingParenthetical removes a disambiguating suffix like
// "Vorna (the Younger)" -> "Vorna".
func stripTrailingParenthetical(name string) string {
	return strings.TrimSpace(trailingPar.ReplaceAllString(name, ""))
}

// baseName is the identity key used for cross-category duplicate checks.
func baseName(name string) string {
	s := quoteFolder.Replace(stripTrailingParenthetical(name))
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// NameMentioned reports whether name occurs in text on word boundaries,
// case-insensitively. Plain substring search is too loose ("crow" inside
// "crown" would count); word boundaries keep appearances honest.
func NameMentioned(name, text string) bool {
	n := stripTrailingParenthetical(name)
	if n == "" {
		return false
	}
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(n) + `\b`)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}

// EntityMentioned applies NameMentioned to an entity; characters also match
// through their aliases.
func EntityMentioned(category string, e *Entity, text string) bool {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return false
	}
	if NameMentioned(name, text) {
		return true
	}
	if category != "characters" {
		return false
	}
	for _, a := range e.Aliases {
		if NameMentioned(strings.TrimSpace(a), text) {
			return true
		}
	}
	return false
}
