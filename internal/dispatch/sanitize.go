package dispatch

import "strings"

// SanitizeValue normalizes an operator-supplied config string: trims
// whitespace and strips surrounding single or double quotes. Operators paste
// values straight out of shell snippets, so quoted values are common.
// Idempotent.
func SanitizeValue(s string) string {
	s = strings.TrimSpace(s)
	for len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			s = strings.TrimSpace(s[1 : len(s)-1])
			continue
		}
		break
	}
	return s
}

// SanitizeWorkflow normalizes the workflow file name. Beyond SanitizeValue it
// strips leading slashes and a pasted ".github/workflows/" path prefix: the
// dispatch endpoint wants the bare file name.
func SanitizeWorkflow(s string) string {
	s = SanitizeValue(s)
	s = strings.TrimLeft(s, "/")
	s = strings.TrimPrefix(s, ".github/workflows/")
	s = strings.TrimLeft(s, "/")
	return s
}
