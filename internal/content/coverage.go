package content

import (
	"regexp"
	"sort"
	"strings"
)

// StoryCoverage reports, for one story, which codex categories it hit and
// which name-like candidates in its text have no codex entry. A heuristic
// audit; it never changes data.
type StoryCoverage struct {
	Date              string              `json:"date"`
	Title             string              `json:"title"`
	Hits              map[string][]string `json:"hits"`
	EmptyCategories   []string            `json:"empty_categories"`
	MissingCandidates []string            `json:"missing_candidates"`
}

// candidateRe matches capitalized proper-name runs, optionally joined by
// small connectives ("Gardens of the Weeping King"), or a single capitalized
// word of three letters or more.
var candidateRe = regexp.MustCompile(
	`\b[A-Z][\w’'\-]+(?:(?:(?:[ \t]+(?:of|the|and|in|on|at|to|for)[ \t]+)|[ \t]+)[A-Z][\w’'\-]+){1,4}\b` +
		`|\b[A-Z][\w’'\-]{2,}\b`)

var stopSingle = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "been": true, "but": true, "by": true, "each": true,
	"for": true, "from": true, "had": true, "has": true, "have": true,
	"he": true, "her": true, "hers": true, "him": true, "his": true,
	"i": true, "if": true, "in": true, "into": true, "is": true, "it": true,
	"its": true, "like": true, "me": true, "my": true, "no": true,
	"not": true, "now": true, "of": true, "off": true, "on": true,
	"one": true, "or": true, "our": true, "out": true, "she": true,
	"so": true, "some": true, "soon": true, "than": true, "that": true,
	"the": true, "their": true, "then": true, "there": true, "these": true,
	"they": true, "this": true, "those": true, "three": true, "to": true,
	"too": true, "two": true, "under": true, "up": true, "upon": true,
	"was": true, "we": true, "were": true, "what": true, "when": true,
	"who": true, "why": true, "will": true, "with": true, "you": true,
	"your": true,
	// pronoun-ish words the regex still catches at sentence starts
	"anything": true, "everything": true, "nothing": true, "someone": true,
	"something": true, "yes": true,
}

// ExtractNameCandidates pulls proper-name candidates out of story text,
// deduplicated case-insensitively, capped at max.
func ExtractNameCandidates(text string, max int) []string {
	var out []string
	seen := map[string]bool{}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		for _, m := range candidateRe.FindAllString(line, -1) {
			cand := strings.Join(strings.Fields(m), " ")
			if cand == "" {
				continue
			}
			key := strings.ToLower(cand)
			if seen[key] {
				continue
			}
			if !strings.Contains(cand, " ") {
				if stopSingle[key] || len(cand) <= 2 {
					continue
				}
			}
			seen[key] = true
			out = append(out, cand)
			if len(out) >= max {
				return out
			}
		}
	}
	return out
}

// codexNameIndex maps category -> entity names.
func codexNameIndex(codex Codex) map[string][]string {
	idx := map[string][]string{}
	for cat, entries := range codex {
		for _, e := range entries {
			if name := strings.TrimSpace(e.Name); name != "" {
				idx[cat] = append(idx[cat], name)
			}
		}
	}
	return idx
}

// storyHits finds codex names appearing in the text, by category. Loose
// lowercase substring on purpose: this side of the audit wants recall, the
// prune side wants precision.
func storyHits(text string, idx map[string][]string) map[string][]string {
	tl := strings.ToLower(text)
	hits := map[string][]string{}
	for cat, names := range idx {
		var matched []string
		for _, nm := range names {
			if strings.Contains(tl, strings.ToLower(nm)) {
				matched = append(matched, nm)
			}
		}
		if len(matched) > 0 {
			sort.Strings(matched)
			hits[cat] = matched
		}
	}
	return hits
}

// Coverage audits one issue against the codex.
func Coverage(day *Day, codex Codex, maxMissing int) []StoryCoverage {
	idx := codexNameIndex(codex)

	known := map[string]bool{}
	for _, names := range idx {
		for _, nm := range names {
			known[strings.ToLower(nm)] = true
		}
	}

	var out []StoryCoverage
	for _, s := range day.Stories {
		blob := s.Title + "\n" + s.Text
		hits := storyHits(blob, idx)

		var empty []string
		for _, cat := range []string{"characters", "places", "events"} {
			if len(hits[cat]) == 0 {
				empty = append(empty, cat)
			}
		}

		var missing []string
		for _, cand := range ExtractNameCandidates(blob, 200) {
			if known[strings.ToLower(cand)] {
				continue
			}
			missing = append(missing, cand)
			if len(missing) >= maxMissing {
				break
			}
		}

		out = append(out, StoryCoverage{
			Date:              day.Date,
			Title:             s.Title,
			Hits:              hits,
			EmptyCategories:   empty,
			MissingCandidates: missing,
		})
	}
	return out
}
