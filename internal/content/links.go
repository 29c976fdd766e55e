package content

import (
	"sort"
	"strings"
)

// BrokenLink is a codex reference to a story that does not exist on the
// referenced date. SuggestedDates lists dates where a story with the same
// normalized title does exist.
type BrokenLink struct {
	Category       string   `json:"category"`
	Entity         string   `json:"entity"`
	LinkType       string   `json:"link_type"`
	Date           string   `json:"date"`
	Title          string   `json:"title"`
	SuggestedDates []string `json:"suggested_dates_for_title"`
}

// LinkReport is the output of CheckLinks, written by gazettectl as
// broken_story_links.json.
type LinkReport struct {
	DatesLoaded []string     `json:"dates_loaded"`
	BrokenLinks []BrokenLink `json:"broken_links"`
	BrokenCount int          `json:"broken_count"`
}

// storyOnDate checks whether a day carries a story with the given title,
// first by exact case-insensitive match, then by normalized key.
func storyOnDate(days map[string]*Day, date, title string) bool {
	day, ok := days[date]
	if !ok {
		return false
	}
	wantRaw := strings.ToLower(strings.TrimSpace(title))
	for _, s := range day.Stories {
		if strings.ToLower(strings.TrimSpace(s.Title)) == wantRaw {
			return true
		}
	}
	wantKey := NormalizeTitleKey(title)
	for _, s := range day.Stories {
		if NormalizeTitleKey(s.Title) == wantKey {
			return true
		}
	}
	return false
}

// globalTitleIndex maps normalized title key -> set of dates it appears on.
func globalTitleIndex(days map[string]*Day) map[string]map[string]bool {
	idx := map[string]map[string]bool{}
	for date, day := range days {
		for _, s := range day.Stories {
			title := strings.TrimSpace(s.Title)
			if title == "" {
				continue
			}
			key := NormalizeTitleKey(title)
			if idx[key] == nil {
				idx[key] = map[string]bool{}
			}
			idx[key][date] = true
		}
	}
	return idx
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// CheckLinks validates every story_appearances entry and first_story
// reference in the codex against the loaded issues.
func CheckLinks(days map[string]*Day, codex Codex) *LinkReport {
	idx := globalTitleIndex(days)
	report := &LinkReport{BrokenLinks: []BrokenLink{}}

	for date := range days {
		report.DatesLoaded = append(report.DatesLoaded, date)
	}
	sort.Strings(report.DatesLoaded)

	for _, cat := range sortedCategories(codex) {
		for _, e := range codex[cat] {
			name := strings.TrimSpace(e.Name)
			if name == "" {
				continue
			}

			for _, a := range e.StoryAppearances {
				d, t := strings.TrimSpace(a.Date), strings.TrimSpace(a.Title)
				if d == "" || t == "" {
					continue
				}
				if !storyOnDate(days, d, t) {
					report.BrokenLinks = append(report.BrokenLinks, BrokenLink{
						Category:       cat,
						Entity:         name,
						LinkType:       "story_appearances",
						Date:           d,
						Title:          t,
						SuggestedDates: sortedKeys(idx[NormalizeTitleKey(t)]),
					})
				}
			}

			fd, fs := strings.TrimSpace(e.FirstDate), strings.TrimSpace(e.FirstStory)
			if fd != "" && fs != "" && !storyOnDate(days, fd, fs) {
				report.BrokenLinks = append(report.BrokenLinks, BrokenLink{
					Category:       cat,
					Entity:         name,
					LinkType:       "first_story",
					Date:           fd,
					Title:          fs,
					SuggestedDates: sortedKeys(idx[NormalizeTitleKey(fs)]),
				})
			}
		}
	}

	report.BrokenCount = len(report.BrokenLinks)
	return report
}

func sortedCategories(codex Codex) []string {
	cats := make([]string, 0, len(codex))
	for c := range codex {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}
