package content

import "strings"

// PruneResult summarizes what Prune changed.
type PruneResult struct {
	Removed       int `json:"removed"`
	Kept          int `json:"kept"`
	DroppedRelics int `json:"dropped_relics"`
}

type storyKey struct {
	date  string
	title string // casefolded
}

// storyBlobs indexes title+text per (date, title) for mention checks.
func storyBlobs(days map[string]*Day) map[storyKey]string {
	idx := map[storyKey]string{}
	for date, day := range days {
		for _, s := range day.Stories {
			title := strings.TrimSpace(s.Title)
			if title == "" {
				continue
			}
			k := storyKey{date: strings.TrimSpace(date), title: strings.ToLower(title)}
			idx[k] = title + "\n" + s.Text
		}
	}
	return idx
}

// Prune removes story_appearances whose story text does not actually mention
// the entity, and drops relic entries that duplicate character names
// (cross-category drift from the extractor). It only removes links, never
// invents them, so running it twice is a no-op.
func Prune(codex Codex, days map[string]*Day) PruneResult {
	blobs := storyBlobs(days)
	var res PruneResult

	charBases := map[string]bool{}
	for _, c := range codex["characters"] {
		if b := baseName(c.Name); b != "" {
			charBases[b] = true
		}
	}
	if relics, ok := codex["relics"]; ok {
		kept := relics[:0]
		for _, r := range relics {
			if charBases[baseName(r.Name)] {
				res.DroppedRelics++
				continue
			}
			kept = append(kept, r)
		}
		codex["relics"] = kept
	}

	for cat, entries := range codex {
		for _, e := range entries {
			if len(e.StoryAppearances) == 0 {
				continue
			}

			newApps := make([]Appearance, 0, len(e.StoryAppearances))
			for _, a := range e.StoryAppearances {
				d, t := strings.TrimSpace(a.Date), strings.TrimSpace(a.Title)
				if d == "" || t == "" {
					continue
				}
				blob, ok := blobs[storyKey{date: d, title: strings.ToLower(t)}]
				if !ok {
					continue
				}
				if EntityMentioned(cat, e, blob) {
					newApps = append(newApps, Appearance{Date: d, Title: t})
				}
			}

			// If everything got pruned, preserve first_story when it still
			// holds up, so the entity keeps at least one anchor.
			if len(newApps) == 0 {
				fd, fs := strings.TrimSpace(e.FirstDate), strings.TrimSpace(e.FirstStory)
				if fd != "" && fs != "" {
					if blob, ok := blobs[storyKey{date: fd, title: strings.ToLower(fs)}]; ok && EntityMentioned(cat, e, blob) {
						newApps = []Appearance{{Date: fd, Title: fs}}
					}
				}
			}

			res.Removed += len(e.StoryAppearances) - len(newApps)
			res.Kept += len(newApps)

			e.StoryAppearances = newApps
			if len(newApps) > 0 {
				e.Appearances = len(newApps)
				if strings.TrimSpace(e.FirstStory) == "" {
					e.FirstStory = newApps[0].Title
				}
				if strings.TrimSpace(e.FirstDate) == "" {
					e.FirstDate = newApps[0].Date
				}
			}
		}
	}

	return res
}
