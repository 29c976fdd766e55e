// Package content models the pre-generated site data (daily stories, the
// archive, the lore codex) and the maintenance checks that keep codex links
// honest. The files are written by the CI generator; this package only reads
// them, except for Prune which rewrites codex.json in place.
package content

import "encoding/json"

// Story is a single issue entry.
type Story struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	Subgenre string `json:"subgenre,omitempty"`
}

// Day is one issue: stories.json or archive/<date>.json.
type Day struct {
	Date        string  `json:"date"`
	GeneratedAt string  `json:"generated_at,omitempty"`
	Stories     []Story `json:"stories"`
}

// ArchiveIndex is archive/index.json.
type ArchiveIndex struct {
	Dates []string `json:"dates"`
}

// Appearance links a codex entity to a story by issue date and title.
type Appearance struct {
	Date  string `json:"date"`
	Title string `json:"title"`
}

// Codex maps category (characters, places, events, ...) to entries.
type Codex map[string][]*Entity

// Entity is one codex entry. The generator attaches category-specific fields
// we do not model (significance, region, type, ...); they are preserved
// verbatim through Extra so a rewrite never drops data.
type Entity struct {
	Name             string       `json:"name"`
	Aliases          []string     `json:"aliases,omitempty"`
	Appearances      int          `json:"appearances,omitempty"`
	FirstDate        string       `json:"first_date,omitempty"`
	FirstStory       string       `json:"first_story,omitempty"`
	StoryAppearances []Appearance `json:"story_appearances"`

	Extra map[string]json.RawMessage `json:"-"`
}

// knownEntityKeys are the fields handled by the struct itself.
var knownEntityKeys = []string{
	"name", "aliases", "appearances", "first_date", "first_story", "story_appearances",
}

func (e *Entity) UnmarshalJSON(b []byte) error {
	type plain Entity
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	for _, k := range knownEntityKeys {
		delete(m, k)
	}
	if len(m) == 0 {
		m = nil
	}
	p.Extra = m
	*e = Entity(p)
	return nil
}

func (e *Entity) MarshalJSON() ([]byte, error) {
	type plain Entity
	b, err := json.Marshal((*plain)(e))
	if err != nil {
		return nil, err
	}
	if len(e.Extra) == 0 {
		return b, nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	for k, v := range e.Extra {
		if _, ok := m[k]; !ok {
			m[k] = v
		}
	}
	return json.Marshal(m)
}
