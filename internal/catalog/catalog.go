package catalog

import "strings"

// Entry is a movie from the reference catalog with its mood and
// sentiment tags. Entries are loaded once at startup and never mutated.
type Entry struct {
	Title      string   `json:"title"`
	Moods      []string `json:"moods"`
	Sentiments []string `json:"sentiments"`
}

func (e Entry) HasMood(mood string) bool {
	for _, m := range e.Moods {
		if strings.EqualFold(m, mood) {
			return true
		}
	}
	return false
}

func (e Entry) SharesMood(moods []string) bool {
	for _, m := range moods {
		if e.HasMood(m) {
			return true
		}
	}
	return false
}

type Catalog struct {
	entries []Entry
}

func New(entries []Entry) *Catalog {
	return &Catalog{entries: entries}
}

func (c *Catalog) Entries() []Entry {
	return c.entries
}

func (c *Catalog) ByMood(mood string) []Entry {
	matched := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		if e.HasMood(mood) {
			matched = append(matched, e)
		}
	}
	return matched
}

func (c *Catalog) ByTitle(title string) (Entry, bool) {
	for _, e := range c.entries {
		if strings.EqualFold(e.Title, title) {
			return e, true
		}
	}
	return Entry{}, false
}
