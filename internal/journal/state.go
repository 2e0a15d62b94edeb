package journal

import "strings"

// State is the single in-memory container the whole app mutates. The UI owns
// one State and funnels every change through the named operations below;
// persistence observes the result, it is never a second source of truth.
type State struct {
	Entries      []Entry       `json:"entries"`
	Stats        Stats         `json:"stats"`
	CraftedItems []CraftedItem `json:"craftedItems"`
}

// NewState returns an empty container with seeded stats.
func NewState() State {
	return State{Stats: DefaultStats()}
}

// AddEntry prepends the entry (newest first) and recomputes the aggregate
// stats: count +1, last location overwritten, health +2 on a Hopeful mood and
// -1 otherwise, clamped to 0-100.
func (s *State) AddEntry(e Entry) {
	s.Entries = append([]Entry{e}, s.Entries...)
	s.Stats.EntriesCount++
	s.Stats.LastLocation = e.Location
	delta := -1
	if e.Mood == MoodHopeful {
		delta = 2
	}
	s.Stats.HealthStatus = clamp(s.Stats.HealthStatus+delta, 0, 100)
}

// AddCraftedItem appends to the crafting history. Items are never removed.
func (s *State) AddCraftedItem(it CraftedItem) {
	s.CraftedItems = append(s.CraftedItems, it)
}

// Inventory flattens every entry's detected-resources lists into a
// deduplicated slice in first-seen order. Derived on demand, never stored.
func Inventory(entries []Entry) []string {
	seen := map[string]bool{}
	var out []string
	for _, e := range entries {
		if e.Analysis == nil {
			continue
		}
		for _, r := range e.Analysis.ResourcesDetected {
			if seen[r] {
				continue
			}
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}

// Filter returns the entries whose content or location contains the term,
// case-insensitive. An empty term returns everything, order preserved.
func Filter(entries []Entry, term string) []Entry {
	if term == "" {
		return entries
	}
	needle := strings.ToLower(term)
	var out []Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Content), needle) ||
			strings.Contains(strings.ToLower(e.Location), needle) {
			out = append(out, e)
		}
	}
	return out
}

// RiskPoint is one bar of the dashboard risk chart.
type RiskPoint struct {
	Label string
	Risk  int
}

// RiskSeries takes the 7 most recent entries and returns them in
// chronological order with simplified date labels. Entries without an
// analysis chart as zero.
func RiskSeries(entries []Entry) []RiskPoint {
	n := len(entries)
	if n > 7 {
		n = 7
	}
	out := make([]RiskPoint, 0, n)
	for i := n - 1; i >= 0; i-- { // entries are newest first
		e := entries[i]
		risk := 0
		if e.Analysis != nil {
			risk = e.Analysis.RiskLevel
		}
		out = append(out, RiskPoint{Label: e.ChartLabel(), Risk: risk})
	}
	return out
}

// MoodSeries maps the 5 most recent entries onto mood ordinals, oldest first.
func MoodSeries(entries []Entry) []int {
	n := len(entries)
	if n > 5 {
		n = 5
	}
	out := make([]int, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, entries[i].Mood.Score())
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
