package journal

import (
	"testing"
	"time"
)

func entryWithMood(n int, mood Mood) Entry {
	return NewEntry(n, "ghi chép", "Hầm trú ẩn 04", mood, time.Unix(1700000000, 0))
}

func TestAddEntryCountsAndOrder(t *testing.T) {
	s := NewState()
	moods := []Mood{MoodNeutral, MoodHopeful, MoodScared, MoodAngry, MoodDesperate}
	for i, m := range moods {
		s.AddEntry(entryWithMood(i+1, m))
	}
	if s.Stats.EntriesCount != len(moods) {
		t.Fatalf("entries count = %d, want %d", s.Stats.EntriesCount, len(moods))
	}
	if s.Entries[0].ID != "LOG-005" {
		t.Fatalf("newest entry should be first, got %s", s.Entries[0].ID)
	}
	if s.Stats.HealthStatus < 0 || s.Stats.HealthStatus > 100 {
		t.Fatalf("health out of range: %d", s.Stats.HealthStatus)
	}
}

func TestHealthClampsAtCeiling(t *testing.T) {
	s := NewState()
	s.Stats.HealthStatus = 99
	s.AddEntry(entryWithMood(1, MoodHopeful))
	if s.Stats.HealthStatus != 100 {
		t.Fatalf("health = %d, want 100", s.Stats.HealthStatus)
	}
}

func TestHealthClampsAtFloor(t *testing.T) {
	s := NewState()
	s.Stats.HealthStatus = 0
	s.AddEntry(entryWithMood(1, MoodDesperate))
	if s.Stats.HealthStatus != 0 {
		t.Fatalf("health = %d, want 0", s.Stats.HealthStatus)
	}
}

func TestHealthStaysInRangeForAnyMoodSequence(t *testing.T) {
	s := NewState()
	seq := []Mood{MoodHopeful, MoodHopeful, MoodAngry, MoodScared, MoodDesperate, MoodNeutral, MoodHopeful}
	for round := 0; round < 30; round++ {
		for i, m := range seq {
			s.AddEntry(entryWithMood(round*len(seq)+i+1, m))
			if s.Stats.HealthStatus < 0 || s.Stats.HealthStatus > 100 {
				t.Fatalf("health escaped range: %d", s.Stats.HealthStatus)
			}
		}
	}
}

func TestAddEntryUpdatesLastLocation(t *testing.T) {
	s := NewState()
	e := NewEntry(1, "di chuyển", "Chợ Lớn", MoodNeutral, time.Now())
	s.AddEntry(e)
	if s.Stats.LastLocation != "Chợ Lớn" {
		t.Fatalf("last location = %q", s.Stats.LastLocation)
	}
}

func TestInventoryDedupesFirstSeen(t *testing.T) {
	entries := []Entry{
		{Analysis: &Analysis{ResourcesDetected: []string{"nước", "gỗ"}}},
		{Analysis: &Analysis{ResourcesDetected: []string{"gỗ", "dây thép", "nước"}}},
		{Analysis: nil},
		{Analysis: &Analysis{ResourcesDetected: []string{"xăng"}}},
	}
	got := Inventory(entries)
	want := []string{"nước", "gỗ", "dây thép", "xăng"}
	if len(got) != len(want) {
		t.Fatalf("inventory = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("inventory[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFilterMatchesContentOrLocation(t *testing.T) {
	entries := []Entry{
		{ID: "LOG-001", Content: "Tìm thấy nước", Location: "Chợ Lớn"},
		{ID: "LOG-002", Content: "Trời mưa cả ngày", Location: "Quận 7"},
	}
	cases := []struct {
		term string
		want []string
	}{
		{"nước", []string{"LOG-001"}},
		{"chợ lớn", []string{"LOG-001"}},
		{"xyz", nil},
		{"", []string{"LOG-001", "LOG-002"}},
	}
	for _, tc := range cases {
		got := Filter(entries, tc.term)
		if len(got) != len(tc.want) {
			t.Fatalf("Filter(%q) returned %d entries, want %d", tc.term, len(got), len(tc.want))
		}
		for i, id := range tc.want {
			if got[i].ID != id {
				t.Fatalf("Filter(%q)[%d] = %s, want %s", tc.term, i, got[i].ID, id)
			}
		}
	}
}

func TestRiskSeriesChronologicalAndCapped(t *testing.T) {
	var entries []Entry
	for i := 9; i >= 1; i-- { // newest first, risks 90..10
		entries = append(entries, Entry{
			DateDisplay: "2/1/2026, 10:00",
			Analysis:    &Analysis{RiskLevel: i * 10, Summary: "s"},
		})
	}
	series := RiskSeries(entries)
	if len(series) != 7 {
		t.Fatalf("series length = %d, want 7", len(series))
	}
	if series[0].Risk != 30 || series[6].Risk != 90 {
		t.Fatalf("series not chronological: first %d last %d", series[0].Risk, series[6].Risk)
	}
	if series[0].Label != "2/1/2026" {
		t.Fatalf("label = %q", series[0].Label)
	}
}

func TestMoodSeriesOrdinals(t *testing.T) {
	entries := []Entry{ // newest first
		{Mood: MoodHopeful},
		{Mood: MoodNeutral},
		{Mood: MoodAngry},
		{Mood: MoodScared},
		{Mood: MoodDesperate},
		{Mood: MoodHopeful},
	}
	got := MoodSeries(entries)
	want := []int{1, 1, 2, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("series = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("series[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestMoodValidate(t *testing.T) {
	for _, m := range AllMoods {
		if !m.Validate() {
			t.Fatalf("mood %q should validate", m)
		}
	}
	if Mood("Bored").Validate() {
		t.Fatal("unknown mood validated")
	}
}
