package journal

import (
	"fmt"
	"time"
)

// JSON field names are a fixed contract; existing saves must stay readable.

// Entry is one journal log record authored by the user.
type Entry struct {
	ID          string    `json:"id"`
	Timestamp   int64     `json:"timestamp"` // unix millis
	DateDisplay string    `json:"dateDisplay"`
	Content     string    `json:"content"`
	Location    string    `json:"location"`
	Mood        Mood      `json:"mood"`
	Tags        []string  `json:"tags"`
	Analysis    *Analysis `json:"aiAnalysis,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
}

// Analysis is the AI-produced risk assessment attached to an entry. It is
// requested at most while drafting and never recomputed after save.
type Analysis struct {
	RiskLevel         int      `json:"riskLevel" validate:"gte=0,lte=100"`
	Summary           string   `json:"summary" validate:"required"`
	SurvivalTips      []string `json:"survivalTips"`
	ResourcesDetected []string `json:"resourcesDetected"`
}

// Stats is the aggregate survivor status shown on the dashboard.
type Stats struct {
	DaysSurvived int    `json:"daysSurvived"`
	EntriesCount int    `json:"entriesCount"`
	LastLocation string `json:"lastLocation"`
	HealthStatus int    `json:"healthStatus"` // 0-100
}

// CraftedItem is a named artifact produced by a successful craft attempt,
// with its consumed ingredients retained as provenance.
type CraftedItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Utility     string   `json:"utility"`
	Ingredients []string `json:"ingredients"`
	Timestamp   int64    `json:"timestamp"` // unix millis
}

// dateDisplayLayout follows the vi-VN locale shape; the dashboard splits it
// on the comma for the short chart label.
const dateDisplayLayout = "2/1/2006, 15:04"

const unknownLocation = "Không xác định"

// DefaultStats is the seed used when no stats document exists yet. The
// days-survived counter is a static seed; nothing increments it.
func DefaultStats() Stats {
	return Stats{
		DaysSurvived: 142,
		EntriesCount: 0,
		LastLocation: "Hầm trú ẩn 04",
		HealthStatus: 78,
	}
}

// NewEntry builds the entry for the nth save (1-based sequential display
// code, zero-padded). Empty locations become the fixed unknown marker.
func NewEntry(n int, content, location string, mood Mood, now time.Time) Entry {
	if location == "" {
		location = unknownLocation
	}
	return Entry{
		ID:          fmt.Sprintf("LOG-%03d", n),
		Timestamp:   now.UnixMilli(),
		DateDisplay: now.Format(dateDisplayLayout),
		Content:     content,
		Location:    location,
		Mood:        mood,
		Tags:        []string{},
	}
}

// NewCraftedItem builds a crafted item with its timestamp-derived id.
func NewCraftedItem(name, description, utility string, ingredients []string, now time.Time) CraftedItem {
	return CraftedItem{
		ID:          fmt.Sprintf("ITEM-%d", now.UnixMilli()),
		Name:        name,
		Description: description,
		Utility:     utility,
		Ingredients: append([]string{}, ingredients...),
		Timestamp:   now.UnixMilli(),
	}
}

// ChartLabel is the simplified date label used on the risk chart: the part
// of the display date before the comma.
func (e Entry) ChartLabel() string {
	for i := 0; i < len(e.DateDisplay); i++ {
		if e.DateDisplay[i] == ',' {
			return e.DateDisplay[:i]
		}
	}
	return e.DateDisplay
}
