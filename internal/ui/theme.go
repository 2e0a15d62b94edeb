package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	AccentAlt  lipgloss.Color
	Border     lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Danger     lipgloss.Color
	BarFill    lipgloss.Color
	BarEmpty   lipgloss.Color
}

// "wasteland" is the default rust-and-stone palette.
var palettes = map[string]palette{
	"wasteland": {
		Background: lipgloss.Color("#1c1917"),
		Surface:    lipgloss.Color("#292524"),
		Text:       lipgloss.Color("#d6d3d1"),
		Muted:      lipgloss.Color("#78716c"),
		Accent:     lipgloss.Color("#d97706"),
		AccentAlt:  lipgloss.Color("#b45309"),
		Border:     lipgloss.Color("#44403c"),
		Success:    lipgloss.Color("#059669"),
		Warning:    lipgloss.Color("#f59e0b"),
		Danger:     lipgloss.Color("#dc2626"),
		BarFill:    lipgloss.Color("#d97706"),
		BarEmpty:   lipgloss.Color("#292524"),
	},
	"bunker": {
		Background: lipgloss.Color("#111827"),
		Surface:    lipgloss.Color("#1f2937"),
		Text:       lipgloss.Color("#e5e7eb"),
		Muted:      lipgloss.Color("#6b7280"),
		Accent:     lipgloss.Color("#10b981"),
		AccentAlt:  lipgloss.Color("#34d399"),
		Border:     lipgloss.Color("#374151"),
		Success:    lipgloss.Color("#10b981"),
		Warning:    lipgloss.Color("#fbbf24"),
		Danger:     lipgloss.Color("#f87171"),
		BarFill:    lipgloss.Color("#10b981"),
		BarEmpty:   lipgloss.Color("#1f2937"),
	},
	"overgrowth": {
		Background: lipgloss.Color("#142410"),
		Surface:    lipgloss.Color("#1a2e1a"),
		Text:       lipgloss.Color("#d9f99d"),
		Muted:      lipgloss.Color("#65a30d"),
		Accent:     lipgloss.Color("#84cc16"),
		AccentAlt:  lipgloss.Color("#a3e635"),
		Border:     lipgloss.Color("#3f6212"),
		Success:    lipgloss.Color("#4ade80"),
		Warning:    lipgloss.Color("#facc15"),
		Danger:     lipgloss.Color("#f87171"),
		BarFill:    lipgloss.Color("#84cc16"),
		BarEmpty:   lipgloss.Color("#1a2e1a"),
	},
	"ashfall": {
		Background: lipgloss.Color("#18181b"),
		Surface:    lipgloss.Color("#27272a"),
		Text:       lipgloss.Color("#f4f4f5"),
		Muted:      lipgloss.Color("#71717a"),
		Accent:     lipgloss.Color("#a1a1aa"),
		AccentAlt:  lipgloss.Color("#e4e4e7"),
		Border:     lipgloss.Color("#3f3f46"),
		Success:    lipgloss.Color("#86efac"),
		Warning:    lipgloss.Color("#fde047"),
		Danger:     lipgloss.Color("#fca5a5"),
		BarFill:    lipgloss.Color("#a1a1aa"),
		BarEmpty:   lipgloss.Color("#27272a"),
	},
}

func paletteFor(name string) palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes["wasteland"]
}

func themeNames() []string {
	names := make([]string, 0, len(palettes))
	for k := range palettes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func nextThemeName(current string, step int) string {
	names := themeNames()
	if len(names) == 0 {
		return current
	}
	idx := 0
	for i, name := range names {
		if name == current {
			idx = i
			break
		}
	}
	idx = (idx + step) % len(names)
	if idx < 0 {
		idx += len(names)
	}
	return names[idx]
}
