package journal

// String backed enums so stored JSON stays readable.

type Mood string

const (
	MoodHopeful   Mood = "Hopeful"
	MoodDesperate Mood = "Desperate"
	MoodNeutral   Mood = "Neutral"
	MoodScared    Mood = "Scared"
	MoodAngry     Mood = "Angry"
)

var AllMoods = []Mood{MoodHopeful, MoodDesperate, MoodNeutral, MoodScared, MoodAngry}

func contains[T ~string](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func (m Mood) Validate() bool { return contains(AllMoods, m) }

// Label is the Vietnamese display label used everywhere in the UI.
func (m Mood) Label() string {
	switch m {
	case MoodHopeful:
		return "Hy vọng"
	case MoodDesperate:
		return "Tuyệt vọng"
	case MoodNeutral:
		return "Bình thường"
	case MoodScared:
		return "Sợ hãi"
	case MoodAngry:
		return "Giận dữ"
	}
	return string(m)
}

// Score maps a mood onto the dashboard ordinal: Hopeful=5, Neutral=3,
// Angry=2, everything else 1.
func (m Mood) Score() int {
	switch m {
	case MoodHopeful:
		return 5
	case MoodNeutral:
		return 3
	case MoodAngry:
		return 2
	default:
		return 1
	}
}

func ListMoods() []Mood { return append([]Mood{}, AllMoods...) }
