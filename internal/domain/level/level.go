package level

import "strings"

// Level is a difficulty ordinal used for both course difficulty and
// learner skill level. Ordinal distance between two levels drives the
// level-fit score, so the values must stay contiguous.
type Level int

// Difficulty ordinals, easiest first.
const (
	AbsoluteBeginner Level = iota
	Beginner
	Intermediate
	Advanced
	Expert
)

// String returns the canonical English label.
func (l Level) String() string {
	switch l {
	case AbsoluteBeginner:
		return "absolute_beginner"
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Advanced:
		return "advanced"
	case Expert:
		return "expert"
	default:
		return "unknown"
	}
}

// IsValid checks that the ordinal is within the known range.
func (l Level) IsValid() bool {
	return l >= AbsoluteBeginner && l <= Expert
}

// Distance returns the absolute ordinal difference between two levels.
func (l Level) Distance(other Level) int {
	d := int(l) - int(other)
	if d < 0 {
		d = -d
	}
	return d
}

// labels maps known Dutch and English difficulty labels to ordinals.
var labels = map[string]Level{
	"absolute_beginner": AbsoluteBeginner,
	"absolute beginner": AbsoluteBeginner,
	"starter":           AbsoluteBeginner,
	"beginner":          Beginner,
	"beginners":         Beginner,
	"basis":             Beginner,
	"intermediate":      Intermediate,
	"gemiddeld":         Intermediate,
	"advanced":          Advanced,
	"gevorderd":         Advanced,
	"expert":            Expert,
}

// ParseCourse maps a course difficulty label to its ordinal.
// Unknown labels default to Intermediate.
func ParseCourse(label string) Level {
	if l, ok := labels[normalize(label)]; ok {
		return l
	}
	return Intermediate
}

// ParseUser maps a learner skill-level label to its ordinal.
// Unknown or missing labels default to AbsoluteBeginner, the most
// permissive assumption for recommendations.
func ParseUser(label string) Level {
	if l, ok := labels[normalize(label)]; ok {
		return l
	}
	return AbsoluteBeginner
}

func normalize(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
