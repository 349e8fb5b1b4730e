package profile

import (
	"strings"

	"github.com/eduwijs/querywise/internal/domain/level"
)

// Language is the learner-facing response language.
type Language string

// Supported languages.
const (
	Dutch   Language = "nl"
	English Language = "en"
)

// IsValid checks if the language is supported.
func (l Language) IsValid() bool {
	return l == Dutch || l == English
}

// TimeAvailability buckets how many hours a learner can spend.
type TimeAvailability string

// Availability buckets.
const (
	TimeLow    TimeAvailability = "low"
	TimeMedium TimeAvailability = "medium"
	TimeHigh   TimeAvailability = "high"
)

// MaxHours returns the bucket's course-duration ceiling in hours.
// Zero means unconstrained; an empty bucket is treated as high.
func (t TimeAvailability) MaxHours() int {
	switch t {
	case TimeLow:
		return 10
	case TimeMedium:
		return 20
	default:
		return 0
	}
}

// Context is the session-scoped learner profile supplied by the caller
// on every query. The engine never persists it. The zero value is a
// valid, fully neutral profile: every absent field degrades to a
// permissive default.
type Context struct {
	PreferredLanguage Language
	SkillLevel        level.Level
	Interests         []string
	CompletedCourses  []string
	LearningGoals     []string
	TimeAvailability  TimeAvailability
	Industry          string
}

// HasCompleted reports whether the learner already finished the course.
func (c *Context) HasCompleted(courseID string) bool {
	for _, id := range c.CompletedCourses {
		if id == courseID {
			return true
		}
	}
	return false
}

// Goal returns the first declared learning goal, or empty.
func (c *Context) Goal() string {
	if len(c.LearningGoals) == 0 {
		return ""
	}
	return c.LearningGoals[0]
}

// dutchKeywords trigger Dutch language detection. The list is a
// heuristic and lives in one place so the threshold policy can change
// without touching call sites.
var dutchKeywords = []string{
	"cursus", "welke", "hoeveel", "kost", "leren", "beste",
	"voor", "een", "het", "wat", "hoe", "waarom", "kan", "ik",
	"niet", "graag", "uur", "weken",
}

// dutchThreshold is the minimum keyword hits for a Dutch verdict.
const dutchThreshold = 2

// DetectLanguage classifies a raw query as Dutch when at least two
// Dutch keywords occur as words, English otherwise. Known to
// misclassify short or keyword-sparse queries.
func DetectLanguage(raw string) Language {
	words := strings.Fields(strings.ToLower(raw))
	if len(words) == 0 {
		return English
	}
	present := make(map[string]bool, len(words))
	for _, w := range words {
		present[strings.Trim(w, ".,!?;:'\"()")] = true
	}
	hits := 0
	for _, kw := range dutchKeywords {
		if present[kw] {
			hits++
			if hits >= dutchThreshold {
				return Dutch
			}
		}
	}
	return English
}
