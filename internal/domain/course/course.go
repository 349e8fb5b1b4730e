package course

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/eduwijs/querywise/internal/domain/level"
)

// DefaultHours is the estimated duration when the duration text matches
// no known phrasing. Known precision gap: any unrecognized phrasing lands
// here and feeds the time-fit score.
const DefaultHours = 10

// HoursPerWeek converts week-denominated durations to hours.
const HoursPerWeek = 5

var (
	hoursRegex = regexp.MustCompile(`(?i)(\d+)\s*(?:uur|hours?)`)
	weeksRegex = regexp.MustCompile(`(?i)(\d+)\s*(?:weken|weeks?)`)
)

// Lesson is a single unit of course content (immutable value object).
type Lesson struct {
	id    string
	title string
	body  string
}

// NewLesson creates a lesson.
func NewLesson(id, title, body string) Lesson {
	return Lesson{id: id, title: title, body: body}
}

// ID returns the lesson identifier.
func (l *Lesson) ID() string { return l.id }

// Title returns the lesson title.
func (l *Lesson) Title() string { return l.title }

// Body returns the lesson body text.
func (l *Lesson) Body() string { return l.body }

// Module is an ordered group of lessons within a course.
type Module struct {
	id      string
	title   string
	lessons []Lesson
}

// NewModule creates a module.
func NewModule(id, title string, lessons []Lesson) Module {
	return Module{id: id, title: title, lessons: lessons}
}

// ID returns the module identifier.
func (m *Module) ID() string { return m.id }

// Title returns the module title.
func (m *Module) Title() string { return m.title }

// Lessons returns the ordered lessons.
func (m *Module) Lessons() []Lesson { return m.lessons }

// Course is a catalog course record (immutable value object).
// The engine never mutates courses; the catalog owns their content.
type Course struct {
	id        string
	title     string
	desc      string
	shortDesc string
	tags      []string
	lvl       level.Level
	duration  string
	price     float64
	modules   []Module
}

// New validates and creates a Course. ID and title are required; the
// difficulty label maps to an ordinal, defaulting to Intermediate when
// unknown.
func New(
	id, title, desc, shortDesc string,
	tags []string, levelLabel, duration string,
	price float64, modules []Module,
) (Course, error) {
	if id == "" {
		return Course{}, fmt.Errorf("course ID is required")
	}
	if title == "" {
		return Course{}, fmt.Errorf("course title is required")
	}
	if price < 0 {
		return Course{}, fmt.Errorf("course price must not be negative")
	}
	return Course{
		id:        id,
		title:     title,
		desc:      desc,
		shortDesc: shortDesc,
		tags:      tags,
		lvl:       level.ParseCourse(levelLabel),
		duration:  duration,
		price:     price,
		modules:   modules,
	}, nil
}

// Reconstruct creates a Course without validation (catalog hydration).
func Reconstruct(
	id, title, desc, shortDesc string,
	tags []string, lvl level.Level, duration string,
	price float64, modules []Module,
) Course {
	return Course{
		id: id, title: title, desc: desc, shortDesc: shortDesc,
		tags: tags, lvl: lvl, duration: duration, price: price, modules: modules,
	}
}

// ID returns the course identifier.
func (c *Course) ID() string { return c.id }

// Title returns the course title.
func (c *Course) Title() string { return c.title }

// Description returns the long description.
func (c *Course) Description() string { return c.desc }

// ShortDescription returns the short description.
func (c *Course) ShortDescription() string { return c.shortDesc }

// Tags returns the free-text labels.
func (c *Course) Tags() []string { return c.tags }

// Level returns the difficulty ordinal.
func (c *Course) Level() level.Level { return c.lvl }

// Duration returns the raw duration text.
func (c *Course) Duration() string { return c.duration }

// Price returns the course price.
func (c *Course) Price() float64 { return c.price }

// Modules returns the ordered course modules.
func (c *Course) Modules() []Module { return c.modules }

// EstimatedHours parses the duration text into hours. Recognized
// phrasings: "<N> uur"/"<N> hour(s)" taken literally and
// "<N> weken"/"<N> week(s)" at HoursPerWeek. Anything else falls back
// to DefaultHours rather than erroring.
func (c *Course) EstimatedHours() int {
	return EstimateHours(c.duration)
}

// SearchText returns the text fields used for skill extraction:
// title, descriptions, and tags joined into one lowercase-agnostic blob.
func (c *Course) SearchText() string {
	parts := []string{c.title, c.desc, c.shortDesc}
	parts = append(parts, c.tags...)
	return strings.Join(parts, " ")
}

// EstimateHours parses a free-text duration into estimated hours.
func EstimateHours(duration string) int {
	if m := hoursRegex.FindStringSubmatch(duration); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	if m := weeksRegex.FindStringSubmatch(duration); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n * HoursPerWeek
		}
	}
	return DefaultHours
}
