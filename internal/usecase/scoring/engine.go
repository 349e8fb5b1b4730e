package scoring

import (
	"sort"
	"strings"

	"github.com/eduwijs/querywise/internal/catalog"
	"github.com/eduwijs/querywise/internal/domain/course"
	"github.com/eduwijs/querywise/internal/domain/level"
	"github.com/eduwijs/querywise/internal/domain/profile"
)

// Weights caps the five scoring factors. The defaults add up to a
// maximum total of 115.
type Weights struct {
	SkillMax      float64 // skill-overlap cap
	LevelMax      float64 // exact level-fit score
	LevelStep     float64 // penalty per ordinal step of level mismatch
	InterestBonus float64 // flat bonus for an interest match
	TimeBonus     float64 // flat bonus for a duration within budget
	AffinityBonus float64 // flat bonus for category affinity with completed courses
}

// ApplyDefaults fills zero fields with the standard weights.
func (w *Weights) ApplyDefaults() {
	if w.SkillMax == 0 {
		w.SkillMax = 40
	}
	if w.LevelMax == 0 {
		w.LevelMax = 30
	}
	if w.LevelStep == 0 {
		w.LevelStep = 10
	}
	if w.InterestBonus == 0 {
		w.InterestBonus = 20
	}
	if w.TimeBonus == 0 {
		w.TimeBonus = 10
	}
	if w.AffinityBonus == 0 {
		w.AffinityBonus = 15
	}
}

// MaxScore returns the highest total Score can produce.
func (w *Weights) MaxScore() float64 {
	return w.SkillMax + w.LevelMax + w.InterestBonus + w.TimeBonus + w.AffinityBonus
}

// Engine computes relevance scores for (course, query, profile)
// triples over the catalog index. Pure and deterministic: same inputs,
// same score.
type Engine struct {
	idx *catalog.Index
	w   Weights
}

// New creates a scoring engine. Zero weight fields get defaults.
func New(idx *catalog.Index, w Weights) *Engine {
	w.ApplyDefaults()
	return &Engine{idx: idx, w: w}
}

// Score returns the summed factor scores for one course:
// skill overlap, level fit, interest fit, time fit, and the
// category-affinity bonus for previously completed courses.
func (e *Engine) Score(c *course.Course, querySkills []string, userLevel level.Level, ctx *profile.Context) float64 {
	total := e.skillOverlap(c, querySkills)
	total += e.levelFit(c.Level(), userLevel)
	total += e.interestFit(c, ctx.Interests)
	total += e.timeFit(c, ctx.TimeAvailability)
	total += e.categoryAffinity(c, ctx.CompletedCourses)
	return total
}

// Ranked is a scored course.
type Ranked struct {
	Course course.Course
	Score  float64
}

// Rank scores every catalog course against the query skills and
// profile, drops completed courses entirely, and sorts by descending
// score. The sort is stable, so equal scores keep catalog order.
func (e *Engine) Rank(querySkills []string, ctx *profile.Context) []Ranked {
	userLevel := ctx.SkillLevel

	courses := e.idx.Courses()
	ranked := make([]Ranked, 0, len(courses))
	for i := range courses {
		c := &courses[i]
		if ctx.HasCompleted(c.ID()) {
			continue
		}
		ranked = append(ranked, Ranked{Course: courses[i], Score: e.Score(c, querySkills, userLevel, ctx)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// skillOverlap scores the fraction of query skills matched by the
// course's cached skill set. A query skill matches a course skill when
// either is a case-insensitive substring of the other.
func (e *Engine) skillOverlap(c *course.Course, querySkills []string) float64 {
	if len(querySkills) == 0 {
		return 0
	}
	courseSkills := e.idx.SkillsOf(c.ID())
	matched := 0
	for _, qs := range querySkills {
		if matchesAny(qs, courseSkills) {
			matched++
		}
	}
	return float64(matched) / float64(len(querySkills)) * e.w.SkillMax
}

// levelFit scores level proximity: full marks for an exact match,
// LevelStep off per ordinal of distance, floored at zero.
func (e *Engine) levelFit(courseLevel, userLevel level.Level) float64 {
	fit := e.w.LevelMax - float64(courseLevel.Distance(userLevel))*e.w.LevelStep
	if fit < 0 {
		return 0
	}
	return fit
}

// interestFit grants a flat bonus when any declared interest occurs in
// the course title or description.
func (e *Engine) interestFit(c *course.Course, interests []string) float64 {
	if len(interests) == 0 {
		return 0
	}
	haystack := strings.ToLower(c.Title() + " " + c.Description())
	for _, interest := range interests {
		needle := strings.ToLower(strings.TrimSpace(interest))
		if needle != "" && strings.Contains(haystack, needle) {
			return e.w.InterestBonus
		}
	}
	return 0
}

// timeFit grants a flat bonus when the estimated course duration fits
// the learner's availability bucket.
func (e *Engine) timeFit(c *course.Course, avail profile.TimeAvailability) float64 {
	maxHours := avail.MaxHours()
	if maxHours == 0 || c.EstimatedHours() <= maxHours {
		return e.w.TimeBonus
	}
	return 0
}

// categoryAffinity grants a flat bonus when the course shares a
// taxonomy category with any completed course, or when the categories
// are listed as related.
func (e *Engine) categoryAffinity(c *course.Course, completed []string) float64 {
	if len(completed) == 0 {
		return 0
	}
	tax := e.idx.Taxonomy()
	for _, cat := range e.idx.CategoriesOf(c.ID()) {
		for _, doneID := range completed {
			for _, doneCat := range e.idx.CategoriesOf(doneID) {
				if tax.AreAffine(cat, doneCat) {
					return e.w.AffinityBonus
				}
			}
		}
	}
	return 0
}

// matchesAny tests bidirectional case-insensitive substring containment
// against a skill list.
func matchesAny(skill string, skills []string) bool {
	ls := strings.ToLower(skill)
	for _, other := range skills {
		lo := strings.ToLower(other)
		if strings.Contains(lo, ls) || strings.Contains(ls, lo) {
			return true
		}
	}
	return false
}
