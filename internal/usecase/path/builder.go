package path

import (
	"sort"
	"strings"

	"github.com/eduwijs/querywise/internal/catalog"
	"github.com/eduwijs/querywise/internal/domain/course"
	"github.com/eduwijs/querywise/internal/domain/level"
	"github.com/eduwijs/querywise/internal/domain/profile"
)

// specializedCoverage is the minimum fraction of goal skills a course
// must cover to enter the specialized tier without a literal goal match.
const specializedCoverage = 0.6

// Builder assembles ordered learning paths toward a stated goal,
// spanning foundational, intermediate, and specialized tiers.
type Builder struct {
	idx *catalog.Index
}

// New creates a path builder over the catalog index.
func New(idx *catalog.Index) *Builder {
	return &Builder{idx: idx}
}

// Build assembles a learning path for the goal. Tiers are collected in
// order (foundational only for beginners), then the path is
// deduplicated by id (first occurrence wins), stripped of completed
// courses, and sorted ascending by level ordinal. A goal matching no
// taxonomy skills yields a short or empty path, never an error.
func (b *Builder) Build(goal string, ctx *profile.Context) []course.Course {
	tax := b.idx.Taxonomy()
	goalSkills := tax.ExtractSkills(goal)
	// CategoriesForSkills yields declaration order, keeping tier
	// assembly deterministic for a fixed catalog and goal.
	goalCategories := tax.CategoriesForSkills(goalSkills)

	var path []course.Course

	// Foundational tier: beginner courses in a goal category, only
	// when the learner is at Beginner level or below.
	if ctx.SkillLevel <= level.Beginner {
		for _, catID := range goalCategories {
			for _, c := range b.idx.InCategory(catID) {
				if c.Level() <= level.Beginner {
					path = append(path, c)
				}
			}
		}
	}

	// Intermediate tier: intermediate courses in a goal category whose
	// extracted skills overlap the goal's skills.
	for _, catID := range goalCategories {
		for _, c := range b.idx.InCategory(catID) {
			if c.Level() == level.Intermediate && b.overlapCount(c.ID(), goalSkills) > 0 {
				path = append(path, c)
			}
		}
	}

	// Specialized tier: a literal goal mention in the course text, or
	// coverage of enough of the goal's skills.
	lowerGoal := strings.ToLower(strings.TrimSpace(goal))
	for _, c := range b.idx.Courses() {
		if lowerGoal != "" {
			text := strings.ToLower(c.Title() + " " + c.Description())
			if strings.Contains(text, lowerGoal) {
				path = append(path, c)
				continue
			}
		}
		if len(goalSkills) > 0 {
			covered := b.overlapCount(c.ID(), goalSkills)
			if float64(covered)/float64(len(goalSkills)) >= specializedCoverage {
				path = append(path, c)
			}
		}
	}

	path = dedupe(path, ctx)

	sort.SliceStable(path, func(i, j int) bool {
		return path[i].Level() < path[j].Level()
	})
	return path
}

// overlapCount counts goal skills matched by a course's cached skills,
// using the same bidirectional substring test as the scoring engine.
func (b *Builder) overlapCount(courseID string, goalSkills []string) int {
	courseSkills := b.idx.SkillsOf(courseID)
	matched := 0
	for _, gs := range goalSkills {
		lg := strings.ToLower(gs)
		for _, cs := range courseSkills {
			lc := strings.ToLower(cs)
			if strings.Contains(lc, lg) || strings.Contains(lg, lc) {
				matched++
				break
			}
		}
	}
	return matched
}

// dedupe keeps the first occurrence of each id and drops courses the
// learner already completed.
func dedupe(path []course.Course, ctx *profile.Context) []course.Course {
	seen := make(map[string]bool, len(path))
	out := path[:0]
	for i := range path {
		id := path[i].ID()
		if seen[id] || ctx.HasCompleted(id) {
			continue
		}
		seen[id] = true
		out = append(out, path[i])
	}
	return out
}
