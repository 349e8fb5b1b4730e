package catalog

import (
	"fmt"

	"github.com/eduwijs/querywise/internal/domain"
	"github.com/eduwijs/querywise/internal/domain/course"
	"github.com/eduwijs/querywise/internal/domain/taxonomy"
)

// Index is an immutable, read-only view of the course catalog,
// pre-processed once at construction. Per-course skill sets and
// category memberships are cached during the build; after New returns
// the index is never written again, so concurrent readers need no
// locking.
type Index struct {
	tax        taxonomy.Taxonomy
	courses    []course.Course
	byID       map[string]int
	skills     map[string][]string
	categories map[string][]string
	byCategory map[string][]int
}

// New builds a catalog index over caller-supplied courses. Catalog
// order is preserved as the canonical iteration order and serves as the
// stable tie-break for equal scores. Duplicate ids are rejected.
func New(courses []course.Course, tax taxonomy.Taxonomy) (*Index, error) {
	idx := &Index{
		tax:        tax,
		courses:    courses,
		byID:       make(map[string]int, len(courses)),
		skills:     make(map[string][]string, len(courses)),
		categories: make(map[string][]string, len(courses)),
		byCategory: make(map[string][]int),
	}
	for i := range courses {
		c := &courses[i]
		if _, ok := idx.byID[c.ID()]; ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateCourse, c.ID())
		}
		idx.byID[c.ID()] = i

		skills := tax.ExtractSkills(c.SearchText())
		idx.skills[c.ID()] = skills

		cats := tax.CategoriesForSkills(skills)
		idx.categories[c.ID()] = cats
		for _, cat := range cats {
			idx.byCategory[cat] = append(idx.byCategory[cat], i)
		}
	}
	return idx, nil
}

// Len returns the number of courses.
func (idx *Index) Len() int { return len(idx.courses) }

// Taxonomy returns the skill taxonomy the index was built with.
func (idx *Index) Taxonomy() *taxonomy.Taxonomy { return &idx.tax }

// Courses returns all courses in catalog order. Callers must not
// mutate the returned slice.
func (idx *Index) Courses() []course.Course { return idx.courses }

// Course looks up a course by id.
func (idx *Index) Course(id string) (course.Course, bool) {
	i, ok := idx.byID[id]
	if !ok {
		return course.Course{}, false
	}
	return idx.courses[i], true
}

// SkillsOf returns the cached skill set extracted from a course's
// title, descriptions, and tags.
func (idx *Index) SkillsOf(id string) []string { return idx.skills[id] }

// CategoriesOf returns the cached taxonomy categories a course belongs to.
func (idx *Index) CategoriesOf(id string) []string { return idx.categories[id] }

// InCategory returns the courses belonging to a category, in catalog order.
func (idx *Index) InCategory(categoryID string) []course.Course {
	positions := idx.byCategory[categoryID]
	out := make([]course.Course, len(positions))
	for i, p := range positions {
		out[i] = idx.courses[p]
	}
	return out
}
