package contentsearch

import (
	"sort"
	"strings"

	"github.com/eduwijs/querywise/internal/catalog"
	"github.com/eduwijs/querywise/internal/domain/course"
	"github.com/eduwijs/querywise/internal/domain/query/result"
)

// DefaultLimit caps the related-content list per query.
const DefaultLimit = 5

// minTermLength filters out articles and glue words from query terms.
const minTermLength = 4

// Searcher scans lesson titles and bodies for query terms and returns
// lesson references with a relevance score in (0, 1].
type Searcher struct {
	idx *catalog.Index
}

// New creates a content searcher over the catalog index.
func New(idx *catalog.Index) *Searcher {
	return &Searcher{idx: idx}
}

// Search returns up to limit lesson references ordered by descending
// relevance. Relevance is the fraction of significant query terms
// found in the lesson, with title hits counted double; only lessons
// with at least one hit are returned, so scores stay in (0, 1].
func (s *Searcher) Search(query string, limit int) []result.ContentRef {
	if limit <= 0 {
		limit = DefaultLimit
	}
	terms := significantTerms(query)
	if len(terms) == 0 {
		return nil
	}

	var refs []result.ContentRef
	for _, c := range s.idx.Courses() {
		for _, m := range c.Modules() {
			for _, l := range m.Lessons() {
				relevance := lessonRelevance(&l, terms)
				if relevance > 0 {
					refs = append(refs, result.ContentRef{
						CourseID:  c.ID(),
						ModuleID:  m.ID(),
						LessonID:  l.ID(),
						Relevance: relevance,
					})
				}
			}
		}
	}

	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].Relevance > refs[j].Relevance
	})
	if len(refs) > limit {
		refs = refs[:limit]
	}
	return refs
}

// lessonRelevance scores one lesson against the query terms. A term in
// the title weighs twice a term in the body; the result is normalized
// to (0, 1].
func lessonRelevance(l *course.Lesson, terms []string) float64 {
	title := strings.ToLower(l.Title())
	body := strings.ToLower(l.Body())

	score := 0.0
	for _, term := range terms {
		switch {
		case strings.Contains(title, term):
			score += 2
		case strings.Contains(body, term):
			score++
		}
	}
	denom := float64(2 * len(terms))
	if score > denom {
		score = denom
	}
	return score / denom
}

// significantTerms splits the query into lowercase terms long enough to
// carry meaning, deduplicated.
func significantTerms(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	seen := make(map[string]bool, len(fields))
	var terms []string
	for _, f := range fields {
		term := strings.Trim(f, ".,!?;:'\"()")
		if len(term) < minTermLength || seen[term] {
			continue
		}
		seen[term] = true
		terms = append(terms, term)
	}
	return terms
}
