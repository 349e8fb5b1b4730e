package query

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eduwijs/querywise/internal/catalog"
	"github.com/eduwijs/querywise/internal/domain"
	"github.com/eduwijs/querywise/internal/domain/course"
	"github.com/eduwijs/querywise/internal/domain/intent"
	"github.com/eduwijs/querywise/internal/domain/profile"
	"github.com/eduwijs/querywise/internal/domain/query/result"
	"github.com/eduwijs/querywise/internal/logger"
	"github.com/eduwijs/querywise/internal/metrics"
	"github.com/eduwijs/querywise/internal/respond"
	"github.com/eduwijs/querywise/internal/usecase/classify"
	"github.com/eduwijs/querywise/internal/usecase/contentsearch"
	"github.com/eduwijs/querywise/internal/usecase/path"
	"github.com/eduwijs/querywise/internal/usecase/scoring"
)

// Limits bound the size of handler output lists.
type Limits struct {
	MaxSuggestions int
	MaxRelated     int
}

// ApplyDefaults fills zero limits.
func (l *Limits) ApplyDefaults() {
	if l.MaxSuggestions <= 0 {
		l.MaxSuggestions = 3
	}
	if l.MaxRelated <= 0 {
		l.MaxRelated = contentsearch.DefaultLimit
	}
}

// Service orchestrates one query: detect language, classify intent,
// dispatch to the intent's handler, format the result. Every call is a
// pure synchronous computation over the immutable catalog snapshot, so
// concurrent callers need no coordination.
type Service struct {
	idx        *catalog.Index
	classifier *classify.Classifier
	scorer     *scoring.Engine
	paths      *path.Builder
	content    *contentsearch.Searcher
	format     *respond.Formatter
	limits     Limits
}

// New creates a query service.
func New(
	idx *catalog.Index,
	classifier *classify.Classifier,
	scorer *scoring.Engine,
	paths *path.Builder,
	content *contentsearch.Searcher,
	format *respond.Formatter,
	limits Limits,
) *Service {
	limits.ApplyDefaults()
	return &Service{
		idx:        idx,
		classifier: classifier,
		scorer:     scorer,
		paths:      paths,
		content:    content,
		format:     format,
		limits:     limits,
	}
}

// Handle answers a single learner query. Sparse input degrades to
// defaults: a nil-equivalent profile, an unmatched intent, or a query
// without recognizable skills all produce a valid (if generic) result.
// The only error is an empty query, which is a caller contract
// violation at the transport boundary.
func (s *Service) Handle(ctx context.Context, rawQuery string, prof profile.Context) (result.Result, error) {
	if strings.TrimSpace(rawQuery) == "" {
		return result.Result{}, domain.ErrEmptyQuery
	}

	lang := prof.PreferredLanguage
	if !lang.IsValid() {
		lang = profile.DetectLanguage(rawQuery)
	}

	in, confidence := s.classifier.Classify(rawQuery)
	metrics.ObserveQuery(string(in), string(lang))

	res := s.dispatch(rawQuery, in, confidence, lang, &prof)

	logger.FromContext(ctx).Debug("query handled",
		zap.String("query_id", res.ID()),
		zap.String("intent", string(in)),
		zap.Float64("confidence", confidence),
		zap.String("language", string(lang)),
		zap.Int("suggested", len(res.SuggestedCourses())),
	)
	return res, nil
}

// Inspect classifies a query without dispatching a handler. Serves the
// debug endpoint; production traffic goes through Handle.
func (s *Service) Inspect(rawQuery string) (intent.Intent, float64, profile.Language) {
	in, confidence := s.classifier.Classify(rawQuery)
	return in, confidence, profile.DetectLanguage(rawQuery)
}

func (s *Service) dispatch(
	rawQuery string, in intent.Intent, confidence float64,
	lang profile.Language, prof *profile.Context,
) result.Result {
	switch in {
	case intent.CourseSelection:
		return s.handleCourseSelection(rawQuery, in, confidence, lang, prof)
	case intent.LearningPath:
		return s.handleLearningPath(rawQuery, in, confidence, lang, prof)
	case intent.ContentQuestion:
		return s.handleContentQuestion(rawQuery, in, confidence, lang)
	case intent.SkillMatching:
		return s.handleSkillMatching(rawQuery, in, confidence, lang, prof)
	case intent.Pricing:
		return s.handlePricing(in, confidence, lang, prof)
	case intent.CourseComparison:
		return s.handleComparison(rawQuery, in, confidence, lang, prof)
	case intent.TechnicalHelp:
		return s.handleTechnicalHelp(in, confidence, lang)
	default:
		return s.handleGeneralInfo(in, confidence, lang)
	}
}

func (s *Service) handleCourseSelection(
	rawQuery string, in intent.Intent, confidence float64,
	lang profile.Language, prof *profile.Context,
) result.Result {
	skills := s.idx.Taxonomy().ExtractSkills(rawQuery)
	suggested := s.topCourses(skills, prof, s.limits.MaxSuggestions)
	return result.New(
		uuid.NewString(), in, confidence, lang,
		s.format.CourseSelection(lang, suggested),
		suggested, nil,
		s.format.FollowUps(in, lang),
		s.format.CourseLinks(lang, suggested),
	)
}

func (s *Service) handleLearningPath(
	rawQuery string, in intent.Intent, confidence float64,
	lang profile.Language, prof *profile.Context,
) result.Result {
	goal := prof.Goal()
	if goal == "" {
		goal = rawQuery
	}
	courses := s.paths.Build(goal, prof)
	metrics.ObservePathLength(len(courses))
	return result.New(
		uuid.NewString(), in, confidence, lang,
		s.format.LearningPath(lang, prof.Goal(), courses),
		courses, nil,
		s.format.FollowUps(in, lang),
		s.format.CourseLinks(lang, courses),
	)
}

func (s *Service) handleContentQuestion(
	rawQuery string, in intent.Intent, confidence float64, lang profile.Language,
) result.Result {
	refs := s.content.Search(rawQuery, s.limits.MaxRelated)
	return result.New(
		uuid.NewString(), in, confidence, lang,
		s.format.ContentQuestion(lang, refs),
		nil, refs,
		s.format.FollowUps(in, lang),
		s.format.LessonLinks(lang, refs),
	)
}

func (s *Service) handleSkillMatching(
	rawQuery string, in intent.Intent, confidence float64,
	lang profile.Language, prof *profile.Context,
) result.Result {
	// Profile text widens the extraction beyond the query itself.
	text := rawQuery + " " + strings.Join(prof.Interests, " ") +
		" " + strings.Join(prof.LearningGoals, " ") + " " + prof.Industry
	skills := s.idx.Taxonomy().ExtractSkills(text)
	suggested := s.topCourses(skills, prof, s.limits.MaxSuggestions)
	return result.New(
		uuid.NewString(), in, confidence, lang,
		s.format.SkillMatching(lang, suggested),
		suggested, nil,
		s.format.FollowUps(in, lang),
		s.format.CourseLinks(lang, suggested),
	)
}

func (s *Service) handlePricing(
	in intent.Intent, confidence float64, lang profile.Language, prof *profile.Context,
) result.Result {
	courses := s.notCompleted(prof)
	return result.New(
		uuid.NewString(), in, confidence, lang,
		s.format.Pricing(lang, courses),
		nil, nil,
		s.format.FollowUps(in, lang),
		s.format.CourseLinks(lang, courses),
	)
}

func (s *Service) handleComparison(
	rawQuery string, in intent.Intent, confidence float64,
	lang profile.Language, prof *profile.Context,
) result.Result {
	skills := s.idx.Taxonomy().ExtractSkills(rawQuery)
	// Two candidates minimum for a side-by-side, even when only one
	// scores well.
	limit := s.limits.MaxSuggestions
	if limit < 2 {
		limit = 2
	}
	suggested := s.topCourses(skills, prof, limit)
	return result.New(
		uuid.NewString(), in, confidence, lang,
		s.format.Comparison(lang, suggested),
		suggested, nil,
		s.format.FollowUps(in, lang),
		s.format.CourseLinks(lang, suggested),
	)
}

func (s *Service) handleTechnicalHelp(
	in intent.Intent, confidence float64, lang profile.Language,
) result.Result {
	return result.New(
		uuid.NewString(), in, confidence, lang,
		s.format.TechnicalHelp(lang),
		nil, nil,
		s.format.FollowUps(in, lang),
		[]result.ActionLink{s.format.SupportLink(lang)},
	)
}

func (s *Service) handleGeneralInfo(
	in intent.Intent, confidence float64, lang profile.Language,
) result.Result {
	return result.New(
		uuid.NewString(), in, confidence, lang,
		s.format.GeneralInfo(lang, s.idx.Len()),
		nil, nil,
		s.format.FollowUps(in, lang),
		nil,
	)
}

// topCourses ranks the catalog and keeps the best n.
func (s *Service) topCourses(skills []string, prof *profile.Context, n int) []course.Course {
	ranked := s.scorer.Rank(skills, prof)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	metrics.ObserveSuggestions(len(ranked))
	out := make([]course.Course, len(ranked))
	for i, r := range ranked {
		out[i] = r.Course
	}
	return out
}

// notCompleted returns the catalog minus completed courses, in order.
func (s *Service) notCompleted(prof *profile.Context) []course.Course {
	var out []course.Course
	for _, c := range s.idx.Courses() {
		if !prof.HasCompleted(c.ID()) {
			out = append(out, c)
		}
	}
	return out
}
