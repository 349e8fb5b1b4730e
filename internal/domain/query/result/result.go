package result

import (
	"github.com/eduwijs/querywise/internal/domain/course"
	"github.com/eduwijs/querywise/internal/domain/intent"
	"github.com/eduwijs/querywise/internal/domain/profile"
)

// LinkType classifies an action link target.
type LinkType string

// Link target kinds.
const (
	LinkCourse   LinkType = "course"
	LinkLesson   LinkType = "lesson"
	LinkExternal LinkType = "external"
)

// ActionLink is a caller-renderable call to action.
type ActionLink struct {
	Text string
	URL  string
	Type LinkType
}

// ContentRef points at a lesson with a relevance score in (0, 1].
type ContentRef struct {
	CourseID  string
	ModuleID  string
	LessonID  string
	Relevance float64
}

// Result is the answer to a single query, constructed fresh per call
// and never stored by the engine.
type Result struct {
	id          string
	queryIntent intent.Intent
	confidence  float64
	language    profile.Language
	response    string
	suggested   []course.Course
	related     []ContentRef
	followUps   []string
	links       []ActionLink
}

// New creates a query result. Confidence is clamped to [0, 1].
func New(
	id string,
	in intent.Intent,
	confidence float64,
	lang profile.Language,
	response string,
	suggested []course.Course,
	related []ContentRef,
	followUps []string,
	links []ActionLink,
) Result {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return Result{
		id:          id,
		queryIntent: in,
		confidence:  confidence,
		language:    lang,
		response:    response,
		suggested:   suggested,
		related:     related,
		followUps:   followUps,
		links:       links,
	}
}

// ID returns the per-query identifier.
func (r *Result) ID() string { return r.id }

// Intent returns the classified intent.
func (r *Result) Intent() intent.Intent { return r.queryIntent }

// Confidence returns the handler-assigned confidence in [0, 1].
func (r *Result) Confidence() float64 { return r.confidence }

// Language returns the resolved response language.
func (r *Result) Language() profile.Language { return r.language }

// Response returns the formatted response text.
func (r *Result) Response() string { return r.response }

// SuggestedCourses returns the ranked course list.
func (r *Result) SuggestedCourses() []course.Course { return r.suggested }

// RelatedContent returns lesson references from content search.
func (r *Result) RelatedContent() []ContentRef { return r.related }

// FollowUpQuestions returns the clarifying questions for this intent.
func (r *Result) FollowUpQuestions() []string { return r.followUps }

// ActionLinks returns the call-to-action links.
func (r *Result) ActionLinks() []ActionLink { return r.links }
