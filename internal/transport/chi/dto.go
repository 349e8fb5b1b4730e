package chi

import (
	"github.com/eduwijs/querywise/internal/domain/course"
	"github.com/eduwijs/querywise/internal/domain/level"
	"github.com/eduwijs/querywise/internal/domain/profile"
	"github.com/eduwijs/querywise/internal/domain/query/result"
)

// queryRequest is the POST /v1/query body.
type queryRequest struct {
	Query   string     `json:"query"`
	Context contextDTO `json:"context"`
}

// contextDTO mirrors the caller-supplied learner profile. Every field
// is optional; unknown enum strings degrade to neutral defaults.
type contextDTO struct {
	PreferredLanguage string   `json:"preferredLanguage"`
	CurrentSkillLevel string   `json:"currentSkillLevel"`
	Interests         []string `json:"interests"`
	CompletedCourses  []string `json:"completedCourses"`
	LearningGoals     []string `json:"learningGoals"`
	TimeAvailability  string   `json:"timeAvailability"`
	Industry          string   `json:"industry"`
}

func (d *contextDTO) toDomain() profile.Context {
	lang := profile.Language(d.PreferredLanguage)
	if !lang.IsValid() {
		lang = "" // resolved by detection
	}
	return profile.Context{
		PreferredLanguage: lang,
		SkillLevel:        level.ParseUser(d.CurrentSkillLevel),
		Interests:         d.Interests,
		CompletedCourses:  d.CompletedCourses,
		LearningGoals:     d.LearningGoals,
		TimeAvailability:  profile.TimeAvailability(d.TimeAvailability),
		Industry:          d.Industry,
	}
}

// intentResponse is the GET /v1/intents debug envelope.
type intentResponse struct {
	Query      string  `json:"query"`
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Language   string  `json:"language"`
}

// errorResponse is the error envelope.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// courseResponse is the course JSON shape.
type courseResponse struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	Level            string   `json:"level"`
	Duration         string   `json:"duration,omitempty"`
	EstimatedHours   int      `json:"estimatedHours"`
	Price            float64  `json:"price"`
}

type courseListResponse struct {
	Items []courseResponse `json:"items"`
	Total int              `json:"total"`
}

func courseToResponse(c *course.Course) courseResponse {
	return courseResponse{
		ID:               c.ID(),
		Title:            c.Title(),
		ShortDescription: c.ShortDescription(),
		Tags:             c.Tags(),
		Level:            c.Level().String(),
		Duration:         c.Duration(),
		EstimatedHours:   c.EstimatedHours(),
		Price:            c.Price(),
	}
}

// contentRefResponse is a related-lesson reference.
type contentRefResponse struct {
	CourseID  string  `json:"courseId"`
	ModuleID  string  `json:"moduleId"`
	LessonID  string  `json:"lessonId"`
	Relevance float64 `json:"relevance"`
}

// actionLinkResponse is a call-to-action link.
type actionLinkResponse struct {
	Text string `json:"text"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// queryResponse is the POST /v1/query response envelope.
type queryResponse struct {
	ID                string               `json:"id"`
	Intent            string               `json:"intent"`
	Confidence        float64              `json:"confidence"`
	Language          string               `json:"language"`
	Response          string               `json:"response"`
	SuggestedCourses  []courseResponse     `json:"suggestedCourses"`
	RelatedContent    []contentRefResponse `json:"relatedContent"`
	FollowUpQuestions []string             `json:"followUpQuestions"`
	ActionLinks       []actionLinkResponse `json:"actionLinks"`
}

func resultToResponse(r *result.Result) queryResponse {
	suggested := r.SuggestedCourses()
	courses := make([]courseResponse, len(suggested))
	for i := range suggested {
		courses[i] = courseToResponse(&suggested[i])
	}

	refs := make([]contentRefResponse, len(r.RelatedContent()))
	for i, ref := range r.RelatedContent() {
		refs[i] = contentRefResponse{
			CourseID:  ref.CourseID,
			ModuleID:  ref.ModuleID,
			LessonID:  ref.LessonID,
			Relevance: ref.Relevance,
		}
	}

	links := make([]actionLinkResponse, len(r.ActionLinks()))
	for i, l := range r.ActionLinks() {
		links[i] = actionLinkResponse{Text: l.Text, URL: l.URL, Type: string(l.Type)}
	}

	return queryResponse{
		ID:                r.ID(),
		Intent:            string(r.Intent()),
		Confidence:        r.Confidence(),
		Language:          string(r.Language()),
		Response:          r.Response(),
		SuggestedCourses:  courses,
		RelatedContent:    refs,
		FollowUpQuestions: r.FollowUpQuestions(),
		ActionLinks:       links,
	}
}
