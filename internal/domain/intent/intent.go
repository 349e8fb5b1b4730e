package intent

// Intent is the classified purpose of a learner query. The set is flat:
// classification is one-shot, there are no transitions between intents.
type Intent string

// Known intents. GeneralInfo is the fallback when no pattern matches.
const (
	CourseSelection  Intent = "course_selection"
	LearningPath     Intent = "learning_path"
	ContentQuestion  Intent = "content_question"
	SkillMatching    Intent = "skill_matching"
	Pricing          Intent = "pricing"
	CourseComparison Intent = "course_comparison"
	TechnicalHelp    Intent = "technical_help"
	GeneralInfo      Intent = "general_info"
)

// IsValid checks if the intent is one of the known values.
func (i Intent) IsValid() bool {
	switch i {
	case CourseSelection, LearningPath, ContentQuestion, SkillMatching,
		Pricing, CourseComparison, TechnicalHelp, GeneralInfo:
		return true
	}
	return false
}
