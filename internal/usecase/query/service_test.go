package query

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/eduwijs/querywise/internal/catalog"
	"github.com/eduwijs/querywise/internal/domain"
	"github.com/eduwijs/querywise/internal/domain/course"
	"github.com/eduwijs/querywise/internal/domain/intent"
	"github.com/eduwijs/querywise/internal/domain/profile"
	"github.com/eduwijs/querywise/internal/domain/query/result"
	"github.com/eduwijs/querywise/internal/domain/taxonomy"
	"github.com/eduwijs/querywise/internal/respond"
	"github.com/eduwijs/querywise/internal/usecase/classify"
	"github.com/eduwijs/querywise/internal/usecase/contentsearch"
	"github.com/eduwijs/querywise/internal/usecase/path"
	"github.com/eduwijs/querywise/internal/usecase/scoring"
)

func testService(t *testing.T) *Service {
	t.Helper()

	mustCourse := func(id, title, desc, levelLabel, duration string, price float64, modules []course.Module) course.Course {
		c, err := course.New(id, title, desc, "", nil, levelLabel, duration, price, modules)
		if err != nil {
			t.Fatalf("course.New(%s): %v", id, err)
		}
		return c
	}

	courses := []course.Course{
		mustCourse("ai-basics", "AI Basics", "Leer de basis van machine learning en generative ai", "beginner", "6 uur", 149, nil),
		mustCourse("prompt-basics", "Prompt Engineering Basis", "Schrijf betere prompts voor ChatGPT", "beginner", "4 uur", 99, nil),
		mustCourse("rag-advanced", "RAG in de praktijk", "Bouw een kennisbank met embeddings en een vector database", "advanced", "3 weken", 499,
			[]course.Module{
				course.NewModule("m1", "Retrieval", []course.Lesson{
					course.NewLesson("l1", "What is retrieval augmented generation", "RAG combines retrieval with generation"),
				}),
			}),
	}

	idx, err := catalog.New(courses, taxonomy.Default())
	if err != nil {
		t.Fatal(err)
	}
	return New(
		idx,
		classify.New(),
		scoring.New(idx, scoring.Weights{}),
		path.New(idx),
		contentsearch.New(idx),
		respond.New("https://academy.example.nl"),
		Limits{},
	)
}

func TestHandle_EmptyQuery(t *testing.T) {
	s := testService(t)
	_, err := s.Handle(context.Background(), "   ", profile.Context{})
	if !errors.Is(err, domain.ErrEmptyQuery) {
		t.Fatalf("got %v, want ErrEmptyQuery", err)
	}
}

func TestHandle_CourseSelectionDutch(t *testing.T) {
	s := testService(t)
	res, err := s.Handle(context.Background(), "Welke cursus is het beste voor een beginner in AI?", profile.Context{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Intent() != intent.CourseSelection {
		t.Errorf("intent = %s, want course_selection", res.Intent())
	}
	if res.Confidence() != 0.9 {
		t.Errorf("confidence = %v, want 0.9", res.Confidence())
	}
	if res.Language() != profile.Dutch {
		t.Errorf("language = %s, want nl (detected)", res.Language())
	}
	if res.ID() == "" {
		t.Error("result should carry an id")
	}
	if len(res.SuggestedCourses()) == 0 || len(res.SuggestedCourses()) > 3 {
		t.Errorf("got %d suggestions, want 1..3", len(res.SuggestedCourses()))
	}
	if !strings.Contains(res.Response(), "raad ik deze cursussen aan") {
		t.Errorf("unexpected response:\n%s", res.Response())
	}
	if len(res.FollowUpQuestions()) != 3 {
		t.Errorf("got %d follow-ups, want 3", len(res.FollowUpQuestions()))
	}
	for _, link := range res.ActionLinks() {
		if link.Type != result.LinkCourse {
			t.Errorf("link type = %s, want course", link.Type)
		}
	}
}

func TestHandle_PricingDutch(t *testing.T) {
	s := testService(t)
	res, err := s.Handle(context.Background(), "Hoeveel kost de ChatGPT cursus?", profile.Context{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Intent() != intent.Pricing {
		t.Errorf("intent = %s, want pricing", res.Intent())
	}
	if res.Confidence() != 1.0 {
		t.Errorf("confidence = %v, want 1.0", res.Confidence())
	}
	if !strings.Contains(res.Response(), "Prijzen lopen van €99.00 tot €499.00.") {
		t.Errorf("pricing response missing range:\n%s", res.Response())
	}
}

func TestHandle_ContentQuestionEnglish(t *testing.T) {
	s := testService(t)
	res, err := s.Handle(context.Background(), "What is retrieval augmented generation?", profile.Context{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Intent() != intent.ContentQuestion {
		t.Errorf("intent = %s, want content_question", res.Intent())
	}
	if res.Language() != profile.English {
		t.Errorf("language = %s, want en", res.Language())
	}
	if len(res.RelatedContent()) == 0 {
		t.Fatal("expected related lesson content")
	}
	ref := res.RelatedContent()[0]
	if ref.CourseID != "rag-advanced" || ref.LessonID != "l1" {
		t.Errorf("unexpected ref %+v", ref)
	}
	if len(res.ActionLinks()) == 0 || res.ActionLinks()[0].Type != result.LinkLesson {
		t.Errorf("expected lesson links, got %+v", res.ActionLinks())
	}
}

func TestHandle_PreferredLanguageWins(t *testing.T) {
	s := testService(t)
	prof := profile.Context{PreferredLanguage: profile.English}
	res, err := s.Handle(context.Background(), "Welke cursus is het beste voor een beginner?", prof)
	if err != nil {
		t.Fatal(err)
	}
	if res.Language() != profile.English {
		t.Errorf("language = %s, want en (profile preference)", res.Language())
	}
	if !strings.Contains(res.Response(), "I recommend") {
		t.Errorf("response not in English:\n%s", res.Response())
	}
}

func TestHandle_CompletedCoursesExcluded(t *testing.T) {
	s := testService(t)
	prof := profile.Context{CompletedCourses: []string{"ai-basics", "prompt-basics"}}
	res, err := s.Handle(context.Background(), "Welke cursus raad je aan over AI?", prof)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range res.SuggestedCourses() {
		if c.ID() == "ai-basics" || c.ID() == "prompt-basics" {
			t.Errorf("completed course %s suggested", c.ID())
		}
	}
}

func TestHandle_TechnicalHelpSupportLink(t *testing.T) {
	s := testService(t)
	res, err := s.Handle(context.Background(), "Ik kan niet inloggen, hulp nodig", profile.Context{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Intent() != intent.TechnicalHelp {
		t.Errorf("intent = %s, want technical_help", res.Intent())
	}
	links := res.ActionLinks()
	if len(links) != 1 || links[0].Type != result.LinkExternal {
		t.Fatalf("expected one external support link, got %+v", links)
	}
	if links[0].URL != "https://academy.example.nl/support" {
		t.Errorf("URL = %s", links[0].URL)
	}
}

func TestHandle_FallbackGeneralInfo(t *testing.T) {
	s := testService(t)
	res, err := s.Handle(context.Background(), "hallo daar", profile.Context{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Intent() != intent.GeneralInfo {
		t.Errorf("intent = %s, want general_info", res.Intent())
	}
	if res.Confidence() != 0.6 {
		t.Errorf("confidence = %v, want 0.6", res.Confidence())
	}
	if !strings.Contains(res.Response(), "3 courses") && !strings.Contains(res.Response(), "3 cursussen") {
		t.Errorf("general info should mention catalog size:\n%s", res.Response())
	}
}

func TestHandle_LearningPathUsesProfileGoal(t *testing.T) {
	s := testService(t)
	prof := profile.Context{
		PreferredLanguage: profile.Dutch,
		LearningGoals:     []string{"rag"},
	}
	res, err := s.Handle(context.Background(), "Waar begin ik, wat is een goed leerpad?", prof)
	if err != nil {
		t.Fatal(err)
	}
	if res.Intent() != intent.LearningPath {
		t.Errorf("intent = %s, want learning_path", res.Intent())
	}
	found := false
	for _, c := range res.SuggestedCourses() {
		if c.ID() == "rag-advanced" {
			found = true
		}
	}
	if !found {
		t.Errorf("path toward rag should include rag-advanced, got %d courses", len(res.SuggestedCourses()))
	}
}
