package chi

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/eduwijs/querywise/internal/catalog"
	"github.com/eduwijs/querywise/internal/domain/course"
	"github.com/eduwijs/querywise/internal/domain/taxonomy"
	"github.com/eduwijs/querywise/internal/respond"
	"github.com/eduwijs/querywise/internal/usecase/classify"
	"github.com/eduwijs/querywise/internal/usecase/contentsearch"
	"github.com/eduwijs/querywise/internal/usecase/path"
	queryuc "github.com/eduwijs/querywise/internal/usecase/query"
	"github.com/eduwijs/querywise/internal/usecase/scoring"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	mustCourse := func(id, title, desc, levelLabel, duration string, price float64) course.Course {
		c, err := course.New(id, title, desc, "", nil, levelLabel, duration, price, nil)
		if err != nil {
			t.Fatalf("course.New(%s): %v", id, err)
		}
		return c
	}

	courses := []course.Course{
		mustCourse("ai-basics", "AI Basics", "Leer de basis van machine learning", "beginner", "6 uur", 149),
		mustCourse("rag-advanced", "RAG in de praktijk", "Bouw een kennisbank met embeddings", "advanced", "3 weken", 499),
	}
	idx, err := catalog.New(courses, taxonomy.Default())
	if err != nil {
		t.Fatal(err)
	}

	svc := queryuc.New(
		idx,
		classify.New(),
		scoring.New(idx, scoring.Weights{}),
		path.New(idx),
		contentsearch.New(idx),
		respond.New("https://academy.example.nl"),
		queryuc.Limits{},
	)
	return NewServer(svc, idx, zap.NewNop())
}

func TestHandleQuery(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Router())
	defer ts.Close()

	body := `{"query":"Welke cursus is het beste voor een beginner in AI?","context":{"currentSkillLevel":"beginner"}}`
	resp, err := http.Post(ts.URL+"/v1/query", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var out queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Intent != "course_selection" {
		t.Errorf("intent = %s, want course_selection", out.Intent)
	}
	if out.Confidence != 0.9 {
		t.Errorf("confidence = %v, want 0.9", out.Confidence)
	}
	if out.Language != "nl" {
		t.Errorf("language = %s, want nl", out.Language)
	}
	if out.ID == "" {
		t.Error("response should carry a query id")
	}
	if len(out.SuggestedCourses) == 0 {
		t.Error("expected suggested courses")
	}
	if len(out.FollowUpQuestions) != 3 {
		t.Errorf("got %d follow-ups, want 3", len(out.FollowUpQuestions))
	}
}

func TestHandleQuery_EmptyQuery(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Router())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/v1/query", "application/json", strings.NewReader(`{"query":"  "}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var out errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Code != "empty_query" {
		t.Errorf("code = %s, want empty_query", out.Code)
	}
}

func TestHandleQuery_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Router())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/v1/query", "application/json", strings.NewReader(`{"query":`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestListCourses(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/v1/courses")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var out courseListResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Total != 2 || len(out.Items) != 2 {
		t.Fatalf("total = %d, items = %d, want 2", out.Total, len(out.Items))
	}
	if out.Items[0].ID != "ai-basics" {
		t.Errorf("first course = %s, want ai-basics (catalog order)", out.Items[0].ID)
	}
}

func TestGetCourse(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/v1/courses/rag-advanced")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var out courseResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.ID != "rag-advanced" || out.Level != "advanced" {
		t.Errorf("unexpected course %+v", out)
	}
	if out.EstimatedHours != 15 {
		t.Errorf("estimatedHours = %d, want 15", out.EstimatedHours)
	}
}

func TestGetCourse_NotFound(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/v1/courses/missing")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	var out errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Code != "course_not_found" {
		t.Errorf("code = %s, want course_not_found", out.Code)
	}
}

func TestClassifyQuery(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/v1/intents?q=" + url.QueryEscape("Hoeveel kost de cursus?"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var out intentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Intent != "pricing" || out.Confidence != 1.0 {
		t.Errorf("got (%s, %v), want (pricing, 1.0)", out.Intent, out.Confidence)
	}
	if out.Language != "nl" {
		t.Errorf("language = %s, want nl", out.Language)
	}
}

func TestClassifyQuery_MissingParam(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/v1/intents")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out["status"] != "ok" {
		t.Errorf("status field = %v", out["status"])
	}
}
