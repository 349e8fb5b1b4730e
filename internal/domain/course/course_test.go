package course

import (
	"strings"
	"testing"

	"github.com/eduwijs/querywise/internal/domain/level"
)

func TestEstimateHours(t *testing.T) {
	tests := []struct {
		duration string
		want     int
	}{
		{"6 uur", 6},
		{"1 hour", 1},
		{"12 hours", 12},
		{"3 weken", 15},
		{"2 weeks", 10},
		{"1 week", 5},
		{"zelfstudie", DefaultHours},
		{"", DefaultHours},
		{"6 dagen", DefaultHours},
	}
	for _, tc := range tests {
		if got := EstimateHours(tc.duration); got != tc.want {
			t.Errorf("EstimateHours(%q) = %d, want %d", tc.duration, got, tc.want)
		}
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := New("", "Titel", "", "", nil, "beginner", "", 0, nil); err == nil {
		t.Error("expected error for empty id")
	}
	if _, err := New("c1", "", "", "", nil, "beginner", "", 0, nil); err == nil {
		t.Error("expected error for empty title")
	}
	if _, err := New("c1", "Titel", "", "", nil, "beginner", "", -1, nil); err == nil {
		t.Error("expected error for negative price")
	}
}

func TestNew_UnknownLevelDefaultsToIntermediate(t *testing.T) {
	c, err := New("c1", "Titel", "", "", nil, "iets anders", "6 uur", 99, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Level() != level.Intermediate {
		t.Errorf("Level() = %v, want Intermediate", c.Level())
	}
}

func TestSearchText_IncludesTitleDescriptionAndTags(t *testing.T) {
	c, err := New("c1", "Prompt Basis", "Schrijf betere prompts", "Kort", []string{"chatgpt"}, "beginner", "", 99, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	text := c.SearchText()
	for _, want := range []string{"Prompt Basis", "Schrijf betere prompts", "Kort", "chatgpt"} {
		if !strings.Contains(text, want) {
			t.Errorf("SearchText() missing %q", want)
		}
	}
}
