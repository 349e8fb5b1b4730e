package level

import "testing"

func TestParseCourse_KnownLabels(t *testing.T) {
	tests := []struct {
		label string
		want  Level
	}{
		{"beginner", Beginner},
		{"Beginner", Beginner},
		{"  gevorderd ", Advanced},
		{"expert", Expert},
		{"gemiddeld", Intermediate},
	}
	for _, tc := range tests {
		if got := ParseCourse(tc.label); got != tc.want {
			t.Errorf("ParseCourse(%q) = %v, want %v", tc.label, got, tc.want)
		}
	}
}

func TestParseCourse_UnknownDefaultsToIntermediate(t *testing.T) {
	for _, label := range []string{"", "medium-rare", "niveau 3"} {
		if got := ParseCourse(label); got != Intermediate {
			t.Errorf("ParseCourse(%q) = %v, want Intermediate", label, got)
		}
	}
}

func TestParseUser_UnknownDefaultsToAbsoluteBeginner(t *testing.T) {
	if got := ParseUser(""); got != AbsoluteBeginner {
		t.Errorf("ParseUser(\"\") = %v, want AbsoluteBeginner", got)
	}
	if got := ParseUser("advanced"); got != Advanced {
		t.Errorf("ParseUser(\"advanced\") = %v, want Advanced", got)
	}
}

func TestDistance(t *testing.T) {
	if d := Beginner.Distance(Expert); d != 3 {
		t.Errorf("Beginner..Expert distance = %d, want 3", d)
	}
	if d := Expert.Distance(Beginner); d != 3 {
		t.Errorf("distance is not symmetric: got %d", d)
	}
	if d := Intermediate.Distance(Intermediate); d != 0 {
		t.Errorf("self distance = %d, want 0", d)
	}
}
