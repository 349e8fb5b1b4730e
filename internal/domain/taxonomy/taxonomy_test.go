package taxonomy

import (
	"reflect"
	"testing"
)

func TestExtractSkills_CaseInsensitive(t *testing.T) {
	tax := Default()

	got := tax.ExtractSkills("Ik wil RAG leren met een Vector Database")
	want := map[string]bool{"rag": true, "vector database": true}
	for _, s := range got {
		delete(want, s)
	}
	if len(want) != 0 {
		t.Errorf("ExtractSkills missed %v, got %v", want, got)
	}
}

func TestExtractSkills_EmptyText(t *testing.T) {
	tax := Default()
	if got := tax.ExtractSkills(""); got != nil {
		t.Errorf("ExtractSkills(\"\") = %v, want nil", got)
	}
}

func TestExtractSkills_Deduplicates(t *testing.T) {
	tax := Default()
	got := tax.ExtractSkills("chatgpt en nog eens ChatGPT en CHATGPT")
	count := 0
	for _, s := range got {
		if s == "chatgpt" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("got %d occurrences of %q, want 1 (full set %v)", count, "chatgpt", got)
	}
}

func TestExtractSkills_GenericTerms(t *testing.T) {
	tax := Default()
	got := tax.ExtractSkills("alles over kunstmatige intelligentie")
	found := false
	for _, s := range got {
		if s == "kunstmatige intelligentie" {
			found = true
		}
	}
	if !found {
		t.Errorf("generic term not extracted, got %v", got)
	}
}

func TestCategoriesForSkills(t *testing.T) {
	tax := Default()

	got := tax.CategoriesForSkills([]string{"rag", "chatgpt"})
	want := []string{"prompt-engineering", "rag-development"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CategoriesForSkills = %v, want %v", got, want)
	}

	if got := tax.CategoriesForSkills(nil); got != nil {
		t.Errorf("CategoriesForSkills(nil) = %v, want nil", got)
	}
}

func TestAreAffine(t *testing.T) {
	tax := Default()

	if !tax.AreAffine("rag-development", "rag-development") {
		t.Error("category should be affine with itself")
	}
	if !tax.AreAffine("rag-development", "ai-development") {
		t.Error("related categories should be affine")
	}
	// data-analysis lists rag-development but not vice versa; the
	// relation is checked in both directions.
	if !tax.AreAffine("rag-development", "data-analysis") || !tax.AreAffine("data-analysis", "rag-development") {
		t.Error("affinity should be symmetric")
	}
	if tax.AreAffine("content-creation", "data-analysis") {
		t.Error("unrelated categories should not be affine")
	}
}

func TestNew_SkipsDuplicateIDs(t *testing.T) {
	tax := New([]Category{
		NewCategory("a", "First", []string{"x"}, nil),
		NewCategory("a", "Second", []string{"y"}, nil),
	})
	if len(tax.Categories()) != 1 {
		t.Fatalf("got %d categories, want 1", len(tax.Categories()))
	}
	c, ok := tax.Category("a")
	if !ok || c.Name() != "First" {
		t.Errorf("duplicate id should keep the first category, got %+v", c)
	}
}
