package taxonomy

import "strings"

// Category is a named cluster of related skills (immutable value object).
type Category struct {
	id      string
	name    string
	skills  []string
	related []string
}

// NewCategory creates a skill category.
func NewCategory(id, name string, skills, related []string) Category {
	return Category{id: id, name: name, skills: skills, related: related}
}

// ID returns the category identifier.
func (c *Category) ID() string { return c.id }

// Name returns the display name.
func (c *Category) Name() string { return c.name }

// Skills returns the canonical skill terms.
func (c *Category) Skills() []string { return c.skills }

// Related returns the ids of related categories.
func (c *Category) Related() []string { return c.related }

// Taxonomy is the static skill-category table, built once at engine
// construction and read-only afterwards.
type Taxonomy struct {
	categories []Category
	byID       map[string]int
}

// New builds a taxonomy from categories. Later duplicates of an id are
// ignored; the relation graph is taken as given (symmetric by
// convention, not enforced).
func New(categories []Category) Taxonomy {
	byID := make(map[string]int, len(categories))
	kept := make([]Category, 0, len(categories))
	for _, c := range categories {
		if _, ok := byID[c.id]; ok {
			continue
		}
		byID[c.id] = len(kept)
		kept = append(kept, c)
	}
	return Taxonomy{categories: kept, byID: byID}
}

// Categories returns all categories in declaration order.
func (t *Taxonomy) Categories() []Category { return t.categories }

// Category looks up a category by id.
func (t *Taxonomy) Category(id string) (Category, bool) {
	i, ok := t.byID[id]
	if !ok {
		return Category{}, false
	}
	return t.categories[i], true
}

// ExtractSkills returns the canonical skill terms that occur as
// case-insensitive substrings of text, unioned with matching generic
// AI/automation terms. Deliberately recall-oriented: downstream scoring
// treats a match as soft evidence, not a hard filter. Empty text yields
// an empty set.
func (t *Taxonomy) ExtractSkills(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var found []string
	seen := make(map[string]bool)
	add := func(skill string) {
		if !seen[skill] {
			seen[skill] = true
			found = append(found, skill)
		}
	}

	for _, cat := range t.categories {
		for _, skill := range cat.skills {
			if strings.Contains(lower, strings.ToLower(skill)) {
				add(skill)
			}
		}
	}
	for _, term := range genericTerms {
		if strings.Contains(lower, term) {
			add(term)
		}
	}
	return found
}

// CategoriesForSkills returns the ids of categories containing at least
// one of the given skills, in declaration order.
func (t *Taxonomy) CategoriesForSkills(skills []string) []string {
	if len(skills) == 0 {
		return nil
	}
	want := make(map[string]bool, len(skills))
	for _, s := range skills {
		want[strings.ToLower(s)] = true
	}

	var ids []string
	for _, cat := range t.categories {
		for _, skill := range cat.skills {
			if want[strings.ToLower(skill)] {
				ids = append(ids, cat.id)
				break
			}
		}
	}
	return ids
}

// AreAffine reports whether two categories are the same or listed as
// related in either direction.
func (t *Taxonomy) AreAffine(a, b string) bool {
	if a == b {
		return true
	}
	if ca, ok := t.Category(a); ok {
		for _, id := range ca.related {
			if id == b {
				return true
			}
		}
	}
	if cb, ok := t.Category(b); ok {
		for _, id := range cb.related {
			if id == a {
				return true
			}
		}
	}
	return false
}

// genericTerms are AI/automation terms matched during skill extraction
// regardless of taxonomy membership.
var genericTerms = []string{
	"ai",
	"artificial intelligence",
	"kunstmatige intelligentie",
	"machine learning",
	"automation",
	"automatisering",
	"chatbot",
	"llm",
	"gpt",
}

// Default returns the built-in skill taxonomy for the AI education
// catalog.
func Default() Taxonomy {
	return New([]Category{
		NewCategory("ai-fundamentals", "AI Fundamentals",
			[]string{"ai basics", "ai begrippen", "neural networks", "deep learning", "machine learning", "generative ai"},
			[]string{"prompt-engineering", "ai-tools"}),
		NewCategory("prompt-engineering", "Prompt Engineering",
			[]string{"prompt engineering", "prompts", "prompting", "chatgpt", "claude", "system prompt"},
			[]string{"ai-fundamentals", "content-creation"}),
		NewCategory("rag-development", "RAG & Retrieval",
			[]string{"rag", "retrieval", "vector database", "embeddings", "knowledge base", "semantic search"},
			[]string{"ai-development", "data-analysis"}),
		NewCategory("ai-development", "AI Development",
			[]string{"api", "python", "langchain", "fine-tuning", "agents", "function calling"},
			[]string{"rag-development", "ai-automation"}),
		NewCategory("ai-automation", "AI Automation",
			[]string{"workflow automation", "zapier", "make.com", "no-code", "integraties", "process automation"},
			[]string{"ai-development", "ai-tools"}),
		NewCategory("ai-tools", "AI Tools",
			[]string{"midjourney", "copilot", "gemini", "ai tools", "image generation", "speech to text"},
			[]string{"ai-fundamentals", "content-creation"}),
		NewCategory("content-creation", "Content Creation",
			[]string{"copywriting", "content strategie", "seo", "social media", "blogging", "video scripts"},
			[]string{"prompt-engineering", "ai-tools"}),
		NewCategory("data-analysis", "Data Analysis",
			[]string{"data analyse", "data analysis", "excel", "dashboards", "visualisatie", "statistics"},
			[]string{"rag-development"}),
	})
}
