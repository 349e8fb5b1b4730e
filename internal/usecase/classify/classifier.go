package classify

import (
	"regexp"
	"strings"

	"github.com/eduwijs/querywise/internal/domain/intent"
)

// rule pairs a trigger pattern with the intent it resolves to and the
// fixed confidence its handler reports. Confidence is a
// designer-estimated reliability, not a statistical measure.
type rule struct {
	pattern    *regexp.Regexp
	intent     intent.Intent
	confidence float64
}

// Classifier maps a normalized query to an intent by testing an
// ordered rule table; the first match wins. Rule order is the
// tie-break policy for ambiguous queries: course selection beats
// learning path, learning path beats content question, and so on.
type Classifier struct {
	rules []rule
}

// New creates a classifier with the built-in Dutch/English rule table.
func New() *Classifier {
	return &Classifier{rules: []rule{
		{
			pattern: regexp.MustCompile(
				`\b(welke cursus|beste cursus|cursus voor|aanraden|aanbevel\w*|which course|best course|course for|recommend\w*)\b`),
			intent:     intent.CourseSelection,
			confidence: 0.9,
		},
		{
			pattern: regexp.MustCompile(
				`\b(leerpad|leertraject|leerroute|stappenplan|learning path|roadmap|waar begin|where (do i|to) start|volgorde)\b`),
			intent:     intent.LearningPath,
			confidence: 0.85,
		},
		{
			pattern: regexp.MustCompile(
				`\b(wat is|wat zijn|hoe werkt|waarom|leg uit|what is|what are|how does|how do|explain|uitleg)\b`),
			intent:     intent.ContentQuestion,
			confidence: 0.8,
		},
		{
			pattern: regexp.MustCompile(
				`\b(past bij|geschikt voor|mijn niveau|vaardigheden|skills|suits? me|fit for|my level|match)\b`),
			intent:     intent.SkillMatching,
			confidence: 0.8,
		},
		{
			pattern: regexp.MustCompile(
				`\b(prijs|prijzen|kost\w*|tarief|betalen|korting|price|prices|cost\w*|how much|pay|discount)\b`),
			intent:     intent.Pricing,
			confidence: 1.0,
		},
		{
			pattern: regexp.MustCompile(
				`\b(verschil|vergelijk\w*|versus|difference|compare\w*|comparison|\bvs\b|of de|or the)\b`),
			intent:     intent.CourseComparison,
			confidence: 0.85,
		},
		{
			pattern: regexp.MustCompile(
				`\b(inloggen|werkt niet|foutmelding|probleem|hulp nodig|login|log in|error|broken|not working|issue|support)\b`),
			intent:     intent.TechnicalHelp,
			confidence: 0.7,
		},
	}}
}

// fallbackConfidence applies when no rule matches and the query
// resolves to GeneralInfo.
const fallbackConfidence = 0.6

// Classify resolves a query to an intent and its handler confidence.
// Queries matching no rule resolve to GeneralInfo rather than erroring.
func (c *Classifier) Classify(query string) (intent.Intent, float64) {
	normalized := Normalize(query)
	for _, r := range c.rules {
		if r.pattern.MatchString(normalized) {
			return r.intent, r.confidence
		}
	}
	return intent.GeneralInfo, fallbackConfidence
}

// Normalize lowercases and collapses whitespace for pattern matching.
func Normalize(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}
