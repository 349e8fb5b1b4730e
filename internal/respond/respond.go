// Package respond turns ranked engine output into human-readable text
// in the learner's language. It holds static phrase tables and no
// decision logic.
package respond

import (
	"fmt"
	"strings"

	"github.com/eduwijs/querywise/internal/domain/course"
	"github.com/eduwijs/querywise/internal/domain/intent"
	"github.com/eduwijs/querywise/internal/domain/profile"
	"github.com/eduwijs/querywise/internal/domain/query/result"
)

// Formatter renders responses, follow-up questions, and action links.
type Formatter struct {
	baseURL string
}

// New creates a formatter. baseURL prefixes course and lesson links.
func New(baseURL string) *Formatter {
	return &Formatter{baseURL: strings.TrimRight(baseURL, "/")}
}

// CourseSelection lists the top recommendations.
func (f *Formatter) CourseSelection(lang profile.Language, courses []course.Course) string {
	if len(courses) == 0 {
		return pick(lang,
			"Ik heb geen passende cursus gevonden. Kun je je vraag anders formuleren?",
			"I could not find a matching course. Could you rephrase your question?")
	}
	var b strings.Builder
	b.WriteString(pick(lang,
		"Op basis van je vraag raad ik deze cursussen aan:\n",
		"Based on your question I recommend these courses:\n"))
	for i, c := range courses {
		fmt.Fprintf(&b, "%d. %s (%s, %s)\n", i+1, c.Title(), c.Level(), c.Duration())
	}
	return b.String()
}

// LearningPath renders an ordered path toward the goal.
func (f *Formatter) LearningPath(lang profile.Language, goal string, courses []course.Course) string {
	if len(courses) == 0 {
		return pick(lang,
			"Ik kon geen leerpad samenstellen voor dit doel. Probeer je doel concreter te beschrijven.",
			"I could not assemble a learning path for this goal. Try describing your goal more concretely.")
	}
	var b strings.Builder
	switch {
	case goal != "" && lang == profile.Dutch:
		fmt.Fprintf(&b, "Leerpad richting %q:\n", goal)
	case goal != "":
		fmt.Fprintf(&b, "Learning path toward %q:\n", goal)
	default:
		b.WriteString(pick(lang, "Voorgesteld leerpad:\n", "Suggested learning path:\n"))
	}
	for i, c := range courses {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, c.Title(), c.Level())
	}
	return b.String()
}

// ContentQuestion points at the lessons that cover the question.
func (f *Formatter) ContentQuestion(lang profile.Language, refs []result.ContentRef) string {
	if len(refs) == 0 {
		return pick(lang,
			"Ik heb hier geen lesmateriaal over gevonden. Stel je vraag gerust anders.",
			"I found no lesson material on this. Feel free to ask differently.")
	}
	if lang == profile.Dutch {
		return fmt.Sprintf("Dit onderwerp komt aan bod in %d les(sen). Bekijk de gekoppelde lessen hieronder.", len(refs))
	}
	return fmt.Sprintf("This topic is covered in %d lesson(s). See the linked lessons below.", len(refs))
}

// SkillMatching explains recommendations driven by declared skills.
func (f *Formatter) SkillMatching(lang profile.Language, courses []course.Course) string {
	if len(courses) == 0 {
		return pick(lang,
			"Vertel me iets meer over je vaardigheden en interesses, dan zoek ik een passende cursus.",
			"Tell me a bit more about your skills and interests and I will find a matching course.")
	}
	var b strings.Builder
	b.WriteString(pick(lang,
		"Deze cursussen sluiten aan op jouw profiel:\n",
		"These courses match your profile:\n"))
	for i, c := range courses {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, c.Title(), c.Level())
	}
	return b.String()
}

// Pricing renders a price table over the given courses, including the
// catalog price range.
func (f *Formatter) Pricing(lang profile.Language, courses []course.Course) string {
	if len(courses) == 0 {
		return pick(lang, "Er zijn nog geen cursussen beschikbaar.", "No courses are available yet.")
	}
	lowest, highest := courses[0].Price(), courses[0].Price()
	var b strings.Builder
	b.WriteString(pick(lang, "Prijsoverzicht:\n", "Price overview:\n"))
	for _, c := range courses {
		fmt.Fprintf(&b, "- %s: €%.2f\n", c.Title(), c.Price())
		if c.Price() < lowest {
			lowest = c.Price()
		}
		if c.Price() > highest {
			highest = c.Price()
		}
	}
	if lang == profile.Dutch {
		fmt.Fprintf(&b, "Prijzen lopen van €%.2f tot €%.2f.\n", lowest, highest)
	} else {
		fmt.Fprintf(&b, "Prices range from €%.2f to €%.2f.\n", lowest, highest)
	}
	return b.String()
}

// Comparison lines up courses for a side-by-side choice.
func (f *Formatter) Comparison(lang profile.Language, courses []course.Course) string {
	if len(courses) < 2 {
		return pick(lang,
			"Noem twee cursussen die je wilt vergelijken.",
			"Name two courses you would like to compare.")
	}
	var b strings.Builder
	b.WriteString(pick(lang, "Vergelijking:\n", "Comparison:\n"))
	for _, c := range courses {
		fmt.Fprintf(&b, "- %s — %s, %s, €%.2f\n", c.Title(), c.Level(), c.Duration(), c.Price())
	}
	return b.String()
}

// TechnicalHelp returns the support hand-off text.
func (f *Formatter) TechnicalHelp(lang profile.Language) string {
	return pick(lang,
		"Vervelend dat je tegen een probleem aanloopt. Controleer eerst je inloggegevens en browser; blijft het probleem bestaan, neem dan contact op met support.",
		"Sorry you ran into a problem. First check your login details and browser; if the issue persists, contact support.")
}

// GeneralInfo returns the platform overview.
func (f *Formatter) GeneralInfo(lang profile.Language, catalogSize int) string {
	if lang == profile.Dutch {
		return fmt.Sprintf("Welkom! We bieden %d cursussen over AI en automatisering, van beginner tot expert. Stel een vraag over een onderwerp, prijs of leerpad.", catalogSize)
	}
	return fmt.Sprintf("Welcome! We offer %d courses on AI and automation, from beginner to expert. Ask about a topic, pricing, or a learning path.", catalogSize)
}

// FollowUps returns the three clarifying questions for an intent.
func (f *Formatter) FollowUps(in intent.Intent, lang profile.Language) []string {
	table := followUpsEN
	if lang == profile.Dutch {
		table = followUpsNL
	}
	if qs, ok := table[in]; ok {
		return qs
	}
	return table[intent.GeneralInfo]
}

// CourseLinks builds action links for suggested courses.
func (f *Formatter) CourseLinks(lang profile.Language, courses []course.Course) []result.ActionLink {
	links := make([]result.ActionLink, 0, len(courses))
	for _, c := range courses {
		text := "View " + c.Title()
		if lang == profile.Dutch {
			text = "Bekijk " + c.Title()
		}
		links = append(links, result.ActionLink{
			Text: text,
			URL:  fmt.Sprintf("%s/courses/%s", f.baseURL, c.ID()),
			Type: result.LinkCourse,
		})
	}
	return links
}

// LessonLinks builds action links for related lessons.
func (f *Formatter) LessonLinks(lang profile.Language, refs []result.ContentRef) []result.ActionLink {
	links := make([]result.ActionLink, 0, len(refs))
	for _, r := range refs {
		links = append(links, result.ActionLink{
			Text: pick(lang, "Open les", "Open lesson"),
			URL:  fmt.Sprintf("%s/courses/%s/modules/%s/lessons/%s", f.baseURL, r.CourseID, r.ModuleID, r.LessonID),
			Type: result.LinkLesson,
		})
	}
	return links
}

// SupportLink is the external support action.
func (f *Formatter) SupportLink(lang profile.Language) result.ActionLink {
	return result.ActionLink{
		Text: pick(lang, "Contact support", "Contact support"),
		URL:  f.baseURL + "/support",
		Type: result.LinkExternal,
	}
}

// pick selects the Dutch or English variant.
func pick(lang profile.Language, nl, en string) string {
	if lang == profile.Dutch {
		return nl
	}
	return en
}

var followUpsNL = map[intent.Intent][]string{
	intent.CourseSelection: {
		"Hoeveel tijd heb je per week beschikbaar?",
		"Wat is je huidige ervaringsniveau?",
		"Welk onderwerp interesseert je het meest?",
	},
	intent.LearningPath: {
		"Wat wil je uiteindelijk kunnen bouwen of doen?",
		"Hoeveel weken wil je over het traject doen?",
		"Heb je al eerdere cursussen afgerond?",
	},
	intent.ContentQuestion: {
		"Wil je een praktisch voorbeeld bij dit onderwerp?",
		"Zoek je verdieping of juist een introductie?",
		"Zal ik een cursus over dit onderwerp aanraden?",
	},
	intent.SkillMatching: {
		"Welke tools gebruik je nu al in je werk?",
		"In welke sector werk je?",
		"Wil je breder leren of juist specialiseren?",
	},
	intent.Pricing: {
		"Wil je informatie over betalen in termijnen?",
		"Zoek je een individuele cursus of een bundel?",
		"Is dit zakelijk of privé?",
	},
	intent.CourseComparison: {
		"Welke twee cursussen twijfel je tussen?",
		"Is prijs of inhoud doorslaggevend voor je?",
		"Wat is je ervaringsniveau?",
	},
	intent.TechnicalHelp: {
		"Op welk apparaat speelt het probleem?",
		"Zie je een foutmelding, en zo ja welke?",
		"Sinds wanneer treedt het probleem op?",
	},
	intent.GeneralInfo: {
		"Wil je weten welke cursussen we aanbieden?",
		"Zoek je een leerpad richting een doel?",
		"Heb je een vraag over prijzen?",
	},
}

var followUpsEN = map[intent.Intent][]string{
	intent.CourseSelection: {
		"How much time do you have available per week?",
		"What is your current experience level?",
		"Which topic interests you most?",
	},
	intent.LearningPath: {
		"What do you ultimately want to build or do?",
		"How many weeks do you want the track to take?",
		"Have you completed any courses before?",
	},
	intent.ContentQuestion: {
		"Would you like a practical example of this topic?",
		"Are you looking for depth or an introduction?",
		"Shall I recommend a course on this topic?",
	},
	intent.SkillMatching: {
		"Which tools do you already use at work?",
		"Which industry do you work in?",
		"Do you want to broaden or specialize?",
	},
	intent.Pricing: {
		"Would you like information on paying in installments?",
		"Are you looking for a single course or a bundle?",
		"Is this for business or personal use?",
	},
	intent.CourseComparison: {
		"Which two courses are you deciding between?",
		"Is price or content the deciding factor?",
		"What is your experience level?",
	},
	intent.TechnicalHelp: {
		"On which device does the problem occur?",
		"Do you see an error message, and if so which one?",
		"Since when has the problem occurred?",
	},
	intent.GeneralInfo: {
		"Would you like to know which courses we offer?",
		"Are you looking for a learning path toward a goal?",
		"Do you have a question about pricing?",
	},
}
