package analysis

import (
	"regexp"

	"github.com/jonathan/interview-coach/internal/types"
)

// Signals are the boolean and count features the scorer derives from one
// answer. The whole scoring policy keys off these.
type Signals struct {
	WordCount         int
	HasExamples       bool
	HasTechnicalTerms bool
	HasMetrics        bool
	Category          types.QuestionCategory
}

var (
	examplesRe       = regexp.MustCompile(`(?i)example|instance|case|for example|such as|like when`)
	technicalTermsRe = regexp.MustCompile(`(?i)algorithm|architecture|implementation|api|database|performance|latency|scalability|deploy|container|docker|kubernetes|thread|async|lambda|queue|cache|redis|mongodb|postgres|sql|rest|graphql`)
	metricsRe        = regexp.MustCompile(`(?i)\b\d+%|\b\d+\s*x\b|\b\d+\s+ms\b|\b\d+\s+sec(onds)?\b|improv(ed|ement)|reduc(ed|tion)`)
	tokenSplitRe     = regexp.MustCompile(`\s+`)
)

// DeriveSignals computes the scoring features for an answer.
func DeriveSignals(answer string, category types.QuestionCategory) Signals {
	wordCount := 0
	if answer != "" {
		wordCount = len(tokenSplitRe.Split(answer, -1))
	}
	return Signals{
		WordCount:         wordCount,
		HasExamples:       examplesRe.MatchString(answer),
		HasTechnicalTerms: technicalTermsRe.MatchString(answer),
		HasMetrics:        metricsRe.MatchString(answer),
		Category:          category,
	}
}

// RuleKind says which feedback list a rule feeds.
type RuleKind int

// Feedback list kinds.
const (
	KindStrength RuleKind = iota
	KindWeakness
	KindSuggestion
)

// FeedbackRule is one row of the declarative feedback policy: when the
// condition holds, Text joins the list named by Kind.
type FeedbackRule struct {
	Kind      RuleKind
	Text      string
	Condition func(Signals) bool
}

// FeedbackRules is the full feedback policy, evaluated once per answer in
// order. Keeping it as data makes the policy testable without the analyzer.
var FeedbackRules = []FeedbackRule{
	{KindStrength, "Comprehensive detail and elaboration", func(s Signals) bool { return s.WordCount > 80 }},
	{KindStrength, "Used relevant technical vocabulary", func(s Signals) bool { return s.HasTechnicalTerms }},
	{KindStrength, "Provided concrete examples", func(s Signals) bool { return s.HasExamples }},
	{KindStrength, "Included measurable outcomes", func(s Signals) bool { return s.HasMetrics }},

	{KindWeakness, "Answer is brief; expand with specifics", func(s Signals) bool { return s.WordCount < 40 }},
	{KindWeakness, "Add more technical depth and terminology", func(s Signals) bool {
		return !s.HasTechnicalTerms && s.Category == types.CategoryTechnical
	}},
	{KindWeakness, "Include specific examples or scenarios", func(s Signals) bool { return !s.HasExamples }},

	{KindSuggestion, "Link answers to measurable outcomes or architecture diagrams when possible.", func(Signals) bool { return true }},
	{KindSuggestion, `Quantify the impact (e.g., "reduced latency by 30%")`, func(s Signals) bool {
		return s.Category == types.CategoryProblemSolving && !s.HasMetrics
	}},
}

// EvaluateFeedback runs the policy and returns the three feedback lists.
func EvaluateFeedback(s Signals) (strengths, weaknesses, suggestions []string) {
	for _, rule := range FeedbackRules {
		if !rule.Condition(s) {
			continue
		}
		switch rule.Kind {
		case KindStrength:
			strengths = append(strengths, rule.Text)
		case KindWeakness:
			weaknesses = append(weaknesses, rule.Text)
		case KindSuggestion:
			suggestions = append(suggestions, rule.Text)
		}
	}
	return strengths, weaknesses, suggestions
}
