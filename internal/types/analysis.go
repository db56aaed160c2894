// Package types provides type definitions for structured data used throughout the interview-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Sentiment is the coarse polarity label returned by the sentiment gateway.
type Sentiment string

// Known sentiment labels.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Complexity bands an answer by depth.
type Complexity string

// Known complexity bands.
const (
	ComplexityBasic        Complexity = "basic"
	ComplexityIntermediate Complexity = "intermediate"
	ComplexityAdvanced     Complexity = "advanced"
)

// AnswerAnalysis is the structured multi-dimensional score for one submitted
// answer. It is created once per submission and never mutated; re-submitting
// an answer produces a new analysis.
type AnswerAnalysis struct {
	Score                  int        `json:"score"` // 0-100
	Strengths              []string   `json:"strengths"`
	Weaknesses             []string   `json:"weaknesses"`
	Suggestions            []string   `json:"suggestions"`
	TechnicalAccuracy      int        `json:"technical_accuracy"`       // 0-100
	CommunicationClarity   int        `json:"communication_clarity"`    // 0-100
	ProblemSolvingApproach int        `json:"problem_solving_approach"` // 0-100
	Sentiment              Sentiment  `json:"sentiment"`
	Confidence             int        `json:"confidence"` // 0-100
	Keywords               []string   `json:"keywords"`   // at most 8
	ResponseTime           float64    `json:"response_time"` // seconds
	Complexity             Complexity `json:"complexity"`
	IndustryRelevance      int        `json:"industry_relevance"` // 0-100
	CodeQuality            *int       `json:"code_quality,omitempty"`
}
