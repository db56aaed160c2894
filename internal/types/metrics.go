// Package types provides type definitions for structured data used throughout the interview-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// OverallRating grades a finished interview.
type OverallRating string

// Ratings ordered from worst to best.
const (
	RatingPoor      OverallRating = "Poor"
	RatingFair      OverallRating = "Fair"
	RatingGood      OverallRating = "Good"
	RatingExcellent OverallRating = "Excellent"
)

// InterviewMetrics aggregates per-answer analyses into interview-level
// numbers. It is derived data, recomputed whenever the answer set is
// finalized, never edited in place.
type InterviewMetrics struct {
	TotalDuration       float64       `json:"total_duration"` // seconds
	AverageResponseTime float64       `json:"average_response_time"`
	WordsPerMinute      int           `json:"words_per_minute"`
	PauseCount          int           `json:"pause_count"`
	ConfidenceLevel     float64       `json:"confidence_level"`
	TechnicalDepth      float64       `json:"technical_depth"`
	CommunicationScore  float64       `json:"communication_score"`
	OverallRating       OverallRating `json:"overall_rating"`
}

// ComparisonData is one row of the industry comparison table in the
// feedback report.
type ComparisonData struct {
	UserScore       int    `json:"user_score"`
	IndustryAverage int    `json:"industry_average"`
	TopPerformers   int    `json:"top_performers"`
	Category        string `json:"category"`
}
