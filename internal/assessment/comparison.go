package assessment

import (
	"github.com/jonathan/interview-coach/internal/types"
)

// IndustryComparison builds the four-row comparison table that places the
// candidate's score next to fixed industry baselines. Per-row user scores
// are small offsets from the overall score, clamped to 0-100.
func IndustryComparison(score int) []types.ComparisonData {
	s := clampScore(score)
	return []types.ComparisonData{
		{Category: "Technical Skills", UserScore: s, IndustryAverage: 65, TopPerformers: 85},
		{Category: "Communication", UserScore: clampScore(s - 5), IndustryAverage: 70, TopPerformers: 88},
		{Category: "Problem Solving", UserScore: clampScore(s + 3), IndustryAverage: 62, TopPerformers: 82},
		{Category: "System Design", UserScore: clampScore(s - 2), IndustryAverage: 68, TopPerformers: 86},
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
