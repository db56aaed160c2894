// Package assessment folds per-answer analyses into interview-level
// metrics, estimates a seniority level from the project set, and composes
// the final feedback report.
package assessment

import (
	"github.com/jonathan/interview-coach/internal/types"
)

// Pause heuristic: a long response with little said counts as a pause.
const (
	pauseResponseTimeSec = 30
	pauseKeywordFloor    = 5
)

// AggregateMetrics computes interview-level metrics over the answer
// analyses. Safe on empty input: averages divide by max(1, n), so the
// result is always finite.
func AggregateMetrics(analyses []types.AnswerAnalysis) types.InterviewMetrics {
	numAnswers := len(analyses)
	if numAnswers == 0 {
		numAnswers = 1
	}

	var (
		totalDuration  float64
		totalWords     int
		totalConf      float64
		totalTechnical float64
		totalComm      float64
		pauseCount     int
	)
	for _, a := range analyses {
		totalDuration += a.ResponseTime
		totalWords += len(a.Keywords)
		totalConf += float64(a.Confidence)
		totalTechnical += float64(a.TechnicalAccuracy)
		totalComm += float64(a.CommunicationClarity)
		if a.ResponseTime > pauseResponseTimeSec && len(a.Keywords) < pauseKeywordFloor {
			pauseCount++
		}
	}

	technicalDepth := totalTechnical / float64(numAnswers)

	return types.InterviewMetrics{
		TotalDuration:       totalDuration,
		AverageResponseTime: totalDuration / float64(numAnswers),
		WordsPerMinute:      totalWords, // keyword count stands in for spoken words
		PauseCount:          pauseCount,
		ConfidenceLevel:     totalConf / float64(numAnswers),
		TechnicalDepth:      technicalDepth,
		CommunicationScore:  totalComm / float64(numAnswers),
		OverallRating:       rating(technicalDepth),
	}
}

// rating maps average technical depth onto the full rating range. The
// Good/Fair boundary sits at 70.
func rating(technicalDepth float64) types.OverallRating {
	switch {
	case technicalDepth > 85:
		return types.RatingExcellent
	case technicalDepth > 70:
		return types.RatingGood
	case technicalDepth > 50:
		return types.RatingFair
	default:
		return types.RatingPoor
	}
}
