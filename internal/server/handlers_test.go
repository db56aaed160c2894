package server

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/db"
	"github.com/jonathan/interview-coach/internal/types"
)

func storedReport(t *testing.T) *db.Report {
	t.Helper()

	metrics, err := json.Marshal(types.InterviewMetrics{
		OverallRating:   types.RatingGood,
		TechnicalDepth:  81.5,
		ConfidenceLevel: 72,
	})
	require.NoError(t, err)
	skill, err := json.Marshal(types.SkillAssessment{
		Level:     types.LevelSenior,
		Strengths: []string{"Strong in react, go, python"},
	})
	require.NoError(t, err)
	comparison, err := json.Marshal([]types.ComparisonData{
		{Category: "Technical Skills", UserScore: 80, IndustryAverage: 65, TopPerformers: 85},
	})
	require.NoError(t, err)

	return &db.Report{
		Metrics:    metrics,
		Skill:      skill,
		Comparison: comparison,
		Feedback:   "# Interview Summary Report",
	}
}

func TestReportResponse(t *testing.T) {
	report, err := reportResponse(storedReport(t))
	require.NoError(t, err)

	assert.Equal(t, types.RatingGood, report.Metrics.OverallRating)
	assert.Equal(t, 81.5, report.Metrics.TechnicalDepth)
	assert.Equal(t, types.LevelSenior, report.Skill.Level)
	require.Len(t, report.Comparison, 1)
	assert.Equal(t, "Technical Skills", report.Comparison[0].Category)
	assert.Equal(t, "# Interview Summary Report", report.Feedback)
}

func TestReportResponse_MalformedPayload(t *testing.T) {
	stored := storedReport(t)
	stored.Metrics = []byte("{not json")

	_, err := reportResponse(stored)
	assert.Error(t, err)
}
