package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/interview-coach/internal/types"
)

func TestComposeFeedback(t *testing.T) {
	metrics := types.InterviewMetrics{
		TotalDuration:      300,
		ConfidenceLevel:    72.4,
		TechnicalDepth:     81.5,
		CommunicationScore: 74.0,
		OverallRating:      types.RatingGood,
	}
	skill := types.SkillAssessment{
		Level:           types.LevelSenior,
		YearsEstimate:   "4-7 years",
		Strengths:       []string{"Strong in go, react", "Strong technical foundation"},
		Recommendations: []string{"Deepen system design and leadership skills"},
	}
	comparison := IndustryComparison(82)
	projects := []types.Project{
		{Title: "Payments Platform"},
		{Title: "Data Pipeline"},
	}

	report := ComposeFeedback(metrics, comparison, skill, projects)

	assert.Contains(t, report, "# Interview Summary Report: Good Performance")
	assert.Contains(t, report, "During the 5-minute session")
	assert.Contains(t, report, "confidence level of 72%")
	assert.Contains(t, report, "**Senior** (4-7 years experience)")
	assert.Contains(t, report, "technical depth scored 81.5%")
	assert.Contains(t, report, "communication score of 74.0%")
	assert.Contains(t, report, "Payments Platform, Data Pipeline")
	assert.Contains(t, report, "- Strong in go, react")
	assert.Contains(t, report, "- Deepen system design and leadership skills")
	assert.Contains(t, report, "- Technical Skills: 82/100 (Industry average: 65)")
	assert.Contains(t, report, "Keep building on your strengths")
}

func TestComposeFeedback_ZeroValues(t *testing.T) {
	report := ComposeFeedback(types.InterviewMetrics{}, nil, types.SkillAssessment{}, nil)

	assert.Contains(t, report, "# Interview Summary Report: Fair Performance")
	assert.Contains(t, report, "**Junior** (0-2 years experience)")
	assert.Contains(t, report, "various development projects")
	assert.Contains(t, report, "- Demonstrated foundational skills")
	assert.Contains(t, report, "- Keep building projects and practice problem solving")
	assert.Contains(t, report, "- No comparison data available")
}

func TestComposeFeedback_ContainsAllSections(t *testing.T) {
	report := ComposeFeedback(types.InterviewMetrics{}, nil, types.SkillAssessment{}, nil)

	for _, heading := range []string{
		"## Overall Performance",
		"## Technical Assessment",
		"## Key Strengths",
		"## Recommendations for Growth",
		"## Industry Comparison",
	} {
		assert.Contains(t, report, heading)
	}
}
