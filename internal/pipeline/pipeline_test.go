package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/types"
)

const sampleResume = `John Doe
Software Engineer

PROJECTS
• Chat Application
Built a real-time chat application using React and Node with MongoDB for storage. Improved message delivery latency by 40%.
• Portfolio Website
Developed a personal portfolio website using Next and Tailwind. Increased recruiter engagement substantially.

EDUCATION
Some University
`

func TestPipeline_Prepare(t *testing.T) {
	p := New(nil, false, nil)

	var steps []string
	result, err := p.Prepare(context.Background(), sampleResume, PrepareOptions{
		OnProgress: func(e ProgressEvent) {
			steps = append(steps, e.Step)
			assert.NotEmpty(t, e.Message)
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{StepIngestion, StepExtraction, StepQuestions}, steps)
	require.NotEmpty(t, result.Projects)
	assert.Equal(t, "Chat Application", result.Projects[0].Title)
	assert.NotEmpty(t, result.Questions)
	assert.NotEmpty(t, result.ResumeText)
}

func TestPipeline_Prepare_HTMLInput(t *testing.T) {
	html := `<html><body>
		<h2>Projects</h2>
		<ul><li>Built a chat backend using node and mongodb handling thousands of concurrent users in production.</li></ul>
	</body></html>`

	p := New(nil, false, nil)

	result, err := p.Prepare(context.Background(), html, PrepareOptions{})
	require.NoError(t, err)
	assert.NotContains(t, result.ResumeText, "<", "tags are stripped")
	assert.NotEmpty(t, result.Questions, "question floor holds for any input")
}

func TestPipeline_Prepare_ShortResume(t *testing.T) {
	p := New(nil, false, nil)

	result, err := p.Prepare(context.Background(), "too short to mean anything", PrepareOptions{})
	require.NoError(t, err)
	assert.Empty(t, result.Projects)
	require.Len(t, result.Questions, 4, "general fallback questions")
	assert.Equal(t, "local-fallback-1", result.Questions[0].ID)
}

func TestPipeline_AnalyzeAnswer(t *testing.T) {
	p := New(nil, false, nil)
	question := types.InterviewQuestion{ID: "q1", Category: types.CategoryTechnical}

	analysis := p.AnalyzeAnswer(context.Background(), question,
		"We deployed the api with docker and for example improved latency by 30% under load.",
		types.Project{Title: "Chat Application"}, 18)

	assert.Equal(t, 18.0, analysis.ResponseTime)
	assert.Greater(t, analysis.Score, 20)
	assert.NotEmpty(t, analysis.Keywords)
}

func TestPipeline_Complete(t *testing.T) {
	p := New(nil, false, nil)

	analyses := []types.AnswerAnalysis{
		{Score: 80, TechnicalAccuracy: 75, CommunicationClarity: 75, Confidence: 70, ResponseTime: 20, Keywords: []string{"docker", "api"}},
		{Score: 60, TechnicalAccuracy: 75, CommunicationClarity: 45, Confidence: 50, ResponseTime: 15, Keywords: []string{"react"}},
	}
	projects := []types.Project{
		{Title: "Chat Application", Description: "Real-time chat.", Technologies: []string{"react", "node"}},
	}

	report := p.Complete(analyses, projects)

	assert.Equal(t, 35.0, report.Metrics.TotalDuration)
	assert.Equal(t, types.RatingGood, report.Metrics.OverallRating)
	assert.Equal(t, types.LevelJunior, report.Skill.Level)
	require.Len(t, report.Comparison, 4)
	assert.Contains(t, report.Feedback, "# Interview Summary Report")
	assert.Equal(t, analyses, report.Analyses)
}

func TestPipeline_Complete_Empty(t *testing.T) {
	p := New(nil, false, nil)

	report := p.Complete(nil, nil)

	assert.Equal(t, types.RatingPoor, report.Metrics.OverallRating)
	assert.Equal(t, types.LevelJunior, report.Skill.Level)
	assert.True(t, strings.HasPrefix(report.Feedback, "# Interview Summary Report"))
}
