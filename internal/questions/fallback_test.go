package questions

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/types"
)

func TestGeneralFallback(t *testing.T) {
	qs := GeneralFallback()
	require.Len(t, qs, 4)

	for i, q := range qs {
		assert.Equal(t, fmt.Sprintf("local-fallback-%d", i+1), q.ID)
		assert.Equal(t, "General", q.ProjectTitle)
		assert.NotEmpty(t, q.QuestionText)
		assert.NotEmpty(t, q.ExpectedPoints)
	}
	assert.Equal(t, types.CategoryTechnical, qs[0].Category)
	assert.Equal(t, types.CategoryProblemSolving, qs[1].Category)
	assert.Equal(t, types.CategoryArchitecture, qs[2].Category)
	assert.Equal(t, types.CategoryBehavioral, qs[3].Category)
}

func TestLocalTemplates(t *testing.T) {
	project := types.Project{Title: "Chat Application"}

	qs := LocalTemplates(project)
	require.Len(t, qs, 4)

	for i, q := range qs {
		assert.Equal(t, fmt.Sprintf("chat-application-local-%d", i+1), q.ID)
		assert.Equal(t, "Chat Application", q.ProjectTitle)
		assert.Contains(t, q.QuestionText, "Chat Application")
		assert.NotEmpty(t, q.ExpectedPoints)
	}

	categories := []types.QuestionCategory{
		types.CategoryTechnical,
		types.CategoryArchitecture,
		types.CategoryProblemSolving,
		types.CategoryImprovement,
	}
	for i, want := range categories {
		assert.Equal(t, want, qs[i].Category)
	}
}

func TestDedupe(t *testing.T) {
	qs := []types.InterviewQuestion{
		{ID: "a", QuestionText: "What does it do?"},
		{ID: "b", QuestionText: "  what does it do?  "},
		{ID: "c", QuestionText: "How does it scale?"},
	}

	out := Dedupe(qs)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID, "first occurrence wins")
	assert.Equal(t, "c", out[1].ID)

	assert.Equal(t, out, Dedupe(out), "idempotent")
}

func TestDedupe_Empty(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
}
