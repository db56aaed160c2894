package questions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/inference"
	"github.com/jonathan/interview-coach/internal/types"
)

type stubTextGenerator struct {
	response string
	err      error
}

func (s *stubTextGenerator) GenerateText(_ context.Context, _ string, _ inference.GenerateOptions) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

type panickyTextGenerator struct{}

func (panickyTextGenerator) GenerateText(_ context.Context, _ string, _ inference.GenerateOptions) (string, error) {
	panic("gateway blew up")
}

func chatProject() types.Project {
	return types.Project{
		Title:        "Chat Application",
		Description:  "Real-time chat with websocket rooms.",
		Technologies: []string{"react", "node"},
	}
}

func TestGenerator_NoProjects(t *testing.T) {
	g := New(nil, nil)
	assert.Equal(t, GeneralFallback(), g.Generate(context.Background(), nil))
}

func TestGenerator_NilClientUsesLocalTemplates(t *testing.T) {
	g := New(nil, nil)

	qs := g.Generate(context.Background(), []types.Project{
		chatProject(),
		{Title: "Portfolio Website", Description: "Static site."},
	})

	require.Len(t, qs, 8)
	for _, q := range qs {
		assert.Contains(t, q.ID, "-local-")
	}
}

func TestGenerator_CapsProjects(t *testing.T) {
	var projects []types.Project
	for i := 0; i < 5; i++ {
		projects = append(projects, types.Project{Title: fmt.Sprintf("Project Alpha %d", i)})
	}

	g := New(nil, nil)
	qs := g.Generate(context.Background(), projects)

	assert.Len(t, qs, 12, "only the first three projects contribute questions")
}

func TestGenerator_RemoteJSON(t *testing.T) {
	client := &stubTextGenerator{response: `Here you go:
[{"questionText": "How did you shard the message store across regions?", "category": "Architecture", "expectedPoints": ["Sharding", "Consistency"]}]`}

	g := New(client, nil)
	qs := g.Generate(context.Background(), []types.Project{chatProject()})

	require.Len(t, qs, 1)
	assert.Equal(t, "chat-application-1", qs[0].ID)
	assert.Equal(t, "Chat Application", qs[0].ProjectTitle)
	assert.Equal(t, "How did you shard the message store across regions?", qs[0].QuestionText)
	assert.Equal(t, types.CategoryArchitecture, qs[0].Category)
	assert.Equal(t, []string{"Sharding", "Consistency"}, qs[0].ExpectedPoints)
}

func TestGenerator_RemoteFieldDrift(t *testing.T) {
	client := &stubTextGenerator{response: `[{"question": "Why choose websockets over polling for this workload?", "type": "technical", "points": ["Latency", "Connection cost"]}]`}

	g := New(client, nil)
	qs := g.Generate(context.Background(), []types.Project{chatProject()})

	require.Len(t, qs, 1)
	assert.Equal(t, "Why choose websockets over polling for this workload?", qs[0].QuestionText)
	assert.Equal(t, types.CategoryTechnical, qs[0].Category)
	assert.Equal(t, []string{"Latency", "Connection cost"}, qs[0].ExpectedPoints)
}

func TestGenerator_RemoteUnknownCategoryNormalized(t *testing.T) {
	client := &stubTextGenerator{response: `[{"questionText": "Describe the deployment story for this chat service.", "category": "DevOps Wizardry"}]`}

	g := New(client, nil)
	qs := g.Generate(context.Background(), []types.Project{chatProject()})

	require.Len(t, qs, 1)
	assert.Equal(t, types.CategoryTechnical, qs[0].Category)
}

func TestGenerator_RemoteErrorFallsBack(t *testing.T) {
	client := &stubTextGenerator{err: errors.New("model unavailable")}

	g := New(client, nil)
	qs := g.Generate(context.Background(), []types.Project{chatProject()})

	require.Len(t, qs, 4)
	for _, q := range qs {
		assert.Contains(t, q.ID, "-local-")
	}
}

func TestGenerator_RemoteSalvage(t *testing.T) {
	client := &stubTextGenerator{response: strings.Join([]string{
		"Some questions:",
		"1. How did you handle concurrent writes to the session store?",
		"2. What tradeoffs did you make choosing mongodb over postgres here?",
	}, "\n")}

	g := New(client, nil)
	qs := g.Generate(context.Background(), []types.Project{chatProject()})

	require.Len(t, qs, 2, "short preamble line is skipped")
	assert.Contains(t, qs[0].ID, "-raw-")
	assert.Equal(t, "How did you handle concurrent writes to the session store?", qs[0].QuestionText)
	assert.Equal(t, "What tradeoffs did you make choosing mongodb over postgres here?", qs[1].QuestionText)
}

func TestGenerateGuaranteed_NeverEmpty(t *testing.T) {
	g := New(nil, nil)
	qs := g.GenerateGuaranteed(context.Background(), nil)
	assert.Equal(t, GeneralFallback(), qs)
}

func TestGenerateGuaranteed_PanicFallsBack(t *testing.T) {
	g := New(panickyTextGenerator{}, nil)

	qs := g.GenerateGuaranteed(context.Background(), []types.Project{chatProject()})
	assert.Equal(t, GeneralFallback(), qs)
}
