package extraction

import (
	"context"
	"encoding/json"
	"fmt"

	_ "embed"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/interview-coach/internal/inference"
	"github.com/jonathan/interview-coach/internal/types"
)

// maxPromptResumeChars bounds how much resume text goes into the prompt.
const maxPromptResumeChars = 3000

// maxModelProjects caps how many projects the model tier returns.
const maxModelProjects = 5

//go:embed projects_schema.json
var projectsSchemaJSON string

var projectsSchema = gojsonschema.NewStringLoader(projectsSchemaJSON)

// TextGenerator is the slice of the inference gateway the model tier needs.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, opts inference.GenerateOptions) (string, error)
}

// ModelStrategy asks the remote text model to extract projects as a JSON
// array, then validates the payload against an embedded JSON Schema before
// trusting it. Any gateway or parse failure advances the chain.
type ModelStrategy struct {
	Client TextGenerator
}

// Name implements Strategy.
func (s *ModelStrategy) Name() string { return "model" }

// Extract implements Strategy.
func (s *ModelStrategy) Extract(ctx context.Context, resumeText string) ([]types.Project, error) {
	prompt := buildExtractionPrompt(resumeText)

	raw, err := s.Client.GenerateText(ctx, prompt, inference.GenerateOptions{
		MaxNewTokens: 1024,
		Temperature:  0.1,
	})
	if err != nil {
		return nil, err
	}

	span := inference.FirstJSONArray(inference.CleanJSONBlock(raw))
	if span == "" {
		return nil, fmt.Errorf("no JSON array in model response")
	}

	result, err := gojsonschema.Validate(projectsSchema, gojsonschema.NewStringLoader(span))
	if err != nil {
		return nil, fmt.Errorf("failed to validate model payload: %w", err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("model payload failed schema validation: %v", result.Errors())
	}

	var candidates []modelProject
	if err := json.Unmarshal([]byte(span), &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse model payload: %w", err)
	}

	var projects []types.Project
	for _, c := range candidates {
		if c.Title == "" || c.Description == "" {
			continue
		}
		projects = append(projects, types.Project{
			Title:        truncate(c.Title, types.MaxProjectTitleLen),
			Description:  truncate(c.Description, types.MaxProjectDescriptionLen),
			Technologies: dedupeLower(c.Technologies),
			Achievements: c.Achievements,
		})
	}

	return validProjects(projects, maxModelProjects), nil
}

// modelProject is the wire shape the prompt asks the model for.
type modelProject struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Achievements []string `json:"achievements"`
}

// buildExtractionPrompt constructs the bounded extraction prompt.
func buildExtractionPrompt(resumeText string) string {
	bounded := truncate(resumeText, maxPromptResumeChars)
	return fmt.Sprintf(`Extract all technical projects from this resume. Return ONLY a JSON array of project objects with: title, description, technologies[], achievements[].

Resume:
%s

Format: [{"title": "...", "description": "...", "technologies": ["...", "..."], "achievements": ["..."]}]`, bounded)
}
