// Package questions generates per-project interview questions.
//
// Generation prefers the remote text model and degrades to deterministic
// local templates per project; with no projects at all a fixed general
// question set is the floor. The package guarantees a non-empty result to
// its callers.
package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/interview-coach/internal/inference"
	"github.com/jonathan/interview-coach/internal/logger"
	"github.com/jonathan/interview-coach/internal/types"
)

// maxProjects bounds how many projects get their own question set.
const maxProjects = 3

// questionsPerProject is how many questions each project contributes.
const questionsPerProject = 4

// TextGenerator is the slice of the inference gateway this package needs.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, opts inference.GenerateOptions) (string, error)
}

// Generator produces interview questions for extracted projects.
type Generator struct {
	client TextGenerator
	logger *zap.Logger
}

// New creates a Generator. A nil client skips remote generation and every
// project gets local template questions.
func New(client TextGenerator, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{client: client, logger: logger}
}

// Generate returns questions for the first three projects, deduplicated by
// normalized question text. Non-empty input yields a non-empty result:
// every project falls back to local templates when the remote attempt
// produces nothing.
func (g *Generator) Generate(ctx context.Context, projects []types.Project) []types.InterviewQuestion {
	if len(projects) == 0 {
		return GeneralFallback()
	}

	if len(projects) > maxProjects {
		projects = projects[:maxProjects]
	}

	// Per-project generation is independent; fan out and merge in project
	// order so results stay deterministic.
	perProject := make([][]types.InterviewQuestion, len(projects))
	eg, gctx := errgroup.WithContext(ctx)
	for i, project := range projects {
		eg.Go(func() error {
			perProject[i] = g.forProject(gctx, project)
			return nil
		})
	}
	_ = eg.Wait() // goroutines handle their own fallbacks and never error

	var combined []types.InterviewQuestion
	for _, qs := range perProject {
		combined = append(combined, qs...)
	}
	return Dedupe(combined)
}

// GenerateGuaranteed never returns an empty list and never panics outward,
// whatever the gateway does.
func (g *Generator) GenerateGuaranteed(ctx context.Context, projects []types.Project) (result []types.InterviewQuestion) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("question generation panicked, using general fallback", zap.Any("panic", r))
			result = GeneralFallback()
		}
	}()

	result = g.Generate(ctx, projects)
	if len(result) == 0 {
		result = GeneralFallback()
	}
	return result
}

// forProject returns exactly one project's questions: the remote attempt
// when it yields anything, local templates otherwise.
func (g *Generator) forProject(ctx context.Context, project types.Project) []types.InterviewQuestion {
	if g.client != nil {
		produced, err := g.remote(ctx, project)
		if err != nil {
			g.logger.Warn("remote question generation failed",
				zap.String("project", project.Title),
				zap.Error(err),
			)
		}
		if len(produced) > 0 {
			return produced
		}
	}
	return LocalTemplates(project)
}

// remote asks the text model for four questions as a JSON array. When the
// response contains no parseable array, a line-splitting heuristic salvages
// plain-text question lists.
func (g *Generator) remote(ctx context.Context, project types.Project) ([]types.InterviewQuestion, error) {
	prompt := buildQuestionPrompt(project)

	raw, err := g.client.GenerateText(ctx, prompt, inference.GenerateOptions{
		MaxNewTokens: 400,
		Temperature:  0.25,
	})
	if err != nil {
		return nil, err
	}

	text := inference.CleanJSONBlock(raw)
	slug := types.Slugify(project.Title)

	span := inference.FirstJSONArray(text)
	if span == "" {
		g.logger.Debug("no JSON array in question response, salvaging lines",
			zap.String("project", project.Title),
			zap.String("response", logger.Truncate(text, 200)),
		)
	}
	if span != "" {
		var entries []remoteQuestion
		if err := json.Unmarshal([]byte(span), &entries); err == nil && len(entries) > 0 {
			var out []types.InterviewQuestion
			for i, entry := range entries {
				out = append(out, types.InterviewQuestion{
					ID:             fmt.Sprintf("%s-%d", slug, i+1),
					ProjectTitle:   project.Title,
					QuestionText:   entry.text(),
					Category:       normalizeCategory(entry.category()),
					ExpectedPoints: entry.points(),
				})
			}
			return out, nil
		}
	}

	return salvageLines(text, slug, project.Title), nil
}

// salvageLines extracts up to four question-looking lines from plain text.
func salvageLines(text, slug, projectTitle string) []types.InterviewQuestion {
	var out []types.InterviewQuestion
	for i, line := range strings.Split(text, "\n") {
		if len(out) == questionsPerProject {
			break
		}
		line = strings.TrimSpace(listMarkerRe.ReplaceAllString(strings.TrimSpace(line), ""))
		if len(line) <= 20 {
			continue
		}
		out = append(out, types.InterviewQuestion{
			ID:           fmt.Sprintf("%s-raw-%d", slug, i+1),
			ProjectTitle: projectTitle,
			QuestionText: line,
			Category:     types.CategoryTechnical,
		})
	}
	return out
}

// remoteQuestion tolerates the field-name drift models exhibit.
type remoteQuestion struct {
	QuestionText   string   `json:"questionText"`
	Question       string   `json:"question"`
	Prompt         string   `json:"prompt"`
	Category       string   `json:"category"`
	Type           string   `json:"type"`
	ExpectedPoints []string `json:"expectedPoints"`
	Points         []string `json:"points"`
}

func (q *remoteQuestion) text() string {
	for _, candidate := range []string{q.QuestionText, q.Question, q.Prompt} {
		if strings.TrimSpace(candidate) != "" {
			return strings.TrimSpace(candidate)
		}
	}
	return "No question"
}

func (q *remoteQuestion) category() string {
	if q.Category != "" {
		return q.Category
	}
	return q.Type
}

func (q *remoteQuestion) points() []string {
	if len(q.ExpectedPoints) > 0 {
		return q.ExpectedPoints
	}
	return q.Points
}

// normalizeCategory maps free-form model output onto the known categories.
func normalizeCategory(raw string) types.QuestionCategory {
	switch types.QuestionCategory(strings.ToLower(strings.TrimSpace(raw))) {
	case types.CategoryTechnical, types.CategoryArchitecture, types.CategoryProblemSolving,
		types.CategoryImprovement, types.CategoryBehavioral, types.CategoryProjectBased:
		return types.QuestionCategory(strings.ToLower(strings.TrimSpace(raw)))
	default:
		return types.CategoryTechnical
	}
}

// buildQuestionPrompt constructs the per-project generation prompt. At most
// six technologies keep the prompt focused.
func buildQuestionPrompt(project types.Project) string {
	techs := project.Technologies
	if len(techs) > 6 {
		techs = techs[:6]
	}
	return fmt.Sprintf(`Generate 4 concise interview questions for the following project. Return ONLY a JSON array of objects with keys: questionText, category, expectedPoints.

Project: %s
Description: %s
Technologies: %s`, project.Title, project.Description, strings.Join(techs, ", "))
}
