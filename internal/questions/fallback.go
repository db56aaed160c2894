package questions

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

var listMarkerRe = regexp.MustCompile(`^[0-9.\-)\s]+`)

// GeneralFallback returns the fixed question set used when no projects
// could be extracted. Order and wording are stable; tests and the guarantee
// wrapper depend on that.
func GeneralFallback() []types.InterviewQuestion {
	return []types.InterviewQuestion{
		{
			ID:             "local-fallback-1",
			ProjectTitle:   "General",
			QuestionText:   "Tell me about a recent project you built. What problem did it solve?",
			Category:       types.CategoryTechnical,
			ExpectedPoints: []string{"Problem statement", "Your role", "Key technologies"},
		},
		{
			ID:             "local-fallback-2",
			ProjectTitle:   "General",
			QuestionText:   "What technical challenge did you face in your projects and how did you solve it?",
			Category:       types.CategoryProblemSolving,
			ExpectedPoints: []string{"Challenge", "Approach", "Result"},
		},
		{
			ID:             "local-fallback-3",
			ProjectTitle:   "General",
			QuestionText:   "How do you evaluate trade-offs when designing an architecture?",
			Category:       types.CategoryArchitecture,
			ExpectedPoints: []string{"Trade-offs", "Scalability", "Performance"},
		},
		{
			ID:             "local-fallback-4",
			ProjectTitle:   "General",
			QuestionText:   "What would you improve in a past project if you rewrote it today?",
			Category:       types.CategoryBehavioral,
			ExpectedPoints: []string{"Learnings", "Refactor ideas", "Impact"},
		},
	}
}

// LocalTemplates returns the deterministic four-question set for one
// project, used when remote generation yields nothing for it.
func LocalTemplates(project types.Project) []types.InterviewQuestion {
	slug := types.Slugify(project.Title)
	return []types.InterviewQuestion{
		{
			ID:             fmt.Sprintf("%s-local-1", slug),
			ProjectTitle:   project.Title,
			QuestionText:   fmt.Sprintf("Explain the core problem your project %q solves.", project.Title),
			Category:       types.CategoryTechnical,
			ExpectedPoints: []string{"Problem definition", "Use case", "Impact"},
		},
		{
			ID:             fmt.Sprintf("%s-local-2", slug),
			ProjectTitle:   project.Title,
			QuestionText:   fmt.Sprintf("Walk me through the architecture of %q.", project.Title),
			Category:       types.CategoryArchitecture,
			ExpectedPoints: []string{"Tech stack", "Flow", "Design decisions"},
		},
		{
			ID:             fmt.Sprintf("%s-local-3", slug),
			ProjectTitle:   project.Title,
			QuestionText:   fmt.Sprintf("What was the biggest challenge while building %q?", project.Title),
			Category:       types.CategoryProblemSolving,
			ExpectedPoints: []string{"Obstacle", "Your solution", "Outcome"},
		},
		{
			ID:             fmt.Sprintf("%s-local-4", slug),
			ProjectTitle:   project.Title,
			QuestionText:   fmt.Sprintf("If you had more time, what would you improve in %q?", project.Title),
			Category:       types.CategoryImprovement,
			ExpectedPoints: []string{"Optimization ideas", "Better tech choices", "Performance"},
		},
	}
}

// Dedupe removes questions whose trimmed, lowercased text repeats an
// earlier entry, keeping first occurrence and original order. Idempotent.
func Dedupe(qs []types.InterviewQuestion) []types.InterviewQuestion {
	seen := make(map[string]bool)
	out := make([]types.InterviewQuestion, 0, len(qs))
	for _, q := range qs {
		key := strings.ToLower(strings.TrimSpace(q.QuestionText))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, q)
	}
	return out
}
