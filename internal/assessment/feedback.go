package assessment

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

// ComposeFeedback renders the final markdown summary report. Every input may
// be zero-valued or empty; the template substitutes neutral defaults rather
// than failing, so completion always yields a report.
func ComposeFeedback(metrics types.InterviewMetrics, comparison []types.ComparisonData, skill types.SkillAssessment, projects []types.Project) string {
	rating := metrics.OverallRating
	if rating == "" {
		rating = types.RatingFair
	}
	if skill.Level == "" {
		skill.Level = types.LevelJunior
		skill.YearsEstimate = "0-2 years"
	}

	projectsSummary := "various development projects"
	if len(projects) > 0 {
		titles := make([]string, 0, len(projects))
		for _, p := range projects {
			titles = append(titles, p.Title)
		}
		projectsSummary = strings.Join(titles, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Interview Summary Report: %s Performance\n\n", rating)

	fmt.Fprintf(&b, "## Overall Performance\n")
	fmt.Fprintf(&b,
		"Your interview performance was rated as %s. During the %d-minute session, you maintained a confidence level of %d%% and demonstrated a skill level of **%s** (%s experience).\n\n",
		rating,
		int(math.Round(metrics.TotalDuration/60)),
		int(math.Round(metrics.ConfidenceLevel)),
		skill.Level,
		skill.YearsEstimate,
	)

	fmt.Fprintf(&b, "## Technical Assessment\n")
	fmt.Fprintf(&b,
		"Your technical depth scored %.1f%% with a communication score of %.1f%%. You discussed projects including: %s.\n\n",
		metrics.TechnicalDepth,
		metrics.CommunicationScore,
		projectsSummary,
	)

	fmt.Fprintf(&b, "## Key Strengths\n")
	writeBullets(&b, skill.Strengths, "Demonstrated foundational skills")
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Recommendations for Growth\n")
	writeBullets(&b, skill.Recommendations, "Keep building projects and practice problem solving")
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Industry Comparison\n")
	if len(comparison) == 0 {
		b.WriteString("- No comparison data available\n")
	} else {
		for _, c := range comparison {
			fmt.Fprintf(&b, "- %s: %d/100 (Industry average: %d)\n", c.Category, c.UserScore, c.IndustryAverage)
		}
	}
	b.WriteString("\n---\n\n")
	b.WriteString("Keep building on your strengths and focus on measurable impact in your answers (metrics, performance, cost/time improvements).")

	return b.String()
}

func writeBullets(b *strings.Builder, items []string, fallback string) {
	if len(items) == 0 {
		items = []string{fallback}
	}
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}
