// Package types provides type definitions for structured data used throughout the interview-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"regexp"
	"strings"
)

// QuestionCategory classifies an interview question.
type QuestionCategory string

// Known question categories.
const (
	CategoryTechnical      QuestionCategory = "technical"
	CategoryArchitecture   QuestionCategory = "architecture"
	CategoryProblemSolving QuestionCategory = "problem-solving"
	CategoryImprovement    QuestionCategory = "improvement"
	CategoryBehavioral     QuestionCategory = "behavioral"
	CategoryProjectBased   QuestionCategory = "project-based"
)

// InterviewQuestion represents one generated question tied to a project.
type InterviewQuestion struct {
	ID             string           `json:"id"`
	ProjectTitle   string           `json:"project_title"`
	QuestionText   string           `json:"question_text"`
	Category       QuestionCategory `json:"category"`
	ExpectedPoints []string         `json:"expected_points"`
}

var slugStripRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a project title into a URL-safe ID prefix,
// capped at 50 characters. Empty input yields "project".
func Slugify(s string) string {
	slug := strings.ToLower(strings.TrimSpace(s))
	slug = slugStripRe.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > 50 {
		slug = slug[:50]
		slug = strings.Trim(slug, "-")
	}
	if slug == "" {
		return "project"
	}
	return slug
}
