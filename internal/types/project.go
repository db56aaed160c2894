// Package types provides type definitions for structured data used throughout the interview-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"regexp"
	"strings"
)

// Limits for project fields enforced during extraction.
const (
	MinProjectTitleLen       = 3
	MaxProjectTitleLen       = 100
	MinProjectDescriptionLen = 10
	MaxProjectDescriptionLen = 500
)

// Project represents a single work item extracted from a resume.
// Instances are value objects: once produced by the extractor they are never mutated.
type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"` // deduplicated, lowercase
	Duration     string   `json:"duration,omitempty"`
	Role         string   `json:"role,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// invalidProjectPatterns reject candidates that are really education or
// skills-section boilerplate rather than projects.
var invalidProjectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)cgpa|gpa|percentage|grade|university|college|school|degree|b\.?tech|b\.?e\b|m\.?tech|phd`),
	regexp.MustCompile(`(?i)^\s*(skills?|languages?|tools?|frameworks?|certifications?|awards?|hackathon|competition)\b`),
}

// Validate reports whether the project satisfies the structural invariants:
// title length 3-100, description length >= 10, and neither field matching
// an invalid-section pattern. Candidates failing validation are dropped by
// the extractor, never surfaced as errors.
func (p *Project) Validate() bool {
	title := strings.TrimSpace(p.Title)
	if len(title) < MinProjectTitleLen || len(title) > MaxProjectTitleLen {
		return false
	}
	if len(strings.TrimSpace(p.Description)) < MinProjectDescriptionLen {
		return false
	}
	for _, pattern := range invalidProjectPatterns {
		if pattern.MatchString(p.Title) || pattern.MatchString(p.Description) {
			return false
		}
	}
	return true
}

// TechnologySet returns the deduplicated set of technologies across projects,
// preserving first-seen order.
func TechnologySet(projects []Project) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range projects {
		for _, tech := range p.Technologies {
			normalized := strings.ToLower(strings.TrimSpace(tech))
			if normalized == "" || seen[normalized] {
				continue
			}
			seen[normalized] = true
			out = append(out, normalized)
		}
	}
	return out
}
