package extraction

import (
	"context"
	"regexp"
	"strings"

	"github.com/jonathan/interview-coach/internal/ingestion"
	"github.com/jonathan/interview-coach/internal/types"
)

// maxStructuralProjects caps how many projects the structural tier returns.
const maxStructuralProjects = 4

var (
	projectsHeadingRe = regexp.MustCompile(`(?i)^\s*(?:technical |personal |academic |key )?projects?\s*:?\s*$`)
	majorHeadingRe    = regexp.MustCompile(`(?i)^\s*(education|skills?|experience|work experience|certifications?)\s*:?\s*$`)
	bulletSplitRe     = regexp.MustCompile(`\n\s*[•\-*]\s*|\n\s*\d+\.\s*`)

	// Generic title+body patterns scanned over the whole text: an explicit
	// "Title:"/"Project:" prefix, and a short capitalized line followed by
	// up to five non-bullet lines.
	labeledTitleRe     = regexp.MustCompile(`(?im)^(?:title|project):\s*([^\n]+)\n((?:[^•\n]*\n?){1,5})`)
	capitalizedTitleRe = regexp.MustCompile(`(?m)^([A-Z][^•\n]{10,80})\n((?:[^•\n]+\n?){1,5})`)
)

// StructuralStrategy extracts projects from the document structure: the
// PROJECTS section split into bullet candidates, plus generic title+body
// patterns anywhere in the text. Purely local and deterministic.
type StructuralStrategy struct{}

// Name implements Strategy.
func (s *StructuralStrategy) Name() string { return "structural" }

// Extract implements Strategy.
func (s *StructuralStrategy) Extract(_ context.Context, resumeText string) ([]types.Project, error) {
	clean := ingestion.CleanText(resumeText)

	var candidates []types.Project
	for _, section := range projectSections(clean) {
		if candidate, ok := parseSection(section); ok {
			candidates = append(candidates, candidate)
		}
	}

	return validProjects(candidates, maxStructuralProjects), nil
}

// projectSections collects candidate section texts: bullets under a
// PROJECTS heading first, then generic title+body matches.
func projectSections(text string) []string {
	var sections []string

	if block := headingBlock(text); block != "" {
		for _, bullet := range bulletSplitRe.Split(block, -1) {
			if len(strings.TrimSpace(bullet)) > 50 {
				sections = append(sections, bullet)
			}
		}
	}

	for _, pattern := range []*regexp.Regexp{labeledTitleRe, capitalizedTitleRe} {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			title := strings.TrimSpace(match[1])
			body := strings.TrimSpace(match[2])
			if len(title) > 5 && len(body) > 20 {
				sections = append(sections, title+"\n"+body)
			}
		}
	}

	var filtered []string
	for _, section := range sections {
		if len(strings.TrimSpace(section)) > 30 {
			filtered = append(filtered, section)
		}
	}
	return filtered
}

// headingBlock returns the text between a PROJECTS heading and the next
// major section heading (or end of text), empty if no heading exists.
func headingBlock(text string) string {
	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		if projectsHeadingRe.MatchString(line) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return ""
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if majorHeadingRe.MatchString(lines[i]) {
			end = i
			break
		}
	}
	return strings.Join(lines[start:end], "\n")
}

// parseSection builds a candidate project from one section text: first
// line (stripped of bullet markers) is the title, the rest joined is the
// description, technologies and achievements come from the vocabulary scan.
func parseSection(section string) (types.Project, bool) {
	var lines []string
	for _, line := range strings.Split(section, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return types.Project{}, false
	}

	title := strings.TrimSpace(bulletPrefixRe.ReplaceAllString(lines[0], ""))
	description := strings.TrimSpace(strings.Join(lines[1:], " "))
	if description == "" {
		description = title
	}

	return types.Project{
		Title:        truncate(title, types.MaxProjectTitleLen),
		Description:  truncate(description, types.MaxProjectDescriptionLen),
		Technologies: matchTechnologies(description),
		Achievements: extractAchievements(description),
	}, true
}
