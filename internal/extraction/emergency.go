package extraction

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

// maxEmergencyProjects caps how many projects the emergency tier returns.
const maxEmergencyProjects = 3

var paragraphSplitRe = regexp.MustCompile(`\n\s*\n`)

// EmergencyStrategy is the last tier: any paragraph long enough and
// mentioning at least two technology keywords is treated as a project.
// Better a rough project list than none at all.
type EmergencyStrategy struct{}

// Name implements Strategy.
func (s *EmergencyStrategy) Name() string { return "emergency" }

// Extract implements Strategy.
func (s *EmergencyStrategy) Extract(_ context.Context, resumeText string) ([]types.Project, error) {
	var projects []types.Project
	seenTitles := make(map[string]bool)

	for _, para := range paragraphSplitRe.Split(resumeText, -1) {
		if len(projects) == maxEmergencyProjects {
			break
		}
		if len(para) <= 80 {
			continue
		}

		techWords := emergencyTechRe.FindAllString(para, -1)
		if len(techWords) < 2 {
			continue
		}

		firstLine := strings.TrimSpace(strings.SplitN(para, "\n", 2)[0])
		title := fmt.Sprintf("Project %d", len(projects)+1)
		if len(firstLine) > 10 {
			title = truncate(firstLine, 60)
		}
		if seenTitles[title] {
			continue
		}

		candidate := types.Project{
			Title:        title,
			Description:  truncate(para, 400),
			Technologies: dedupeLower(techWords),
			Achievements: extractAchievements(para),
		}
		if !candidate.Validate() {
			continue
		}
		seenTitles[title] = true
		projects = append(projects, candidate)
	}

	return projects, nil
}
