package assessment

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

var seniorRoleRe = regexp.MustCompile(`(?i)lead|senior|architect`)

// levelProfile is the fixed advice attached to one seniority level.
type levelProfile struct {
	years           string
	strengths       []string
	recommendations []string
}

var levelProfiles = map[types.SkillLevel]levelProfile{
	types.LevelLead: {
		years:           "7+ years",
		strengths:       []string{"Extensive technology stack", "Complex project experience", "Leadership"},
		recommendations: []string{"Focus on strategic decisions and mentoring"},
	},
	types.LevelSenior: {
		years:           "4-7 years",
		strengths:       []string{"Strong technical foundation", "Diverse projects"},
		recommendations: []string{"Deepen system design and leadership skills"},
	},
	types.LevelMid: {
		years:           "2-4 years",
		strengths:       []string{"Solid project experience", "Growing expertise"},
		recommendations: []string{"Expand architecture knowledge and scale-up experience"},
	},
	types.LevelJunior: {
		years:           "0-2 years",
		strengths:       []string{"Foundation skills", "Eagerness to learn"},
		recommendations: []string{"Build more portfolio projects and focus on core CS concepts"},
	},
}

// AssessSkillLevel estimates seniority from the extracted projects alone.
// Technology breadth and an average per-project complexity score select the
// level; the returned strengths lead with the candidate's top technologies.
func AssessSkillLevel(projects []types.Project) types.SkillAssessment {
	if len(projects) == 0 {
		return types.SkillAssessment{
			Level:           types.LevelJunior,
			YearsEstimate:   "0-2 years",
			Strengths:       []string{"Basic foundation"},
			Recommendations: []string{"Build more projects"},
		}
	}

	techCount := len(types.TechnologySet(projects))
	avgComplexity := averageComplexity(projects)

	level := types.LevelJunior
	switch {
	case techCount >= 15 && avgComplexity >= 3.5:
		level = types.LevelLead
	case techCount >= 10 && avgComplexity >= 2.5:
		level = types.LevelSenior
	case techCount >= 6 && avgComplexity >= 2:
		level = types.LevelMid
	}

	profile := levelProfiles[level]
	strengths := profile.strengths
	if top := topTechnologies(projects, 3); len(top) > 0 {
		strengths = append([]string{fmt.Sprintf("Strong in %s", strings.Join(top, ", "))}, profile.strengths...)
	}

	return types.SkillAssessment{
		Level:           level,
		YearsEstimate:   profile.years,
		Strengths:       strengths,
		Recommendations: profile.recommendations,
	}
}

// averageComplexity scores each project 1-5: one point for baseline, plus one
// each for a broad tech list, a substantial description, stated achievements,
// and a senior-sounding role.
func averageComplexity(projects []types.Project) float64 {
	var sum float64
	for _, p := range projects {
		score := 1.0
		if len(p.Technologies) > 5 {
			score++
		}
		if len(p.Description) > 200 {
			score++
		}
		if len(p.Achievements) > 0 {
			score++
		}
		if seniorRoleRe.MatchString(p.Role) {
			score++
		}
		sum += score
	}
	return sum / float64(len(projects))
}

// topTechnologies returns the n most frequently mentioned technologies
// across all projects, ties resolving in first-seen order.
func topTechnologies(projects []types.Project, n int) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	for _, p := range projects {
		for _, tech := range p.Technologies {
			if _, ok := counts[tech]; !ok {
				firstSeen[tech] = order
				order++
			}
			counts[tech]++
		}
	}

	techs := make([]string, 0, len(counts))
	for tech := range counts {
		techs = append(techs, tech)
	}
	sort.Slice(techs, func(i, j int) bool {
		if counts[techs[i]] != counts[techs[j]] {
			return counts[techs[i]] > counts[techs[j]]
		}
		return firstSeen[techs[i]] < firstSeen[techs[j]]
	})

	if len(techs) > n {
		techs = techs[:n]
	}
	return techs
}
