// Package types provides type definitions for structured data used throughout the interview-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillLevel is the coarse seniority estimate derived from the project set.
type SkillLevel string

// Seniority levels ordered from most junior to most senior.
const (
	LevelJunior SkillLevel = "Junior"
	LevelMid    SkillLevel = "Mid-Level"
	LevelSenior SkillLevel = "Senior"
	LevelLead   SkillLevel = "Lead"
)

// Rank returns the ordinal position of the level, Junior being 0.
// Unknown levels rank below Junior.
func (l SkillLevel) Rank() int {
	switch l {
	case LevelJunior:
		return 0
	case LevelMid:
		return 1
	case LevelSenior:
		return 2
	case LevelLead:
		return 3
	default:
		return -1
	}
}

// SkillAssessment estimates seniority from technology breadth and project
// complexity. It depends only on the extracted projects, not on answers.
type SkillAssessment struct {
	Level           SkillLevel `json:"level"`
	YearsEstimate   string     `json:"years_estimate"`
	Strengths       []string   `json:"strengths"`
	Recommendations []string   `json:"recommendations"`
}
