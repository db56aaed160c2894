package extraction

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmergencyStrategy_TechParagraphBecomesProject(t *testing.T) {
	resume := strings.Join([]string{
		"E-commerce Platform Work\nDeveloped the backend in python with a mongodb datastore and a rest api layer for orders.",
		"I also enjoy hiking and photography on weekends with friends around the city parks and nearby trails.",
	}, "\n\n")

	s := &EmergencyStrategy{}

	projects, err := s.Extract(context.Background(), resume)
	require.NoError(t, err)
	require.Len(t, projects, 1, "only the technology paragraph qualifies")

	p := projects[0]
	assert.Equal(t, "E-commerce Platform Work", p.Title)
	assert.Contains(t, p.Technologies, "python")
	assert.Contains(t, p.Technologies, "mongodb")
	assert.NotEmpty(t, p.Achievements)
}

func TestEmergencyStrategy_RequiresTwoTechMentions(t *testing.T) {
	resume := "Shipping Project Overview\nWorked on a shipping project handling customer orders and invoices with python scripts for many months."

	s := &EmergencyStrategy{}

	projects, err := s.Extract(context.Background(), resume)
	require.NoError(t, err)
	assert.Empty(t, projects, "one technology mention is not enough")
}

func TestEmergencyStrategy_CapsAtThree(t *testing.T) {
	var paras []string
	for i := 0; i < 5; i++ {
		paras = append(paras, fmt.Sprintf(
			"Side Project Number %d\nBuilt a backend service in python with docker containers and a sql database behind an api.", i))
	}

	s := &EmergencyStrategy{}

	projects, err := s.Extract(context.Background(), strings.Join(paras, "\n\n"))
	require.NoError(t, err)
	assert.Len(t, projects, 3)
}

func TestEmergencyStrategy_DedupesTitles(t *testing.T) {
	para := "Recommendation Engine\nCreated a recommendation engine using python and docker that improved click-through rates noticeably."
	resume := para + "\n\n" + para

	s := &EmergencyStrategy{}

	projects, err := s.Extract(context.Background(), resume)
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}

func TestEmergencyStrategy_GenericTitleForShortFirstLine(t *testing.T) {
	resume := "Work\nDeveloped a backend service in python with docker containers and a sql database behind a rest api gateway."

	s := &EmergencyStrategy{}

	projects, err := s.Extract(context.Background(), resume)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Project 1", projects[0].Title)
}
