package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchTechnologies(t *testing.T) {
	text := "Frontend in React and react again, backend on NODE talking to Postgres."
	assert.Equal(t, []string{"react", "node", "postgres"}, matchTechnologies(text))
}

func TestMatchTechnologies_WordBoundaries(t *testing.T) {
	// "reactive" must not count as "react".
	assert.Empty(t, matchTechnologies("a reactive systems enthusiast"))
}

func TestExtractAchievements(t *testing.T) {
	text := "Built the ingestion layer from scratch. It was great. Reduced processing time for nightly jobs. " +
		"Improved error reporting across services. Deployed the platform to production clusters. Optimized the storage format further."

	achievements := extractAchievements(text)
	assert.Len(t, achievements, 3, "capped at three")
	assert.Equal(t, "Built the ingestion layer from scratch", achievements[0])
}

func TestExtractAchievements_RequiresActionVerb(t *testing.T) {
	assert.Empty(t, extractAchievements("The weather was nice during the whole internship period in summer."))
}

func TestDedupeLower(t *testing.T) {
	got := dedupeLower([]string{"React", " react ", "NODE", "", "node"})
	assert.Equal(t, []string{"react", "node"}, got)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc", truncate("abcdef", 3))
	assert.Equal(t, "h", truncate("héllo", 2), "never splits a rune")
}
