package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords_FrequencyOrder(t *testing.T) {
	text := "docker docker docker redis redis kafka"
	assert.Equal(t, []string{"docker", "redis", "kafka"}, ExtractKeywords(text))
}

func TestExtractKeywords_TieBreaksOnFirstSeen(t *testing.T) {
	text := "alpha beta alpha beta gamma"
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, ExtractKeywords(text))
}

func TestExtractKeywords_FiltersStopwordsAndShortTokens(t *testing.T) {
	text := "the api is on my api at it"
	assert.Equal(t, []string{"api"}, ExtractKeywords(text))
}

func TestExtractKeywords_Lowercases(t *testing.T) {
	assert.Equal(t, []string{"docker"}, ExtractKeywords("Docker DOCKER docker"))
}

func TestExtractKeywords_CapsAtEight(t *testing.T) {
	words := []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten"}
	got := ExtractKeywords(strings.Join(words, " "))
	assert.Len(t, got, 8)
}

func TestExtractKeywords_Empty(t *testing.T) {
	assert.Nil(t, ExtractKeywords(""))
	assert.Nil(t, ExtractKeywords("   "))
}
