package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Chat Application", "chat-application"},
		{"punctuation stripped", "My Cool Project!!", "my-cool-project"},
		{"mixed case and digits", "Web3 Wallet v2", "web3-wallet-v2"},
		{"leading and trailing junk", "  --Portfolio--  ", "portfolio"},
		{"empty input", "", "project"},
		{"only punctuation", "!!!", "project"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestSlugify_CapsLength(t *testing.T) {
	slug := Slugify(strings.Repeat("a", 80))
	assert.Len(t, slug, 50)

	// A dash landing exactly on the cut point is trimmed.
	slug = Slugify(strings.Repeat("abcd ", 20))
	assert.LessOrEqual(t, len(slug), 50)
	assert.False(t, strings.HasSuffix(slug, "-"))
}
