package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	t.Run("normalizes line endings and spacing", func(t *testing.T) {
		input := "Line one   with   spaces   \r\nLine two\r\n\r\n\r\n\r\nLine three"
		want := "Line one with spaces\nLine two\n\nLine three"
		assert.Equal(t, want, CleanText(input))
	})

	t.Run("preserves bullet markers", func(t *testing.T) {
		input := "PROJECTS\n• Built   an API\n- Shipped a CLI\n* Wrote docs"
		got := CleanText(input)
		assert.Contains(t, got, "• Built   an API")
		assert.Contains(t, got, "- Shipped a CLI")
		assert.Contains(t, got, "* Wrote docs")
	})

	t.Run("keeps paragraph boundaries", func(t *testing.T) {
		input := "First paragraph.\n\n\n\nSecond paragraph."
		got := CleanText(input)
		assert.Equal(t, 1, strings.Count(got, "\n\n"), "exactly one blank line survives")
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", CleanText(""))
		assert.Equal(t, "", CleanText("   \n\t\n  "))
	})
}

func TestLooksLikeHTML(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"html tag", "<html><body>resume</body></html>", true},
		{"doctype", "<!DOCTYPE html>\n<html>...", true},
		{"body only fragment", "<body><p>hi</p></body>", true},
		{"plain text", "John Doe\nSoftware Engineer\nPROJECTS", false},
		{"markdown-ish text", "# Resume\n- bullet", false},
		{"html mention deep in text", strings.Repeat("a", 300) + "<html>", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksLikeHTML(tt.content))
		})
	}
}

func TestFromHTML(t *testing.T) {
	html := `<html><head><style>body { color: red; }</style></head><body>
		<nav>Home | About | Contact</nav>
		<h1>Jane Doe</h1>
		<p>Software Engineer with backend focus</p>
		<h2>Projects</h2>
		<ul>
			<li>Built a REST API with Docker and Postgres</li>
			<li>Developed a dashboard in React</li>
		</ul>
		<footer>© 2025 Jane Doe</footer>
	</body></html>`

	text, err := FromHTML(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Software Engineer with backend focus")
	assert.Contains(t, text, "• Built a REST API with Docker and Postgres")
	assert.Contains(t, text, "• Developed a dashboard in React")
	assert.NotContains(t, text, "Home | About", "navigation chrome is dropped")
	assert.NotContains(t, text, "color: red", "styles are dropped")
	assert.NotContains(t, text, "© 2025", "footer is dropped")
}

func TestFromHTML_NestedDivs(t *testing.T) {
	html := `<html><body><div><div><p>Only once</p></div></div></body></html>`

	text, err := FromHTML(html)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(text, "Only once"), "container divs must not duplicate text")
}

func TestFromHTML_NoBody(t *testing.T) {
	text, err := FromHTML(`<p>fragment resume text</p>`)
	require.NoError(t, err)
	assert.Contains(t, text, "fragment resume text")
}
