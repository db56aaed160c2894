package extraction

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// techVocabulary is the fixed list of technology names recognized when
// populating Project.Technologies from free text.
var techVocabulary = []string{
	"react", "node", "python", "java", "javascript", "typescript", "mongodb",
	"sql", "postgres", "mysql", "docker", "kubernetes", "aws", "azure", "gcp",
	"express", "next", "vue", "angular", "django", "flask", "spring", "fastapi",
	"graphql", "rest", "api", "html", "css", "tailwind", "bootstrap", "git",
	"github", "jenkins", "ml", "ai", "tensorflow", "pytorch", "xgboost",
	"pandas", "numpy",
}

var (
	techVocabularyRe = regexp.MustCompile(`(?i)\b(` + strings.Join(techVocabulary, "|") + `)\b`)

	// Shorter list used by the emergency tier to decide whether a paragraph
	// is talking about software at all.
	emergencyTechRe = regexp.MustCompile(`(?i)\b(react|node|python|java|javascript|typescript|mongodb|sql|docker|api|ml|ai|express|database|backend|frontend|full.?stack)\b`)

	achievementVerbRe = regexp.MustCompile(`(?i)(built|developed|created|implemented|designed|optimized|improved|reduced|increased|deployed|architected|achieved|solved)`)

	sentenceSplitRe = regexp.MustCompile(`[.;!?]`)
	bulletPrefixRe  = regexp.MustCompile(`^[•\-*\d.\s]+`)
)

// matchTechnologies returns the deduplicated lowercase vocabulary matches in
// text, preserving first-seen order.
func matchTechnologies(text string) []string {
	return dedupeLower(techVocabularyRe.FindAllString(text, -1))
}

// extractAchievements returns up to three sentences that read like concrete
// accomplishments: long enough to carry content and containing an action verb.
func extractAchievements(text string) []string {
	var achievements []string
	for _, sentence := range sentenceSplitRe.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		sentence = bulletPrefixRe.ReplaceAllString(sentence, "")
		if len(sentence) <= 15 || !achievementVerbRe.MatchString(sentence) {
			continue
		}
		achievements = append(achievements, sentence)
		if len(achievements) == 3 {
			break
		}
	}
	return achievements
}

// dedupeLower lowercases entries and removes duplicates, preserving order.
func dedupeLower(items []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range items {
		lower := strings.ToLower(strings.TrimSpace(item))
		if lower == "" || seen[lower] {
			continue
		}
		seen[lower] = true
		out = append(out, lower)
	}
	return out
}

// truncate caps s at n bytes without splitting the cut point mid-rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := s[:n]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
