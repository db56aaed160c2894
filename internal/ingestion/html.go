package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FromHTML converts an HTML resume (portfolio exports, "save as HTML"
// resumes) into cleaned plain text. Script, style, and navigation chrome
// are dropped; block elements become line breaks so section headings and
// bullets survive for the structural extractor.
func FromHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript").Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		return CleanText(doc.Text()), nil
	}

	var sb strings.Builder
	body.Find("h1, h2, h3, h4, p, li, div").Each(func(_ int, sel *goquery.Selection) {
		// Skip container nodes; only leaf-ish elements contribute lines,
		// otherwise text duplicates once per ancestor div.
		if sel.Children().Filter("p, li, div, h1, h2, h3, h4").Length() > 0 {
			return
		}
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		if goquery.NodeName(sel) == "li" {
			sb.WriteString("• ")
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	})

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		text = body.Text()
	}
	return CleanText(text), nil
}

// LooksLikeHTML reports whether uploaded content should go through the HTML
// path before extraction.
func LooksLikeHTML(content string) bool {
	head := strings.ToLower(strings.TrimSpace(content))
	if len(head) > 256 {
		head = head[:256]
	}
	return strings.Contains(head, "<html") || strings.Contains(head, "<!doctype html") || strings.Contains(head, "<body")
}
