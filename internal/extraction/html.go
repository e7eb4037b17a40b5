package extraction

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelector lists page chrome that never carries posting details.
const noiseSelector = "nav, footer, header, script, style, noscript, iframe, form, .ad, .ads, .advertisement, .sidebar, .cookie-banner, .popup"

// postingSelectors are tried in order to locate the announcement body.
var postingSelectors = []string{
	".job-description",
	".job-details",
	"#job-description",
	".posting-content",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// LooksLikeHTML reports whether pasted job data is an HTML fragment rather than plain text.
func LooksLikeHTML(s string) bool {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "<") {
		return false
	}
	lower := strings.ToLower(trimmed)
	for _, tag := range []string{"<html", "<body", "<div", "<p", "<!doctype", "<section", "<article", "<table", "<ul"} {
		if strings.Contains(lower, tag) {
			return true
		}
	}
	return false
}

// HTMLToText strips markup from a pasted announcement and returns its readable text.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseSelector).Remove()

	var content *goquery.Selection
	for _, selector := range postingSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	// Keep table cells and list items on their own lines.
	content.Find("br").ReplaceWithHtml("\n")
	content.Find("p, li, tr, h1, h2, h3, h4, div").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})
	content.Find("td, th").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml(" ")
	})

	return cleanWhitespace(content.Text()), nil
}

// NormalizeJobData prepares pasted job data for the prompt.
func NormalizeJobData(jobData string) string {
	if LooksLikeHTML(jobData) {
		if text, err := HTMLToText(jobData); err == nil && text != "" {
			return text
		}
	}
	return cleanWhitespace(jobData)
}

func cleanWhitespace(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
