package generator

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// fallbackMessage is surfaced when the service gives us nothing readable.
const fallbackMessage = "Something went wrong"

// maxErrorLength caps how much of an upstream error body reaches the UI.
const maxErrorLength = 500

// errorMessage turns a non-2xx response body into a display string. Reverse
// proxies in front of the service answer with HTML error pages, so HTML
// bodies are reduced to their visible text first.
func errorMessage(contentType string, body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return fallbackMessage
	}

	if strings.Contains(contentType, "text/html") || strings.HasPrefix(text, "<") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(text)); err == nil {
			text = strings.Join(strings.Fields(doc.Text()), " ")
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return fallbackMessage
	}
	if len(text) > maxErrorLength {
		text = text[:maxErrorLength]
	}
	return text
}
