package normalize

import (
	"regexp"
	"strings"
)

// listDelimiter is the delimiter family the service uses inside string-shaped
// lists: a "▶" marker, optionally preceded by a newline or by the escaped
// sequence `\n` that survives some upstream serializations.
var listDelimiter = regexp.MustCompile(`(?:\\n▶|` + "\n" + `▶|▶)`)

// ParseList normalizes a raw list-like value of unknown shape into an ordered
// slice of trimmed, non-empty strings. A list field may arrive as a plain
// sequence, as a {header, items} record, or as a single delimiter-joined
// string; any other shape (absent, null, unexpected type) yields an empty
// slice. Order of surviving items is always preserved.
func ParseList(field any) []string {
	switch v := field.(type) {
	case []string:
		return cleanItems(v)
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
		return cleanItems(items)
	case map[string]any:
		// {header, items} record; a missing items key means "no items",
		// not an error.
		if items, ok := v["items"]; ok {
			return ParseList(items)
		}
		return []string{}
	case string:
		return cleanItems(listDelimiter.Split(v, -1))
	default:
		return []string{}
	}
}

// cleanItems trims every item and drops the ones that end up empty.
func cleanItems(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
