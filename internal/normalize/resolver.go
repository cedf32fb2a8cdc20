// Package normalize folds the heterogeneous raw payloads returned by the
// generation service into the canonical Job entity. The service is not
// contractually stable about key spellings (they vary by language and prompt
// variant) or about list representation, so every lookup here is defensive:
// absence of data is a normal case, never an error.
package normalize

// Resolve walks candidate keys in priority order and returns the first value
// in section that is a non-empty string. The candidate order encodes language
// and spelling preference: canonical English key first, then localized or
// alternate spellings. If nothing matches, def is returned.
func Resolve(section map[string]any, candidates []string, def string) string {
	for _, key := range candidates {
		if s, ok := section[key].(string); ok && s != "" {
			return s
		}
	}
	return def
}

// resolveRaw is the list-field variant of Resolve: it returns the first
// candidate value that is present and usable, without forcing it into a
// string, so the winner can still be a sequence or an {items} record.
// Empty strings and explicit nulls are skipped like absent keys.
func resolveRaw(section map[string]any, candidates []string) any {
	for _, key := range candidates {
		v, ok := section[key]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && s == "" {
			continue
		}
		return v
	}
	return nil
}
