package domain

import "strings"

// MaxKeywords caps how many keywords a post may carry.
const MaxKeywords = 5

// ParseKeywords splits a comma-separated model response into a keyword list:
// tokens are trimmed, empties dropped, order preserved, at most MaxKeywords
// kept. An empty result is a valid outcome, not an error.
func ParseKeywords(raw string) []string {
	var keywords []string
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		keywords = append(keywords, token)
		if len(keywords) == MaxKeywords {
			break
		}
	}
	return keywords
}

// JoinKeywords renders a keyword list as a single comma+space-delimited
// string for storage.
func JoinKeywords(keywords []string) string {
	return strings.Join(keywords, ", ")
}
