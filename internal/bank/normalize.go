package bank

import "strings"

// NormalizeAnswerText trims whitespace and lowercases an answer for matching.
func NormalizeAnswerText(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// NormalizeWordOrder normalizes each word and joins them with single spaces.
func NormalizeWordOrder(words []string) string {
	normalized := make([]string, 0, len(words))
	for _, word := range words {
		normalized = append(normalized, NormalizeAnswerText(word))
	}
	return strings.Join(normalized, " ")
}
