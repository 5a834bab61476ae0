package view

import (
	"strings"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

// SplitTags returns the trimmed, non-empty comma separated tokens of input.
func SplitTags(input string) []string {
	var names []string
	for _, token := range strings.Split(input, ",") {
		if name := strings.TrimSpace(token); name != "" {
			names = append(names, name)
		}
	}

	return names
}

// LastToken returns the trimmed text after the last comma.
func LastToken(input string) string {
	if i := strings.LastIndex(input, ","); i >= 0 {
		input = input[i+1:]
	}

	return strings.TrimSpace(input)
}

// ReplaceLastToken swaps the text after the last comma for name.
//
//	ReplaceLastToken("life, wi", "wit") == "life, wit"
func ReplaceLastToken(input, name string) string {
	i := strings.LastIndex(input, ",")
	if i < 0 {
		return name
	}

	return input[:i+1] + " " + name
}

// MatchTags returns the names of tags containing token, ignoring case.
func MatchTags(tags []domain.Tag, token string) []string {
	needle := strings.ToLower(strings.TrimSpace(token))
	matches := make([]string, 0, len(tags))
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag.Name), needle) {
			matches = append(matches, tag.Name)
		}
	}

	return matches
}
