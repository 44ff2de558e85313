package validation

import (
	"strings"
	"unicode"
)

// SanitizeSkills trims entries, drops empties, removes case-insensitive
// duplicates (first occurrence wins) and canonicalizes casing to
// "Golang" style: first rune upper, remainder lower. Idempotent.
func SanitizeSkills(skills []string) []string {
	return sanitizeList(skills, func(s string) string {
		return upperFirst(strings.ToLower(s))
	})
}

// SanitizeTechnologies applies the same trim/dedupe pass but only
// uppercases the first rune, preserving internal casing ("GraphQL"
// stays "GraphQL"). Idempotent.
func SanitizeTechnologies(technologies []string) []string {
	return sanitizeList(technologies, upperFirst)
}

func sanitizeList(values []string, canon func(string) string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, canon(v))
	}
	return out
}

func upperFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
