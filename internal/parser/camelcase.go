package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type runeClass int

const (
	classLower runeClass = iota + 1
	classUpper
	classDigit
	classOther
)

func classOf(r rune) runeClass {
	switch {
	case unicode.IsLower(r):
		return classLower
	case unicode.IsUpper(r):
		return classUpper
	case unicode.IsDigit(r):
		return classDigit
	default:
		return classOther
	}
}

// splitCamel splits a CamelCase identifier into its words:
// "HTTPServer" gives "HTTP" and "Server", "Node2Id" gives "Node2" and "Id".
func splitCamel(src string) []string {
	if !utf8.ValidString(src) {
		return []string{src}
	}

	var words [][]rune

	var last runeClass

	for _, r := range src {
		class := classOf(r)
		if last != 0 && (class == last || class == classDigit) {
			words[len(words)-1] = append(words[len(words)-1], r)
		} else {
			words = append(words, []rune{r})
		}
		last = class
	}

	// An upper-case run followed by a lower-case one gives its
	// last letter to the next word: "HTTPS" "erver" -> "HTTP" "Server".
	for i := 0; i < len(words)-1; i++ {
		if unicode.IsUpper(words[i][0]) && unicode.IsLower(words[i+1][0]) {
			lastRune := words[i][len(words[i])-1]
			words[i+1] = append([]rune{lastRune}, words[i+1]...)
			words[i] = words[i][:len(words[i])-1]
		}
	}

	entries := make([]string, 0, len(words))
	for _, word := range words {
		if len(word) > 0 {
			entries = append(entries, string(word))
		}
	}

	return entries
}

// CamelToFlag transforms s from CamelCase to flag-case.
func CamelToFlag(s, flagDivider string) string {
	return strings.ToLower(strings.Join(splitCamel(s), flagDivider))
}

// FlagToEnv transforms s from flag-case to CAMEL_CASE.
func FlagToEnv(s, flagDivider, envDivider string) string {
	return strings.ToUpper(strings.ReplaceAll(s, flagDivider, envDivider))
}
