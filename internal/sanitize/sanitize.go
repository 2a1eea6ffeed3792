// Package sanitize cleans free-text form input, validates email syntax and
// classifies spam. The spam check is a coarse heuristic: a small keyword
// blocklist plus link and repetition rules. False positives are accepted as
// a cost of simplicity.
package sanitize

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

var (
	htmlTagRe   = regexp.MustCompile(`<[^>]*>`)
	dangerousRe = regexp.MustCompile("[<>\"'`;(){}]")
	jsProtoRe   = regexp.MustCompile(`(?i)javascript:`)
	dataProtoRe = regexp.MustCompile(`(?i)data:`)
	onEventRe   = regexp.MustCompile(`(?i)on\w+=`)

	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	urlRe   = regexp.MustCompile(`(?i)https?://`)
)

const maxEmailLength = 254

// Clean trims, truncates to maxLen characters and strips HTML tags,
// dangerous characters and script-ish protocol prefixes from text.
// Truncation happens first so later stripping cannot push content past the
// limit. Empty input yields an empty string.
func Clean(text string, maxLen int) string {
	text = strings.TrimSpace(text)
	if runes := []rune(text); len(runes) > maxLen {
		text = string(runes[:maxLen])
	}

	text = htmlTagRe.ReplaceAllString(text, "")
	text = dangerousRe.ReplaceAllString(text, "")
	text = jsProtoRe.ReplaceAllString(text, "")
	text = dataProtoRe.ReplaceAllString(text, "")
	text = onEventRe.ReplaceAllString(text, "")

	return text
}

// ValidEmail reports whether email looks like local-part@domain.tld and is
// at most 254 characters. Purely syntactic; no DNS/MX verification.
func ValidEmail(email string) bool {
	return len(email) <= maxEmailLength && emailRe.MatchString(email)
}

// spamKeywords must stay lexicographically sorted: the double-array trie
// underneath the Aho-Corasick machine requires ordered patterns.
var spamKeywords = []string{
	"buy now",
	"casino",
	"click here",
	"lottery",
	"prize",
	"viagra",
	"winner",
}

var keywordMatcher = mustKeywordMatcher(spamKeywords)

func mustKeywordMatcher(keywords []string) *goahocorasick.Machine {
	patterns := make([][]rune, len(keywords))
	for i, w := range keywords {
		patterns[i] = []rune(w)
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		panic(fmt.Sprintf("sanitize: build keyword matcher: %v", err))
	}
	return m
}

// Spam reports whether text matches any spam heuristic: a blocklist keyword
// as a whole word (case-insensitive), two or more http(s):// links, or any
// single character repeated 11+ times consecutively.
func Spam(text string) bool {
	if containsKeyword(text) {
		return true
	}
	if len(urlRe.FindAllStringIndex(text, -1)) >= 2 {
		return true
	}
	return hasLongRun(text, 11)
}

// containsKeyword runs the Aho-Corasick automaton over the lowercased text
// and keeps only matches sitting on word boundaries, so "winner" flags but
// "showinners" does not.
func containsKeyword(text string) bool {
	runes := []rune(strings.ToLower(text))
	for _, term := range keywordMatcher.MultiPatternSearch(runes, false) {
		start := term.Pos
		end := start + len(term.Word)
		if start > 0 && isWordRune(runes[start-1]) {
			continue
		}
		if end < len(runes) && isWordRune(runes[end]) {
			continue
		}
		return true
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// hasLongRun reports whether any rune repeats at least n times in a row.
// RE2 has no backreferences, so this is a plain scan.
func hasLongRun(text string, n int) bool {
	var prev rune
	count := 0
	for _, r := range text {
		if r == prev {
			count++
			if count >= n {
				return true
			}
		} else {
			prev = r
			count = 1
		}
	}
	return false
}
