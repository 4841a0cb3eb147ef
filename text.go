package clipper

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// WordsPerMinute is the reading speed used for ReadingTime.
const WordsPerMinute = 200

const (
	// excerptSentenceMin is the length the first sentence must exceed to
	// be used as the excerpt on its own.
	excerptSentenceMin = 50

	// excerptLength is the prefix length used when the first sentence is
	// too short.
	excerptLength = 200

	excerptSuffix = "..."
)

var (
	blankLinesRe  = regexp.MustCompile(`\n\s*\n`)
	sentenceEndRe = regexp.MustCompile(`[.!?]+`)
)

// CleanText normalizes extracted text: runs of blank lines are collapsed to
// a single blank line, then every whitespace run becomes a single space and
// the result is trimmed.
func CleanText(s string) string {
	s = blankLinesRe.ReplaceAllString(s, "\n\n")
	return CollapseWhitespace(s)
}

// CollapseWhitespace replaces every run of whitespace with a single space
// and trims leading and trailing whitespace.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CountWords returns the number of whitespace-delimited words in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// ReadingTime returns the estimated reading time in whole minutes,
// rounded up. Zero words take zero minutes.
func ReadingTime(words int) int {
	if words <= 0 {
		return 0
	}
	return (words + WordsPerMinute - 1) / WordsPerMinute
}

// CharCount returns the number of characters (runes) in s.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

// Excerpt derives a short summary from text. If the first sentence is longer
// than 50 characters it is returned on its own; otherwise the first 200
// characters of text are returned followed by "...".
func Excerpt(text string) string {
	first := strings.TrimSpace(sentenceEndRe.Split(text, 2)[0])
	if CharCount(first) > excerptSentenceMin {
		return first
	}
	return Prefix(text, excerptLength) + excerptSuffix
}

// Prefix returns the first n characters of s.
func Prefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
