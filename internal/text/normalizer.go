// Package text normalizes tweet text into a Bluesky-ready post body.
package text

import (
	"html"
	"strings"

	"github.com/dlclark/regexp2"
)

const (
	// MaxPostLength is the destination platform's maximum post length in
	// characters. Longer text is truncated, matching the source tool's
	// behavior rather than splitting into threads.
	MaxPostLength = 300

	// EmptyTextPlaceholder replaces text that is empty after normalization.
	// The platform rejects posts with empty text.
	EmptyTextPlaceholder = "[No text content]"
)

// trailingMediaLinkPattern matches the shortened media permalink Twitter
// appends to tweets with attachments. The lookbehind requires other content
// before the link, so a tweet that is nothing but a link keeps it.
// regexp2 is used because stdlib regexp has no lookbehind support.
var trailingMediaLinkPattern = regexp2.MustCompile(`(?<=\S\s+)https://t\.co/\w+$`, 0)

// Normalizer prepares archived tweet text for posting.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize runs the full normalization pipeline: HTML entity unescaping,
// trailing media-permalink removal, placeholder substitution for empty
// text, and truncation to the platform limit.
func (n *Normalizer) Normalize(s string) string {
	s = html.UnescapeString(s)
	s = n.stripTrailingMediaLink(s)
	s = strings.TrimRight(s, " \t\n\r")

	if strings.TrimSpace(s) == "" {
		return EmptyTextPlaceholder
	}

	return truncate(s, MaxPostLength)
}

func (n *Normalizer) stripTrailingMediaLink(s string) string {
	trimmed := strings.TrimRight(s, " \t\n\r")
	result, err := trailingMediaLinkPattern.Replace(trimmed, "", -1, -1)
	if err != nil {
		return s
	}
	return result
}

// truncate cuts s to at most limit characters, counting runes rather than
// bytes so multi-byte text is not split mid-character.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
