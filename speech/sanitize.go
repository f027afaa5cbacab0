package speech

import (
	"regexp"
	"strings"
)

// Markup and whitespace patterns applied by Sanitize, in order.
var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)

	// Everything outside the speakable allowlist: word characters, the
	// Devanagari block, a fixed punctuation set, and the space separator.
	disallowedPattern = regexp.MustCompile(`[^\w\x{0900}-\x{097F}.,!?;:()\-"' ]`)
)

// entityDecoder expands the handful of HTML entities that commonly survive
// in rendered summary text.
var entityDecoder = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// Sanitize normalizes raw display text into speakable plain text. Markup
// tags are removed, common entities decoded, whitespace runs collapsed to a
// single space, and any character outside the allowlist dropped. The result
// is trimmed; an empty string is a valid output meaning "nothing to speak".
// Sanitize never fails, degrading to empty on degenerate input.
func Sanitize(raw string) string {
	s := tagPattern.ReplaceAllString(raw, " ")
	s = entityDecoder.Replace(s)
	s = whitespacePattern.ReplaceAllString(s, " ")
	s = disallowedPattern.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
