package speech

import "strings"

// preferredVoices is the ranked voice preference order. Hindi voices come
// first since summaries are frequently generated in Hindi, followed by U.S.
// English. Entries match a catalog voice's name or language tag by
// case-sensitive substring or equality; the first preference with any match
// wins, not the best match. Engines differ in how they label the same
// voice, so each block carries both BCP 47 style tags and the plain
// names/codes espeak-ng reports ("Hindi"/"hi", "English_(America)"/"en-us").
var preferredVoices = []string{
	"Lekha",
	"Google हिन्दी",
	"Swara",
	"Hindi",
	"hi-IN",
	"hi_IN",
	"hi",
	"Samantha",
	"Google US English",
	"Zira",
	"English_(America)",
	"en-US",
	"en_US",
	"en-us",
}

// SelectPreferred picks a voice from the catalog using the ranked preference
// list, falling back to the first catalog entry when nothing matches. The
// second return is false only for an empty catalog.
func SelectPreferred(catalog []Voice) (Voice, bool) {
	for _, pref := range preferredVoices {
		for _, v := range catalog {
			if matchesPreference(v, pref) {
				return v, true
			}
		}
	}
	if len(catalog) > 0 {
		return catalog[0], true
	}
	return Voice{}, false
}

func matchesPreference(v Voice, pref string) bool {
	return v.Name == pref || v.Language == pref ||
		strings.Contains(v.Name, pref) || strings.Contains(v.Language, pref)
}

// HasDevanagari reports whether text contains at least one codepoint in the
// Devanagari block (U+0900 to U+097F).
func HasDevanagari(text string) bool {
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return true
		}
	}
	return false
}

// LanguageFor returns the language tag to request when no voice has been
// selected yet: Hindi for Devanagari text, U.S. English otherwise.
func LanguageFor(text string) string {
	if HasDevanagari(text) {
		return "hi-IN"
	}
	return "en-US"
}
