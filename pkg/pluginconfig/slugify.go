// SPDX-License-Identifier: MPL-2.0

package pluginconfig

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// letters NFD cannot decompose into an ASCII base.
	transliterations = strings.NewReplacer(
		"&", " and ",
		"ß", "ss",
		"æ", "ae", "Æ", "AE",
		"œ", "oe", "Œ", "OE",
		"ø", "o", "Ø", "O",
		"đ", "d", "Đ", "D",
		"ð", "d", "Ð", "D",
		"ł", "l", "Ł", "L",
		"þ", "th", "Þ", "TH",
		"ı", "i",
	)

	contractionPattern = regexp.MustCompile(`([A-Za-z\d]+)'([ts])(\s|$)`)
	lowerUpperPattern  = regexp.MustCompile(`([a-z\d])([A-Z])`)
	upperRunPattern    = regexp.MustCompile(`([A-Z]+)([A-Z][a-z\d]+)`)
	nonAlnumPattern    = regexp.MustCompile(`[^a-z\d]+`)
)

// Slugify turns a plugin name into its default id: ASCII, lowercase words
// joined by single hyphens.
//
//	Slugify("My Plugin")    == "my-plugin"
//	Slugify("fooBar")       == "foo-bar"
//	Slugify("Crème Brûlée") == "creme-brulee"
//	Slugify("Draw & Paint") == "draw-and-paint"
//
// Distinct names may collide; no uniqueness is enforced.
func Slugify(name string) string {
	s := transliterate(name)
	s = contractionPattern.ReplaceAllString(s, "$1$2$3")
	s = decamelize(s)
	s = strings.ToLower(s)
	s = nonAlnumPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// transliterate strips diacritics and maps the remaining common non-ASCII
// letters to ASCII.
func transliterate(s string) string {
	s = transliterations.Replace(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// decamelize splits camelCase and PascalCase words ("XMLHttpRequest" becomes
// "XML Http Request").
func decamelize(s string) string {
	s = lowerUpperPattern.ReplaceAllString(s, "$1 $2")
	return upperRunPattern.ReplaceAllString(s, "$1 $2")
}
