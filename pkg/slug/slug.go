// Package slug turns display names into URL-safe identifiers.
package slug

import (
	"regexp"
	"strings"

	gosimple "github.com/gosimple/slug"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	symbols  = strings.NewReplacer("@", " at ", "&", " ")
)

// Make lowercases s, transliterates letters to ASCII, collapses every run of
// other characters into a single hyphen and trims hyphens at both ends.
//
//	Make("Wireless Mouse")     // "wireless-mouse"
//	Make("Crème Brûlée!!")     // "creme-brulee"
//	Make("Straße")             // "strasse"
//	Make("Tom & Jerry @ Home") // "tom-jerry-at-home"
func Make(s string) string {
	s = symbols.Replace(norm.NFKC.String(s))
	s = gosimple.Make(s)
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
