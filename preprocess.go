package normdate

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// datePrefixLen is the conventional maximum width of a "YYYY-MM-DD"-shaped
// date prefix. Separator rewriting stops there so that decimal points in
// fractional seconds survive.
const datePrefixLen = 8

// stripNoise removes format-category runes that show up in copy-pasted
// dates (zero-width spaces, bidi marks, soft hyphens) and maps exotic
// whitespace such as NBSP to a plain space.
var stripNoise = transform.Chain(
	runes.Remove(runes.In(unicode.Cf)),
	runes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}),
)

var punctDropper = strings.NewReplacer(",", "", ";", "")

// standardize regularizes a date string before any format is tried: `.` and
// `/` in the date prefix become `-`, " UTC"/" UT" become " GMT" so the zone
// vocabulary downstream stays uniform, list punctuation is dropped, and
// whitespace runs collapse to single spaces. Pure; always succeeds.
func standardize(datestr string) string {
	if cleaned, _, err := transform.String(stripNoise, datestr); err == nil {
		datestr = cleaned
	}
	datestr = strings.Join(strings.Fields(datestr), " ")

	if r := []rune(datestr); len(r) >= datePrefixLen {
		for i := 0; i < datePrefixLen; i++ {
			if r[i] == '.' || r[i] == '/' {
				r[i] = '-'
			}
		}
		datestr = string(r)
	}

	datestr = strings.ReplaceAll(datestr, " UTC", " GMT")
	datestr = strings.ReplaceAll(datestr, " UT", " GMT")
	// dropping a free-standing "," or ";" can leave a double space behind
	return strings.Join(strings.Fields(punctDropper.Replace(datestr)), " ")
}
