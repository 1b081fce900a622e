package normdate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardize(t *testing.T) {
	for _, tc := range []struct {
		in, out string
	}{
		// date-prefix separators become dashes; later dots survive
		{"1970.12.31", "1970-12-31"},
		{"1970/12/31", "1970-12-31"},
		{"12/13/2000 12:12:12.14", "12-13-2000 12:12:12.14"},
		{"2012/03/19 10:11:59.3186369", "2012-03-19 10:11:59.3186369"},
		// shorter than the prefix window: separators untouched
		{"1/2/06", "1/2/06"},
		{"8:23:50", "8:23:50"},
		// zone vocabulary unification
		{"Mon, 6 Jul 1970 15:30:00 UTC", "Mon 6 Jul 1970 15:30:00 GMT"},
		{"6 Jul 1970 15:30 UT", "6 Jul 1970 15:30 GMT"},
		// list punctuation dropped
		{"1 Jan, 1970; 22:00:00 PDT", "1 Jan 1970 22:00:00 PDT"},
		{"Monday, 6 July", "Monday 6 July"},
		// whitespace runs collapse, edges trimmed
		{"01 Mar 2024  17:47:00", "01 Mar 2024 17:47:00"},
		{"  1970-12-31  ", "1970-12-31"},
		// exotic whitespace and invisible format runes
		{"01 Mar 2024", "01 Mar 2024"},
		{"‎8/7/2023 8:23:50‏", "8-7-2023 8:23:50"},
		{"", ""},
	} {
		assert.Equal(t, tc.out, standardize(tc.in), "for %q", tc.in)
	}
}

func TestStandardizeIdempotent(t *testing.T) {
	for _, in := range []string{
		"1970.12.31",
		"12/13/2000 12:12:12.14",
		"Mon, 6 Jul 1970 15:30:00 UTC",
		"Feb 12,  14:00",
	} {
		once := standardize(in)
		assert.Equal(t, once, standardize(once), "for %q", in)
	}
}
