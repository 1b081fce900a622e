package normdate

import (
	"strings"
	"time"
)

// The layout lists below are the fixed format inventories the chain tries,
// in order. Conventions shared by every list:
//
//   - Bases are written with the full month ("January"), full weekday
//     ("Monday") and uppercase meridiem ("PM"); expandLayouts derives the
//     abbreviated and lowercase spellings, since a Go layout matches exactly
//     one spelling of each.
//   - Inputs reach these lists after standardize, so commas are already gone
//     (RFC 2822 shapes appear comma-less) and whitespace runs are single
//     spaces.
//   - No fraction variants: time.Parse accepts a fractional second after any
//     seconds field even when the layout has none.

var layoutVariants = [...][2]string{
	{"January", "Jan"},
	{"Monday", "Mon"},
	{"PM", "pm"},
}

// expandLayouts returns every base layout plus its abbreviated-month,
// abbreviated-weekday and lowercase-meridiem combinations.
func expandLayouts(bases ...string) []string {
	var out []string
	for _, base := range bases {
		variants := []string{base}
		for _, sub := range layoutVariants {
			expanded := variants
			for _, v := range variants {
				if strings.Contains(v, sub[0]) {
					expanded = append(expanded, strings.ReplaceAll(v, sub[0], sub[1]))
				}
			}
			variants = expanded
		}
		out = append(out, variants...)
	}
	return out
}

// firstLayout tries each layout against the whole string and returns the
// first success, or the last error when nothing matches.
func firstLayout(layouts []string, datestr string) (time.Time, error) {
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, datestr)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Explicit numeric offset present in the input.
var datetimeWithOffsetLayouts = expandLayouts(
	time.RFC3339,
	"2006-01-02T15:4:5-0700",
	"Monday 2 January 2006 15:4:5 -0700",
	"2 January 2006 15:4:5 -0700",
	"2 January 2006 15:4 -0700",
	"Monday 2 January 2006 15:4 -0700",
	"2006-01-02 15:4:5 -07:00",
	"2006-01-02 15:4:5 -0700",
	"2006-01-02 15:4:5-07:00",
	"2006-01-02 15:4:5-0700",
	"January 2 2006 15:4:5 -0700",
	"January 2 2006 15:4:5 -07:00",
	"Monday 2 January 2006 15:4:5 -07:00",
	"Monday 2 January 15:4:5 -0700 2006",
	"Monday January 2 15:4:5 -0700 2006",
	"Monday 2 January 15:4 -0700 2006",
	"Monday January 2 15:4 -0700 2006",
	"Monday 2 January 3:4 PM -0700 2006",
	"Monday January 2 3:4 PM -0700 2006",
	"Monday 2 January 3:4PM -0700 2006",
	"Monday January 2 3:4PM -0700 2006",
)

// Compound date+time, no offset of any kind.
var datetimeNoOffsetLayouts = expandLayouts(
	"2006-01-02T15:4:5",
	"Monday January 2 15:4:5 2006", // ctime
	"2006-01-02 15:4:5",
	"2006 January 2 15:4:5",
	"January 2 2006 15:4:5",
	"2 January 2006 15:4:5",
	"Monday 2 January 2006 15:4:5",
	"Monday 2 January 2006 3:4PM",
	"Monday 2 January 2006 3:4 PM",
	"Monday 2 January 2006 3:4:5PM",
	"Monday 2 January 2006 3:4:5 PM",
	"Monday 2 1 2006 3:4PM",
	"Monday 2 1 2006 3:4 PM",
	"Monday 2 1 2006 3:4:5PM",
	"Monday 2 1 2006 3:4:5 PM",
	"2 January 2006 3:4PM",
	"2 January 2006 3:4 PM",
	"2 January 2006 3:4:5PM",
	"2 January 2006 3:4:5 PM",
	"2 1 2006 3:4PM",
	"2 1 2006 3:4 PM",
	"2 1 2006 3:4:5PM",
	"2 1 2006 3:4:5 PM",
	"1-2-2006 3:4:5 PM",
)

// Date only, no time, no offset.
var dateOnlyLayouts = expandLayouts(
	"2006-1-2",
	"1-2-06",
	"1/2/06",
	"2-January-2006",
	"January 2 2006",
	"2 January 2006",
)

// Time of day only.
var timeOnlyLayouts = expandLayouts(
	"15:4:5",
	"3:4PM",
	"3:4 PM",
)

// Naive fragments accepted by the named-zone reconstruction step, including
// the year-last reorderings produced by the zone-before-year strategies.
var reconstructLayouts = expandLayouts(
	"2006-01-02 15:4:5",
	"2006-01-02 3:4PM",
	"2006-01-02 3:4 PM",
	"2006-01-02 15:4",
	"2 January 2006 15:4:5",
	"January 2 2006 15:4",
	"January 2 2006 15:4:5",
	"Monday January 2 2006 15:4:5",
	"Monday 2 January 2006 15:4:5",
	"Monday 2 1 2006 15:4:5",
	"Monday 2 1 15:4:5 2006",
	"Monday 2 January 15:4:5 2006",
	"Monday January 2 15:4:5 2006",
	"Monday 1 2 15:4 2006",
	"Monday 2 1 15:4 2006",
	"Monday 2 January 15:4 2006",
	"Monday January 2 15:4 2006",
	"Monday 1 2 3:4PM 2006",
	"Monday 2 1 3:4PM 2006",
	"Monday 2 January 3:4 PM 2006",
	"Monday 2 January 3:4PM 2006",
	"Monday January 2 3:4 PM 2006",
	"Monday January 2 3:4PM 2006",
	"2 1 15:4:5 2006",
	"2 January 15:4:5 2006",
	"January 2 15:4:5 2006",
	"1 2 3:4 2006",
	"2 1 3:4 2006",
	"2 January 3:4 2006",
	"January 2 3:4 2006",
	"1 2 3:4PM 2006",
	"2 1 3:4PM 2006",
	"2 January 3:4 PM 2006",
	"2 January 3:4PM 2006",
	"January 2 3:4 PM 2006",
	"January 2 3:4PM 2006",
)

// Head layouts for the GMT±offset strategy, offset reattached numerically.
var gmtOffsetLayouts = expandLayouts(
	"January 2 2006 15:4:5 -0700",
	"January 2 2006 3:4:5PM -0700",
	"January 2 2006 3:4:5 PM -0700",
	"Monday January 2 2006 15:4:5 -0700",
	"Monday January 2 2006 3:4PM -0700",
	"Monday January 2 2006 3:4 PM -0700",
)

// Same heads with an hour-only offset, for tokens like "GMT-05".
var gmtHourOffsetLayouts = hourOffsets(gmtOffsetLayouts)

func hourOffsets(layouts []string) []string {
	out := make([]string, len(layouts))
	for i, l := range layouts {
		out[i] = strings.ReplaceAll(l, "-0700", "-07")
	}
	return out
}

// Token-count heuristics: the current year is spliced in by the caller.
var (
	bruteMonthFirstDate = expandLayouts("January 2 2006")
	bruteDayFirstDate   = expandLayouts("2 January 2006")
	bruteMonthFirstTime = expandLayouts(
		"January 2 2006 15:4",
		"January 2 2006 15:4:5",
		"January 2 2006 3:4PM",
	)
	bruteDayFirstTime = expandLayouts(
		"2 January 2006 15:4",
		"2 January 2006 15:4:5",
		"2 January 2006 3:4PM",
	)
	bruteMonthFirstMeridiem = expandLayouts("January 2 2006 3:4 PM")
	bruteDayFirstMeridiem   = expandLayouts("2 January 2006 3:4 PM")
)
