// Package normdate parses date/time strings of unknown, loosely-structured
// format and normalizes them to a time.Time carrying a concrete fixed UTC
// offset, suitable for comparison and RFC 3339 serialization.
//
//	t, err := normdate.Parse("Mon, 6 Jul 1970 15:30:00 PDT")
//
// Inputs without any timezone information get the local offset in effect at
// the parsed wall-clock moment, frozen into the result.
package normdate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/tkuchiki/go-timezone"
)

// ErrEmptyInput is returned for the empty string, before any format is tried.
var ErrEmptyInput = errors.New("empty input")

// Parser resolves date strings against a fixed, ordered list of candidate
// interpretations. The zero value is not usable; construct with New. A Parser
// is read-only after construction and safe for concurrent use.
type Parser struct {
	now func() time.Time
	loc *time.Location
	tz  *timezone.Timezone
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock replaces the wall clock consulted when an input is missing its
// date or year. Tests use this to pin "today".
func WithClock(now func() time.Time) Option {
	return func(p *Parser) { p.now = now }
}

// WithLocation sets the location whose offset is attached to inputs that
// carry no timezone information. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(p *Parser) { p.loc = loc }
}

// New returns a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{now: time.Now, tz: timezone.New()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var std = New()

// Parse parses datestr with the default Parser (real clock, time.Local).
func Parse(datestr string) (time.Time, error) {
	return std.Parse(datestr)
}

// MustParse is Parse but panics on failure.
func MustParse(datestr string) time.Time {
	t, err := std.Parse(datestr)
	if err != nil {
		panic(err.Error())
	}
	return t
}

// The chain below is ordered by precedence and short-circuits on the first
// success. The order is part of the contract: an 8-digit number is an epoch
// timestamp, never a compact date, because the epoch interpretation runs
// first. Every entry either consumes the whole string or fails cleanly.
var strategies = []func(*Parser, string) (time.Time, error){
	(*Parser).fromEpoch,
	(*Parser).fromDatetimeWithOffset,
	(*Parser).fromDatetimeNoOffset,
	(*Parser).fromDateOnly,
	(*Parser).fromTimeOnly,
	(*Parser).fromTimeWithZone,
	(*Parser).fromZoneBeforeYear,
	(*Parser).fromTrailingZone,
	(*Parser).fromDayMonthZone,
	(*Parser).fromGMTOffset,
	(*Parser).fromZoneBeforeYear,
	(*Parser).fromTokenCount,
}

// Parse interprets datestr and returns the normalized time, or an error if
// no candidate interpretation accepts the whole string. The error carries
// only the last attempt's failure.
func (p *Parser) Parse(datestr string) (time.Time, error) {
	if datestr == "" {
		return time.Time{}, ErrEmptyInput
	}
	datestr = standardize(datestr)
	var lastErr error
	for _, try := range strategies {
		t, err := try(p, datestr)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("could not find date format for %q: %v", datestr, lastErr)
}

func (p *Parser) location() *time.Location {
	if p.loc != nil {
		return p.loc
	}
	return time.Local
}

// atLocal reinterprets a naive timestamp in the parser's location and
// freezes the offset in effect at that wall-clock moment.
func (p *Parser) atLocal(t time.Time) time.Time {
	lt := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), p.location())
	name, off := lt.Zone()
	return lt.In(time.FixedZone(name, off))
}

// Standards-track formats that carry their own numeric offset. The offset in
// the input is used verbatim.
func (p *Parser) fromDatetimeWithOffset(datestr string) (time.Time, error) {
	return firstLayout(datetimeWithOffsetLayouts, datestr)
}

// Compound date+time without timezone information; the local offset at that
// moment is attached.
func (p *Parser) fromDatetimeNoOffset(datestr string) (time.Time, error) {
	t, err := firstLayout(datetimeNoOffsetLayouts, datestr)
	if err != nil {
		return time.Time{}, err
	}
	return p.atLocal(t), nil
}

// Date only: midnight, local offset.
func (p *Parser) fromDateOnly(datestr string) (time.Time, error) {
	t, err := firstLayout(dateOnlyLayouts, datestr)
	if err != nil {
		return time.Time{}, err
	}
	return p.atLocal(t), nil
}

// Time only: the current local calendar date, local offset.
func (p *Parser) fromTimeOnly(datestr string) (time.Time, error) {
	t, err := firstLayout(timeOnlyLayouts, datestr)
	if err != nil {
		return time.Time{}, err
	}
	now := p.now().In(p.location())
	return p.atLocal(time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)), nil
}

// Time of day followed by a zone abbreviation, e.g. "15:04:05 EST". The
// current local date is prefixed and the rest is handled by withNamedZone.
func (p *Parser) fromTimeWithZone(datestr string) (time.Time, error) {
	rest, zone, ok := splitZoneAlpha(datestr)
	if !ok {
		return time.Time{}, errNoZoneToken
	}
	today := p.now().In(p.location()).Format("2006-01-02")
	return p.withNamedZone(today+" "+rest, zone)
}

// Zone abbreviation interrupting date and year, e.g.
// "Wed Jul 1 3:33pm PST 1970": the trailing year is moved back next to the
// time and the second-to-last token is treated as the zone.
func (p *Parser) fromZoneBeforeYear(datestr string) (time.Time, error) {
	tokens := strings.Fields(datestr)
	if len(tokens) < 2 {
		return time.Time{}, errNoZoneToken
	}
	zone := tokens[len(tokens)-2]
	dt := strings.Join(tokens[:len(tokens)-2], " ") + " " + tokens[len(tokens)-1]
	return p.withNamedZone(dt, zone)
}

// Trailing zone abbreviation after a full datetime, e.g.
// "1970-12-25 16:16:16 PST".
func (p *Parser) fromTrailingZone(datestr string) (time.Time, error) {
	rest, zone, ok := splitZoneAlpha(datestr)
	if !ok {
		return time.Time{}, errNoZoneToken
	}
	return p.withNamedZone(rest, zone)
}

// "1 Jan 1970 22:00:00 PDT" and friends. Same dispatch as fromTrailingZone;
// kept as its own chain entry so precedence stays explicit.
func (p *Parser) fromDayMonthZone(datestr string) (time.Time, error) {
	return p.fromTrailingZone(datestr)
}

// "Feb 14 2022 13:13:55 GMT+00:00" and friends: the trailing token loses its
// GMT prefix and colon and is reattached as a numeric offset.
func (p *Parser) fromGMTOffset(datestr string) (time.Time, error) {
	i := strings.LastIndexByte(datestr, ' ')
	if i < 0 {
		return time.Time{}, errNoZoneToken
	}
	head := datestr[:i]
	offset := strings.ReplaceAll(strings.TrimPrefix(datestr[i+1:], "GMT"), ":", "")
	if offset == "" {
		return time.Time{}, errNoZoneToken
	}
	layouts := gmtOffsetLayouts
	if len(offset) == 3 {
		// sign plus two digits, an hour-only offset like "-05"
		layouts = gmtHourOffsetLayouts
	}
	return firstLayout(layouts, head+" "+offset)
}

// Last resort: dispatch on the whitespace token count and which token is
// alphabetic, assuming the current local year.
// Handles "Feb 12", "12 Feb", "Feb 12 14:00:01", "12 Feb 3:33 pm", etc.
func (p *Parser) fromTokenCount(datestr string) (time.Time, error) {
	tokens := strings.Fields(datestr)
	year := strconv.Itoa(p.now().In(p.location()).Year())

	var layouts []string
	var assembled string
	switch {
	case len(tokens) == 2 && isAlpha(tokens[0]):
		layouts, assembled = bruteMonthFirstDate, datestr+" "+year
	case len(tokens) == 2 && isAlpha(tokens[1]):
		layouts, assembled = bruteDayFirstDate, datestr+" "+year
	case len(tokens) == 3 && isAlpha(tokens[0]):
		layouts, assembled = bruteMonthFirstTime, tokens[0]+" "+tokens[1]+" "+year+" "+tokens[2]
	case len(tokens) == 3 && isAlpha(tokens[1]):
		layouts, assembled = bruteDayFirstTime, tokens[0]+" "+tokens[1]+" "+year+" "+tokens[2]
	case len(tokens) == 4 && isAlpha(tokens[0]):
		layouts, assembled = bruteMonthFirstMeridiem, tokens[0]+" "+tokens[1]+" "+year+" "+tokens[2]+" "+tokens[3]
	case len(tokens) == 4 && isAlpha(tokens[1]):
		layouts, assembled = bruteDayFirstMeridiem, tokens[0]+" "+tokens[1]+" "+year+" "+tokens[2]+" "+tokens[3]
	default:
		return time.Time{}, fmt.Errorf("no token arrangement for %q", datestr)
	}

	t, err := firstLayout(layouts, assembled)
	if err != nil {
		return time.Time{}, err
	}
	return p.atLocal(t), nil
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
