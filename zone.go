package normdate

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// ErrUnknownZone is returned when a trailing token looked like a zone
// abbreviation but is not in the recognized vocabulary.
var ErrUnknownZone = errors.New("unrecognized zone abbreviation")

var errNoZoneToken = errors.New("no trailing zone token")

// rfc2822Zones pins the obsolete zone names of RFC 2822 §4.3 to their RFC
// meanings. Consulted before the timezone library so that ambiguous
// abbreviations such as CST resolve the RFC 2822 way (US Central, not
// China Standard).
var rfc2822Zones = map[string]int{
	"UT":  0,
	"GMT": 0,
	"EST": -5 * 3600,
	"EDT": -4 * 3600,
	"CST": -6 * 3600,
	"CDT": -5 * 3600,
	"MST": -7 * 3600,
	"MDT": -6 * 3600,
	"PST": -8 * 3600,
	"PDT": -7 * 3600,
}

// splitZoneAlpha splits off the last whitespace-delimited token and reports
// whether it is plausibly a zone abbreviation: every rune a letter. The
// check is purely shape-based; zoneOffset decides whether the token means
// anything.
func splitZoneAlpha(datestr string) (rest, zone string, ok bool) {
	datestr = strings.TrimSpace(datestr)
	i := strings.LastIndexByte(datestr, ' ')
	if i < 0 {
		return "", "", false
	}
	rest, zone = datestr[:i], datestr[i+1:]
	for _, r := range zone {
		if !unicode.IsLetter(r) {
			return "", "", false
		}
	}
	return rest, zone, true
}

// zoneOffset resolves a zone abbreviation to seconds east of UTC. The RFC
// 2822 vocabulary wins; everything else goes through the timezone library's
// abbreviation table.
func (p *Parser) zoneOffset(zone string) (int, error) {
	if off, ok := rfc2822Zones[strings.ToUpper(zone)]; ok {
		return off, nil
	}
	infos, err := p.tz.GetTzAbbreviationInfo(zone)
	if err != nil || len(infos) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownZone, zone)
	}
	return infos[0].Offset(), nil
}

// withNamedZone parses a naive date/time fragment against the reconstruction
// layouts and reattaches the named zone by round-tripping through an
// RFC-2822-shaped string, so final construction stays with the standard
// parser. Fails when no layout matches the fragment or the zone token is not
// a recognized abbreviation.
func (p *Parser) withNamedZone(datestr, zone string) (time.Time, error) {
	for _, layout := range reconstructLayouts {
		t, err := time.Parse(layout, datestr)
		if err != nil {
			continue
		}
		off, err := p.zoneOffset(zone)
		if err != nil {
			return time.Time{}, err
		}
		rfc := t.Format("Mon, 02 Jan 2006 15:04:05") + " " + formatOffset(off)
		return time.Parse("Mon, 02 Jan 2006 15:04:05 -0700", rfc)
	}
	return time.Time{}, fmt.Errorf("no layout matched %q", datestr)
}

func formatOffset(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("%s%02d%02d", sign, seconds/3600, seconds%3600/60)
}
