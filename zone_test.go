package normdate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitZoneAlpha(t *testing.T) {
	for _, tc := range []struct {
		in   string
		rest string
		zone string
		ok   bool
	}{
		{"1970-12-25 16:16:16 PST", "1970-12-25 16:16:16", "PST", true},
		{"15:04:05 EST", "15:04:05", "EST", true},
		{"1970-12-25 16:16:16 -0700", "", "", false},
		{"1970-12-25 16:16:16", "", "", false},
		{"PST", "", "", false},
		{"", "", "", false},
	} {
		rest, zone, ok := splitZoneAlpha(tc.in)
		assert.Equal(t, tc.ok, ok, "for %q", tc.in)
		if tc.ok {
			assert.Equal(t, tc.rest, rest, "for %q", tc.in)
			assert.Equal(t, tc.zone, zone, "for %q", tc.in)
		}
	}
}

func TestZoneOffset(t *testing.T) {
	p := New()
	for _, tc := range []struct {
		zone   string
		offset int
	}{
		{"GMT", 0},
		{"UT", 0},
		{"PST", -8 * 3600},
		{"PDT", -7 * 3600},
		{"pst", -8 * 3600},
		// ambiguous worldwide, but the RFC 2822 reading wins
		{"CST", -6 * 3600},
		{"EST", -5 * 3600},
		// beyond the RFC 2822 vocabulary, resolved by the timezone library
		{"CET", 1 * 3600},
		{"CEST", 2 * 3600},
	} {
		off, err := p.zoneOffset(tc.zone)
		require.NoError(t, err, "for %q", tc.zone)
		assert.Equal(t, tc.offset, off, "for %q", tc.zone)
	}

	_, err := p.zoneOffset("BOGUS")
	assert.ErrorIs(t, err, ErrUnknownZone)
}

func TestWithNamedZone(t *testing.T) {
	p := New()

	ts, err := p.withNamedZone("1970-12-25 16:16:16", "PST")
	require.NoError(t, err)
	assert.Equal(t, "1970-12-26 00:16:16 +0000 UTC", fmt.Sprintf("%v", ts.UTC()))

	// fragment matches no layout
	_, err = p.withNamedZone("not a date", "PST")
	assert.Error(t, err)

	// fragment fine, zone not in the vocabulary
	_, err = p.withNamedZone("1970-12-25 16:16:16", "BOGUS")
	assert.ErrorIs(t, err, ErrUnknownZone)
}

func TestFormatOffset(t *testing.T) {
	assert.Equal(t, "+0000", formatOffset(0))
	assert.Equal(t, "+0530", formatOffset(5*3600+30*60))
	assert.Equal(t, "-0800", formatOffset(-8*3600))
	assert.Equal(t, "-0330", formatOffset(-(3*3600 + 30*60)))
}
