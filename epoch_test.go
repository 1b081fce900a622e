package normdate

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Unit selection at the digit-count boundaries: ten digits are the last
// second-count, thirteen the last millisecond-count, sixteen the last
// microsecond-count.
func TestEpochUnitBoundaries(t *testing.T) {
	p := New()
	for _, tc := range []struct {
		in, out string
	}{
		{"9999999999", "2286-11-20 17:46:39 +0000 UTC"},
		{"10000000000", "1970-04-26 17:46:40 +0000 UTC"},
		{"9999999999999", "2286-11-20 17:46:39.999 +0000 UTC"},
		{"10000000000000", "1970-04-26 17:46:40 +0000 UTC"},
		{"9999999999999999", "2286-11-20 17:46:39.999999 +0000 UTC"},
		{"10000000000000000", "1970-04-26 17:46:40 +0000 UTC"},
		{"1672903639123123123", "2023-01-05 07:27:19.123123123 +0000 UTC"},
		{"-1", "1969-12-31 23:59:59 +0000 UTC"},
		{"0", "1970-01-01 00:00:00 +0000 UTC"},
	} {
		ts, err := p.fromEpoch(tc.in)
		require.NoError(t, err, "for %q", tc.in)
		assert.Equal(t, tc.out, fmt.Sprintf("%v", ts), "for %q", tc.in)
	}
}

func TestEpochFraction(t *testing.T) {
	p := New()
	for _, tc := range []struct {
		in, out string
	}{
		{"1672903639.5", "2023-01-05 07:27:19.5 +0000 UTC"},
		{"1672903639.123", "2023-01-05 07:27:19.123 +0000 UTC"},
		{"1672903639.123456789", "2023-01-05 07:27:19.123456789 +0000 UTC"},
	} {
		ts, err := p.fromEpoch(tc.in)
		require.NoError(t, err, "for %q", tc.in)
		assert.Equal(t, tc.out, fmt.Sprintf("%v", ts), "for %q", tc.in)
	}
}

func TestEpochRejectsNonNumeric(t *testing.T) {
	p := New()
	for _, in := range []string{"", "1970-12-31", "12:30:00", "12.5.7", "1.2.3"} {
		_, err := p.fromEpoch(in)
		assert.Error(t, err, "for %q", in)
	}
}

func TestEpochAlwaysUTC(t *testing.T) {
	p := New(WithLocation(time.FixedZone("IST", 19800)))
	ts, err := p.fromEpoch("1672903639")
	require.NoError(t, err)
	_, off := ts.Zone()
	assert.Equal(t, 0, off)
}
