package normdate

import (
	"strconv"
	"strings"
	"time"
)

const (
	maxEpochSeconds      = 9999999999
	maxEpochMilliseconds = 9999999999999
	maxEpochMicroseconds = 9999999999999999
)

// fromEpoch interprets the whole string as a numeric epoch timestamp. The
// magnitude of the integer part selects the unit: up to ten digits means
// seconds, up to thirteen milliseconds, up to sixteen microseconds, anything
// longer nanoseconds. A decimal fraction is kept as sub-unit precision.
// Epoch values are offset-less by definition, so the result is always UTC.
func (p *Parser) fromEpoch(datestr string) (time.Time, error) {
	intPart, fracPart := datestr, ""
	if i := strings.IndexByte(datestr, '.'); i >= 0 {
		intPart, fracPart = datestr[:i], datestr[i+1:]
	}
	v, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return time.Time{}, err
	}

	var unitNanos int64
	switch {
	case v >= -maxEpochSeconds && v <= maxEpochSeconds:
		unitNanos = int64(time.Second)
	case v >= -maxEpochMilliseconds && v <= maxEpochMilliseconds:
		unitNanos = int64(time.Millisecond)
	case v >= -maxEpochMicroseconds && v <= maxEpochMicroseconds:
		unitNanos = int64(time.Microsecond)
	default:
		unitNanos = 1
	}

	perSecond := int64(time.Second) / unitNanos
	secs := v / perSecond
	nanos := v % perSecond * unitNanos

	if fracPart != "" {
		if _, err := strconv.ParseUint(fracPart, 10, 64); err != nil {
			return time.Time{}, err
		}
		scale := unitNanos
		var frac int64
		for _, d := range fracPart {
			scale /= 10
			if scale == 0 {
				break
			}
			frac += int64(d-'0') * scale
		}
		if v < 0 {
			nanos -= frac
		} else {
			nanos += frac
		}
	}
	return time.Unix(secs, nanos).UTC(), nil
}
