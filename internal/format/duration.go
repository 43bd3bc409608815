package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseDuration converts a human time string like "25:36:59" to seconds.
// Components are weighted right to left (seconds, minutes, hours); at most
// the last three are read. Empty or unparsable input yields 0.0: durations
// are a best-effort fallback for collaborators and never an error.
func ParseDuration(duration string) float64 {
	if duration == "" {
		return 0.0
	}

	parts := strings.Split(duration, ":")
	multipliers := [...]float64{1, 60, 3600}

	var seconds float64
	for i := 0; i < len(multipliers) && i < len(parts); i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1-i]))
		if err != nil {
			return 0.0
		}
		seconds += multipliers[i] * float64(v)
	}
	return seconds
}

// TimestampToMilliseconds reads an "HH:MM:SS.fff" timestamp at fixed
// character offsets, not via general parsing, and returns the millisecond
// count. Only the second fractional digit is read as the millisecond
// component, mirroring the lyric timestamp layout this is used for.
// precision > 0 rounds the result to that many decimals.
func TimestampToMilliseconds(ts string, precision int) (float64, error) {
	if len(ts) < 11 {
		return 0, fmt.Errorf("timestamp %q is too short", ts)
	}

	hour, err := strconv.Atoi(ts[0:2])
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: %w", ts, err)
	}
	minute, err := strconv.Atoi(ts[3:5])
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: %w", ts, err)
	}
	sec, err := strconv.Atoi(ts[6:8])
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: %w", ts, err)
	}
	ms, err := strconv.Atoi(ts[10:11])
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: %w", ts, err)
	}

	return round(MillisecondsFromParts(hour, minute, sec, ms), precision), nil
}

// MillisecondsFromParts converts explicit hour/minute/second/millisecond
// components into a millisecond count.
func MillisecondsFromParts(hour, minute, sec, ms int) float64 {
	return float64(hour)*60*60*1000 + float64(minute)*60*1000 + float64(sec)*1000 + float64(ms)
}

func round(v float64, precision int) float64 {
	if precision <= 0 {
		return v
	}
	p := math.Pow(10, float64(precision))
	return math.Round(v*p) / p
}
