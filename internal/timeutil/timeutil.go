// Package timeutil provides utility functions for formatting stopwatch values
// and parsing user supplied dates.
package timeutil

import (
	"fmt"
	"math"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// absorbs representation error such as 0.29*100 == 28.999999999999996
const epsilon = 1e-9

// Truncate drops every digit after the given number of decimal places.
func Truncate(seconds float64, places int) float64 {
	p := math.Pow10(places)

	return math.Trunc(seconds*p+epsilon) / p
}

// FormatStopwatch renders seconds the way the running clock shows them: two
// decimals, truncated.
func FormatStopwatch(seconds float64) string {
	return fmt.Sprintf("%05.2f", Truncate(seconds, 2))
}

// FormatDeviation renders the signed distance from the goal: "+" when the
// clock was stopped late and "-" otherwise.
func FormatDeviation(elapsed, goal float64) string {
	sign := "-"
	if elapsed > goal {
		sign = "+"
	}

	return fmt.Sprintf("%s%.2fs", sign, math.Abs(elapsed-goal))
}

// FromStr parses an absolute or relative date such as "yesterday",
// "2 weeks ago" or "2025-03-14" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q: %w", s, err)
	}

	return dt.Time, nil
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}
