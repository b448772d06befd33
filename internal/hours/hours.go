// Package hours evaluates free-text business-hours strings against a time
// of day. The catalog carries hours as arbitrary text; only strings shaped
// like "8:00 AM – 10:00 PM" can be evaluated, everything else is Unknown.
package hours

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Verdict is the tri-state outcome of evaluating an hours string.
type Verdict string

const (
	Open    Verdict = "open"
	Closed  Verdict = "closed"
	Unknown Verdict = "unknown"
)

const minutesPerDay = 24 * 60

// rangePattern matches "<H>:<MM> <AM|PM> <sep> <H>:<MM> <AM|PM>" where the
// separator is a hyphen or en-dash with optional surrounding whitespace.
var rangePattern = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)\s*[–-]\s*(\d{1,2}):(\d{2})\s*(AM|PM)`)

// Evaluate parses hoursText and reports whether a venue is open at
// nowMinutes (minutes since midnight). Text without a recognizable time
// range yields Unknown.
//
// A close time resolving to minute 0 means the venue closes at the end of
// the current day, not at its start, so it is reinterpreted as minute 1440.
// When the close time is still numerically ≤ the open time the range spans
// midnight and the open interval wraps around.
func Evaluate(hoursText string, nowMinutes int) Verdict {
	m := rangePattern.FindStringSubmatch(hoursText)
	if m == nil {
		return Unknown
	}

	openMinutes := toMinutes(m[1], m[2], m[3])
	closeMinutes := toMinutes(m[4], m[5], m[6])
	if closeMinutes == 0 {
		closeMinutes = minutesPerDay
	}

	if closeMinutes > openMinutes {
		if nowMinutes >= openMinutes && nowMinutes < closeMinutes {
			return Open
		}
		return Closed
	}

	// Overnight range, e.g. "10:00 PM – 2:00 AM".
	if nowMinutes >= openMinutes || nowMinutes < closeMinutes {
		return Open
	}
	return Closed
}

// MinutesOfDay returns t's wall-clock time as minutes since midnight.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func toMinutes(hourStr, minStr, period string) int {
	hour, _ := strconv.Atoi(hourStr)
	min, _ := strconv.Atoi(minStr)

	pm := strings.EqualFold(period, "PM")
	if pm && hour != 12 {
		hour += 12
	}
	if !pm && hour == 12 {
		hour = 0
	}
	return hour*60 + min
}
