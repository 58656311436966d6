package crontz

import (
	"strconv"
	"strings"
)

// sgtOffsetHours is the fixed Singapore Time offset from UTC.
const sgtOffsetHours = 8

// SGTHourDisplay rewrites the hour field of a UTC cron literal as the
// corresponding SGT wall-clock label for display, recomputing a plain
// integer hour as (hour - 8) mod 24. Any other hour shape, or a literal
// that is not 5 fields, is returned unmodified.
//
// This is a best-effort display helper for listings, not an inverse of
// Convert; it deliberately ignores day-boundary effects.
func SGTHourDisplay(utcLiteral string) string {
	fields := strings.Fields(strings.TrimSpace(utcLiteral))
	if len(fields) != 5 {
		return utcLiteral
	}

	hour, err := strconv.Atoi(fields[1])
	if err != nil {
		return utcLiteral
	}

	fields[1] = strconv.Itoa(wrapHour(hour - sgtOffsetHours))

	return strings.Join(fields, " ")
}
