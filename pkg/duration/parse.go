// Package duration parses the strict retry-delay grammar used in workflow
// configurations.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// delayPattern matches retry delays like "30s", "5m", "1h": one or more
// digits followed by exactly one unit letter. No fractions, no whitespace,
// no compound values.
var delayPattern = regexp.MustCompile(`^(\d+)([smh])$`)

// unitMultipliers maps the allowed unit suffixes to their duration values.
var unitMultipliers = map[string]time.Duration{
	"s": time.Second,
	"m": time.Minute,
	"h": time.Hour,
}

// ValidDelay reports whether s matches the retry-delay grammar.
func ValidDelay(s string) bool {
	return delayPattern.MatchString(s)
}

// ParseDelay parses a retry-delay string into a time.Duration.
//
// Unlike time.ParseDuration, only whole-number values with a single
// s/m/h suffix are accepted:
//
//	ParseDelay("30s") // 30 seconds
//	ParseDelay("5m")  // 5 minutes
//	ParseDelay("1h")  // 1 hour
//
// Values like "1.5h", "30 s", "2d" or "1h30m" are rejected.
func ParseDelay(s string) (time.Duration, error) {
	matches := delayPattern.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("invalid delay %q: must be digits followed by one of s, m, h", s)
	}

	value, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid delay value %q in %q", matches[1], s)
	}

	return time.Duration(value) * unitMultipliers[matches[2]], nil
}
