package crontz

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownSchedule is returned when a schedule name is not registered.
var ErrUnknownSchedule = errors.New("unknown schedule name")

// namedSchedules maps well-known schedule names to their cron literals.
// Literals are expressed in the source timezone; conversion to UTC happens
// per call.
var namedSchedules = map[string]string{
	"daily_2am":         "0 2 * * *",
	"daily_6am":         "0 6 * * *",
	"daily_noon":        "0 12 * * *",
	"daily_midnight":    "0 0 * * *",
	"hourly":            "0 * * * *",
	"every_15min":       "*/15 * * * *",
	"every_30min":       "*/30 * * * *",
	"weekly_monday_9am": "0 9 * * 1",
	"monthly_first_3am": "0 3 1 * *",
}

// Schedule resolves a registered schedule name to its cron literal.
func Schedule(name string) (string, bool) {
	literal, ok := namedSchedules[name]
	return literal, ok
}

// ScheduleNames returns the registered schedule names in sorted order.
func ScheduleNames() []string {
	names := make([]string, 0, len(namedSchedules))
	for name := range namedSchedules {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// ConvertNamed converts a registered schedule to UTC using the given
// source offset.
func ConvertNamed(name string, offsetHours float64) (*Result, error) {
	literal, ok := namedSchedules[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchedule, name)
	}

	result, err := Convert(literal, offsetHours)
	if err != nil {
		return nil, err
	}

	result.Original.Description = name

	return result, nil
}
