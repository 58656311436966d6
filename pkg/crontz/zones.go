package crontz

import (
	"fmt"
	"sort"
)

// zoneOffsets maps supported timezone labels to their fixed UTC offsets in
// hours. The table is deliberately DST-blind: a cron trigger converted
// with a fixed offset stays stable year-round, which is what deployment
// platforms expect from a generated schedule.
var zoneOffsets = map[string]float64{
	"UTC": 0,
	"GMT": 0,

	"SGT":            8,
	"Asia/Singapore": 8,
	"HKT":            8,
	"Asia/Hong_Kong": 8,
	"JST":            9,
	"Asia/Tokyo":     9,
	"IST":            5.5,
	"Asia/Kolkata":   5.5,

	"CET":           1,
	"Europe/Paris":  1,
	"Europe/Berlin": 1,
	"Europe/London": 0,

	"EST":                 -5,
	"America/New_York":    -5,
	"CST":                 -6,
	"America/Chicago":     -6,
	"PST":                 -8,
	"America/Los_Angeles": -8,

	"AEST":               10,
	"Australia/Sydney":   10,
	"ACST":               9.5,
	"Australia/Adelaide": 9.5,
}

// ZoneOffset resolves a timezone label to its fixed UTC offset.
func ZoneOffset(zone string) (float64, error) {
	offset, ok := zoneOffsets[zone]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedTimezone, zone)
	}

	return offset, nil
}

// Zones returns the supported timezone labels in sorted order.
func Zones() []string {
	names := make([]string, 0, len(zoneOffsets))
	for name := range zoneOffsets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// ConvertZone converts a cron literal anchored at a named timezone to UTC.
// Unknown labels fail with ErrUnsupportedTimezone.
func ConvertZone(literal, zone string) (*Result, error) {
	offset, err := ZoneOffset(zone)
	if err != nil {
		return nil, err
	}

	result, err := Convert(literal, offset)
	if err != nil {
		return nil, err
	}

	result.Original.Timezone = zone

	return result, nil
}
