// Package crontz converts 5-field cron expressions between a source
// UTC offset and UTC, tracking day-boundary crossings.
//
// Conversion only re-bases what a 5-field cron expression can express:
// numeric hour forms are shifted by the integer part of the offset, while
// stepped and wildcard hours pass through unchanged. Anything the model
// cannot safely adjust (day-of-month shifts, multi-value weekdays) is left
// as-is and reported through the result's Notes.
package crontz

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jwtan/cronflow/pkg/cronfield"
)

// ErrFormat is returned when a cron literal has the wrong field count or
// an hour field the converter cannot parse.
var ErrFormat = errors.New("invalid cron expression")

// ErrUnsupportedTimezone is returned when a timezone label is not present
// in the fixed offset table.
var ErrUnsupportedTimezone = errors.New("unsupported timezone")

const hoursPerDay = 24

// Expression is an immutable 5-field cron expression with optional
// source metadata.
type Expression struct {
	Minute  string
	Hour    string
	Day     string
	Month   string
	Weekday string

	// Timezone is a free-form label for the zone the expression is
	// anchored to ("SGT", "UTC", ...). Empty when unknown.
	Timezone    string
	Description string
	// Raw preserves the literal the expression was parsed from.
	Raw string
}

// String renders the expression back to its 5-field literal form.
func (e Expression) String() string {
	return strings.Join([]string{e.Minute, e.Hour, e.Day, e.Month, e.Weekday}, " ")
}

// Result pairs a source expression with its UTC equivalent plus the notes
// accumulated during conversion.
type Result struct {
	Original    Expression
	Converted   Expression
	OffsetHours float64

	// Notes is an append-only record of everything the conversion could
	// not express exactly (midnight crossings, unadjusted fields).
	Notes []string

	// DayAdjustment is -1, 0 or +1 depending on whether the hour
	// conversion pushed the schedule to the previous or next day.
	DayAdjustment int

	// NextLocal and NextUTC are best-effort next execution instants,
	// computed only for simple daily schedules. Nil otherwise.
	NextLocal *time.Time
	NextUTC   *time.Time
}

func (r *Result) note(format string, args ...any) {
	r.Notes = append(r.Notes, fmt.Sprintf(format, args...))
}

// Convert produces the UTC equivalent of a cron literal anchored at the
// given UTC offset in hours. Half-hour offsets like +5.5 are accepted;
// only the truncated integer part shifts the hour field.
func Convert(literal string, offsetHours float64) (*Result, error) {
	fields := strings.Fields(strings.TrimSpace(literal))
	if len(fields) != cronfield.FieldCount {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrFormat, cronfield.FieldCount, len(fields))
	}

	original := Expression{
		Minute:  fields[0],
		Hour:    fields[1],
		Day:     fields[2],
		Month:   fields[3],
		Weekday: fields[4],
		Raw:     literal,
	}

	result := &Result{
		Original:    original,
		OffsetHours: offsetHours,
	}

	offset := int(offsetHours)

	hour, dayAdjust, err := result.convertHour(original.Hour, offset)
	if err != nil {
		return nil, err
	}
	result.DayAdjustment = dayAdjust

	day := result.convertDay(original.Day, dayAdjust)
	weekday := result.convertWeekday(original.Weekday, dayAdjust)

	// Minute and month are never altered by a whole-hour shift.
	result.Converted = Expression{
		Minute:   original.Minute,
		Hour:     hour,
		Day:      day,
		Month:    original.Month,
		Weekday:  weekday,
		Timezone: "UTC",
	}
	result.Converted.Raw = result.Converted.String()

	result.computeNextRuns(offsetHours)

	return result, nil
}

// convertHour re-bases one hour field by the integer offset, returning the
// converted field and the resulting day adjustment (-1, 0 or +1).
func (r *Result) convertHour(hour string, offset int) (string, int, error) {
	if hour == "*" || strings.Contains(hour, "/") {
		r.note("hour field %q left unchanged: wildcard and stepped hours are not re-based across timezones", hour)
		return hour, 0, nil
	}

	if strings.Contains(hour, ",") {
		return r.convertHourList(hour, offset)
	}

	if strings.Contains(hour, "-") {
		converted, adjust, err := r.convertHourRange(hour, offset)
		return converted, adjust, err
	}

	if err := cronfield.Validate(hour, cronfield.Hour); err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	value, _ := strconv.Atoi(hour)
	shifted := value - offset
	converted := wrapHour(shifted)

	adjust := 0
	switch {
	case shifted < 0:
		adjust = -1
		r.note("hour %d becomes %d UTC, moving to the previous day", value, converted)
	case shifted >= hoursPerDay:
		adjust = 1
		r.note("hour %d becomes %d UTC, moving to the next day", value, converted)
	}

	return strconv.Itoa(converted), adjust, nil
}

// convertHourList converts each element of a comma list independently.
// Embedded ranges that cross midnight after conversion are split in two.
func (r *Result) convertHourList(hour string, offset int) (string, int, error) {
	adjust := 0
	var out []string

	for _, elem := range strings.Split(hour, ",") {
		if strings.Contains(elem, "-") {
			converted, elemAdjust, err := r.convertHourRange(elem, offset)
			if err != nil {
				return "", 0, err
			}
			out = append(out, converted)
			if adjust == 0 {
				adjust = elemAdjust
			}
			continue
		}

		value, err := strconv.Atoi(elem)
		if err != nil || value < 0 || value >= hoursPerDay {
			return "", 0, fmt.Errorf("%w: hour list element %q", ErrFormat, elem)
		}

		shifted := value - offset
		if shifted < 0 && adjust == 0 {
			adjust = -1
		} else if shifted >= hoursPerDay && adjust == 0 {
			adjust = 1
		}

		out = append(out, strconv.Itoa(wrapHour(shifted)))
	}

	return strings.Join(out, ","), adjust, nil
}

// convertHourRange converts both ends of an a-b range. A range whose
// converted start exceeds its converted end crosses midnight and is
// re-expressed as "start-23,0-end".
func (r *Result) convertHourRange(elem string, offset int) (string, int, error) {
	bounds := strings.SplitN(elem, "-", 2)

	start, err := strconv.Atoi(bounds[0])
	if err != nil || start < 0 || start >= hoursPerDay {
		return "", 0, fmt.Errorf("%w: hour range start %q", ErrFormat, bounds[0])
	}

	end, err := strconv.Atoi(bounds[1])
	if err != nil || end < 0 || end >= hoursPerDay {
		return "", 0, fmt.Errorf("%w: hour range end %q", ErrFormat, bounds[1])
	}

	shiftedStart := start - offset
	shiftedEnd := end - offset

	adjust := 0
	if shiftedStart < 0 || shiftedEnd < 0 {
		adjust = -1
	} else if shiftedStart >= hoursPerDay || shiftedEnd >= hoursPerDay {
		adjust = 1
	}

	newStart := wrapHour(shiftedStart)
	newEnd := wrapHour(shiftedEnd)

	if newStart > newEnd {
		r.note("hour range %s crosses midnight after conversion; split into %d-23,0-%d", elem, newStart, newEnd)
		return fmt.Sprintf("%d-23,0-%d", newStart, newEnd), adjust, nil
	}

	return fmt.Sprintf("%d-%d", newStart, newEnd), adjust, nil
}

// convertDay leaves the day-of-month field untouched. Calendar-aware
// shifting (month lengths, leap years) is outside what a 5-field cron
// model can express, so a boundary crossing only produces a warning.
func (r *Result) convertDay(day string, dayAdjust int) string {
	if dayAdjust == 0 || day == "*" {
		return day
	}

	r.note("day-of-month field %q may need manual adjustment: the schedule moves to the %s day in UTC", day, directionWord(dayAdjust))

	return day
}

// convertWeekday shifts a plain numeric weekday by the day adjustment.
// Lists and ranges are left unchanged with a warning; multi-value weekday
// shifts are not attempted.
func (r *Result) convertWeekday(weekday string, dayAdjust int) string {
	if dayAdjust == 0 || weekday == "*" {
		return weekday
	}

	if strings.ContainsAny(weekday, ",-/") {
		r.note("weekday field %q left unchanged; adjust manually for the %s-day shift", weekday, directionWord(dayAdjust))
		return weekday
	}

	value, err := strconv.Atoi(weekday)
	if err != nil || value < 0 || value > 7 {
		r.note("weekday field %q cannot be adjusted automatically", weekday)
		return weekday
	}

	shifted := ((value+dayAdjust)%7 + 7) % 7
	r.note("weekday %d shifted to %d to follow the day change", value, shifted)

	return strconv.Itoa(shifted)
}

// computeNextRuns fills the best-effort next execution instants. Only
// simple daily schedules (plain integer minute and hour, everything else
// a wildcard) are attempted; the wall clock is read once per conversion.
func (r *Result) computeNextRuns(offsetHours float64) {
	minute, err := strconv.Atoi(r.Original.Minute)
	if err != nil {
		return
	}

	localHour, err := strconv.Atoi(r.Original.Hour)
	if err != nil {
		return
	}

	if r.Original.Day != "*" || r.Original.Month != "*" || r.Original.Weekday != "*" {
		return
	}

	utcHour, err := strconv.Atoi(r.Converted.Hour)
	if err != nil {
		return
	}

	now := time.Now().UTC()

	zone := time.FixedZone(offsetLabel(offsetHours), int(offsetHours*3600))
	localNow := now.In(zone)

	nextLocal := nextDaily(localNow, localHour, minute)
	nextUTC := nextDaily(now, utcHour, minute)

	r.NextLocal = &nextLocal
	r.NextUTC = &nextUTC
}

// nextDaily returns the next instant with the given wall-clock hour and
// minute that is strictly after now.
func nextDaily(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}

	return next
}

func wrapHour(h int) int {
	return (h%hoursPerDay + hoursPerDay) % hoursPerDay
}

func directionWord(dayAdjust int) string {
	if dayAdjust < 0 {
		return "previous"
	}

	return "next"
}

func offsetLabel(offsetHours float64) string {
	if offsetHours == float64(int(offsetHours)) {
		return fmt.Sprintf("UTC%+d", int(offsetHours))
	}

	return fmt.Sprintf("UTC%+.1f", offsetHours)
}
