// Package cronfield validates individual fields of a standard 5-field cron
// expression (minute, hour, day-of-month, month, day-of-week).
package cronfield

import (
	"fmt"
	"strconv"
	"strings"
)

// Field describes one position of a cron expression and its inclusive
// value range.
type Field struct {
	Name string
	Min  int
	Max  int
}

// The five standard cron fields in expression order.
var (
	Minute     = Field{Name: "minute", Min: 0, Max: 59}
	Hour       = Field{Name: "hour", Min: 0, Max: 23}
	DayOfMonth = Field{Name: "day-of-month", Min: 1, Max: 31}
	Month      = Field{Name: "month", Min: 1, Max: 12}
	// Day-of-week accepts 0-7; both 0 and 7 denote Sunday.
	DayOfWeek = Field{Name: "weekday", Min: 0, Max: 7}
)

// Fields lists the field descriptors in expression order.
var Fields = [5]Field{Minute, Hour, DayOfMonth, Month, DayOfWeek}

// FieldCount is the number of fields in a standard cron expression.
const FieldCount = 5

// Validate checks a single cron field value against the field's range.
// The grammar alternatives are tried in order: wildcard, stepped form,
// range, comma list, single integer. Ranges must satisfy a <= b; this is
// the strict policy used for schema validation (the timezone converter
// tolerates wraparound ranges separately).
func Validate(value string, f Field) error {
	if value == "*" {
		return nil
	}

	if strings.Contains(value, "/") {
		return validateStep(value, f)
	}

	if strings.Contains(value, "-") {
		return validateRange(value, f)
	}

	if strings.Contains(value, ",") {
		return validateList(value, f)
	}

	return validateSingle(value, f)
}

// ValidateExpression splits a 5-field cron literal and validates each field,
// returning one human-readable error string per violating field. A wrong
// field count yields a single error. An empty slice means the expression
// is valid.
func ValidateExpression(literal string) []string {
	var errs []string

	fields := strings.Fields(strings.TrimSpace(literal))
	if len(fields) != FieldCount {
		errs = append(errs, fmt.Sprintf("Cron schedule must have exactly %d fields, got %d", FieldCount, len(fields)))
		return errs
	}

	for i, f := range Fields {
		if err := Validate(fields[i], f); err != nil {
			errs = append(errs, fmt.Sprintf("Invalid %s in cron schedule: %v", f.Name, err))
		}
	}

	return errs
}

func validateStep(value string, f Field) error {
	parts := strings.SplitN(value, "/", 2)
	if len(parts) != 2 {
		return fmt.Errorf("malformed step expression %q", value)
	}

	step, err := strconv.Atoi(parts[1])
	if err != nil || step <= 0 {
		return fmt.Errorf("step must be a positive integer, got %q", parts[1])
	}

	base := parts[0]
	switch {
	case base == "*":
		return nil
	case strings.Contains(base, "-"):
		return validateRange(base, f)
	default:
		return validateSingle(base, f)
	}
}

func validateRange(value string, f Field) error {
	bounds := strings.SplitN(value, "-", 2)
	if len(bounds) != 2 {
		return fmt.Errorf("malformed range %q", value)
	}

	lo, err := strconv.Atoi(bounds[0])
	if err != nil {
		return fmt.Errorf("range start %q is not an integer", bounds[0])
	}

	hi, err := strconv.Atoi(bounds[1])
	if err != nil {
		return fmt.Errorf("range end %q is not an integer", bounds[1])
	}

	if lo < f.Min || hi > f.Max {
		return fmt.Errorf("range %d-%d outside bounds %d-%d", lo, hi, f.Min, f.Max)
	}

	if lo > hi {
		return fmt.Errorf("range start %d greater than end %d", lo, hi)
	}

	return nil
}

func validateList(value string, f Field) error {
	for _, part := range strings.Split(value, ",") {
		if err := validateSingle(part, f); err != nil {
			return err
		}
	}

	return nil
}

func validateSingle(value string, f Field) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("value %q is not an integer", value)
	}

	if v < f.Min || v > f.Max {
		return fmt.Errorf("value %d outside bounds %d-%d", v, f.Min, f.Max)
	}

	return nil
}
