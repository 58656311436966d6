package workflow

import (
	"fmt"
	"strings"

	"github.com/jwtan/cronflow/pkg/cronfield"
	"github.com/jwtan/cronflow/pkg/duration"
)

// Allow-lists for the closed enumerations in the schema. These are
// constant tables; unknown tags are validation errors, never lookups.
var (
	validMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH"}

	validAuthTypes = []string{"none", "bearer", "api_key", "basic", "custom"}

	validBackoffs = []string{"constant", "linear", "exponential"}

	validTimezones = []string{
		"UTC",
		"GMT",
		"Asia/Singapore",
		"Asia/Tokyo",
		"Asia/Hong_Kong",
		"Asia/Shanghai",
		"Asia/Kolkata",
		"Europe/London",
		"Europe/Paris",
		"Europe/Berlin",
		"America/New_York",
		"America/Chicago",
		"America/Los_Angeles",
		"America/Sao_Paulo",
		"Australia/Sydney",
		"Australia/Adelaide",
		"Australia/Perth",
	}
)

// authCompanions maps each auth type to the companion fields it requires.
var authCompanions = map[string][]string{
	"none":    nil,
	"bearer":  {"token"},
	"api_key": {"api_key"},
	"basic":   {"username", "password"},
	"custom":  {"custom_headers"},
}

// requiredFields are the top-level keys every workflow config must carry.
var requiredFields = []string{"name", "api_base", "steps"}

// Validator checks a decoded workflow configuration document against the
// schema. It accumulates findings instead of stopping at the first
// problem: every check runs, and the caller decides what a non-empty
// result means. The accumulator is created fresh per Validate call, so a
// single Validator can be reused across documents.
type Validator struct{}

// NewValidator returns a workflow configuration validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate runs every schema check over the decoded document and returns
// the findings in check order. An empty slice means the document is valid.
// Malformed content never panics or aborts; a non-mapping value simply
// fails the checks that expected a mapping.
func (v *Validator) Validate(doc map[string]any) []string {
	errs := []string{}

	for _, field := range requiredFields {
		if _, ok := doc[field]; !ok {
			errs = append(errs, fmt.Sprintf("Missing required field: %s", field))
		}
	}

	errs = append(errs, validateName(doc)...)
	errs = append(errs, validateAPIBase(doc)...)
	errs = append(errs, validateSchedule(doc)...)
	errs = append(errs, validateTimezone(doc)...)
	errs = append(errs, validateAuth(doc)...)
	errs = append(errs, validateSteps(doc)...)
	errs = append(errs, validateMonitoring(doc)...)

	return errs
}

func validateName(doc map[string]any) []string {
	raw, ok := doc["name"]
	if !ok {
		return nil
	}

	name, ok := raw.(string)
	if !ok || strings.TrimSpace(name) == "" {
		return []string{"Field 'name' must be a non-empty string"}
	}

	return nil
}

func validateAPIBase(doc map[string]any) []string {
	raw, ok := doc["api_base"]
	if !ok {
		return nil
	}

	base, ok := raw.(string)
	if !ok || !isHTTPURL(base) {
		return []string{"Field 'api_base' must be a string starting with http:// or https://"}
	}

	return nil
}

func validateSchedule(doc map[string]any) []string {
	raw, ok := doc["schedule"]
	if !ok {
		return nil
	}

	literal, ok := raw.(string)
	if !ok {
		return []string{"Field 'schedule' must be a cron string"}
	}

	return cronfield.ValidateExpression(literal)
}

func validateTimezone(doc map[string]any) []string {
	raw, ok := doc["timezone"]
	if !ok {
		return nil
	}

	zone, ok := raw.(string)
	if !ok || !inList(validTimezones, zone) {
		return []string{fmt.Sprintf("Invalid timezone: %v (must be one of %s)", raw, strings.Join(validTimezones, ", "))}
	}

	return nil
}

func validateAuth(doc map[string]any) []string {
	raw, ok := doc["auth"]
	if !ok {
		return nil
	}

	auth, ok := raw.(map[string]any)
	if !ok {
		return []string{"Field 'auth' must be a mapping"}
	}

	var errs []string

	rawType, ok := auth["type"]
	if !ok {
		return []string{"Missing 'type' in auth configuration"}
	}

	authType, ok := rawType.(string)
	if !ok || !inList(validAuthTypes, authType) {
		return []string{fmt.Sprintf("Invalid auth type: %v (must be one of %s)", rawType, strings.Join(validAuthTypes, ", "))}
	}

	for _, companion := range authCompanions[authType] {
		if _, ok := auth[companion]; !ok {
			errs = append(errs, fmt.Sprintf("Auth type '%s' requires field '%s'", authType, companion))
		}
	}

	return errs
}

func validateSteps(doc map[string]any) []string {
	raw, ok := doc["steps"]
	if !ok {
		return nil
	}

	steps, ok := raw.([]any)
	if !ok || len(steps) == 0 {
		return []string{"Field 'steps' must be a non-empty list"}
	}

	var errs []string

	// First pass: per-step checks, collecting every name we see so the
	// dependency pass can resolve against the full set regardless of
	// other errors on a step.
	seen := map[string]struct{}{}
	for i, rawStep := range steps {
		step, ok := rawStep.(map[string]any)
		if !ok {
			errs = append(errs, fmt.Sprintf("steps[%d] must be a mapping", i))
			continue
		}

		name := stepName(step)
		label := stepLabel(i, name)

		if name == "" {
			errs = append(errs, fmt.Sprintf("steps[%d] is missing required field 'name'", i))
		} else if _, dup := seen[name]; dup {
			errs = append(errs, fmt.Sprintf("Duplicate step name: '%s'", name))
		} else {
			seen[name] = struct{}{}
		}

		errs = append(errs, validateStepEndpoint(step, label)...)
		errs = append(errs, validateStepMethod(step, label)...)
		errs = append(errs, validateRetry(step, label)...)

		if rawDeps, ok := step["depends_on"]; ok {
			if _, ok := rawDeps.([]any); !ok {
				errs = append(errs, fmt.Sprintf("%s: depends_on must be a list", label))
			}
		}
	}

	// Second pass: cross-reference dependencies against the collected
	// name set.
	for i, rawStep := range steps {
		step, ok := rawStep.(map[string]any)
		if !ok {
			continue
		}

		deps, ok := step["depends_on"].([]any)
		if !ok {
			continue
		}

		label := stepLabel(i, stepName(step))
		for _, rawDep := range deps {
			dep, ok := rawDep.(string)
			if !ok {
				errs = append(errs, fmt.Sprintf("%s: depends_on entries must be step names", label))
				continue
			}
			if _, exists := seen[dep]; !exists {
				errs = append(errs, fmt.Sprintf("%s: depends on unknown step '%s'", label, dep))
			}
		}
	}

	return errs
}

func validateStepEndpoint(step map[string]any, label string) []string {
	raw, ok := step["endpoint"]
	if !ok {
		return []string{fmt.Sprintf("%s is missing required field 'endpoint'", label)}
	}

	endpoint, ok := raw.(string)
	if !ok || strings.TrimSpace(endpoint) == "" {
		return []string{fmt.Sprintf("%s: endpoint must be a non-empty string", label)}
	}

	return nil
}

func validateStepMethod(step map[string]any, label string) []string {
	raw, ok := step["method"]
	if !ok {
		return nil
	}

	method, ok := raw.(string)
	if !ok || !inList(validMethods, method) {
		return []string{fmt.Sprintf("%s: invalid method %v (must be one of %s)", label, raw, strings.Join(validMethods, ", "))}
	}

	return nil
}

func validateRetry(step map[string]any, label string) []string {
	raw, ok := step["retry"]
	if !ok {
		return nil
	}

	retry, ok := raw.(map[string]any)
	if !ok {
		return []string{fmt.Sprintf("%s: retry must be a mapping", label)}
	}

	var errs []string

	rawLimit, ok := retry["limit"]
	if !ok {
		errs = append(errs, fmt.Sprintf("%s: retry is missing required field 'limit'", label))
	} else if limit, ok := asInt(rawLimit); !ok || limit < 0 {
		errs = append(errs, fmt.Sprintf("%s: retry limit must be a non-negative integer", label))
	}

	rawDelay, ok := retry["delay"]
	if !ok {
		errs = append(errs, fmt.Sprintf("%s: retry is missing required field 'delay'", label))
	} else if delay, ok := rawDelay.(string); !ok || !duration.ValidDelay(delay) {
		errs = append(errs, fmt.Sprintf("%s: retry delay must be digits followed by one of s, m, h", label))
	}

	if rawBackoff, ok := retry["backoff"]; ok {
		if backoff, isStr := rawBackoff.(string); !isStr || !inList(validBackoffs, backoff) {
			errs = append(errs, fmt.Sprintf("%s: retry backoff must be one of %s", label, strings.Join(validBackoffs, ", ")))
		}
	}

	return errs
}

func validateMonitoring(doc map[string]any) []string {
	raw, ok := doc["monitoring"]
	if !ok {
		return nil
	}

	monitoring, ok := raw.(map[string]any)
	if !ok {
		return []string{"Field 'monitoring' must be a mapping"}
	}

	rawURL, ok := monitoring["webhook_url"]
	if !ok {
		return nil
	}

	url, ok := rawURL.(string)
	if !ok || !isHTTPURL(url) {
		return []string{"Monitoring webhook_url must start with http:// or https://"}
	}

	return nil
}

func stepName(step map[string]any) string {
	name, _ := step["name"].(string)
	return strings.TrimSpace(name)
}

func stepLabel(i int, name string) string {
	if name != "" {
		return fmt.Sprintf("step '%s'", name)
	}

	return fmt.Sprintf("steps[%d]", i)
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func inList(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}

	return false
}

// asInt narrows a decoded YAML scalar to an int. Booleans and floats are
// rejected; YAML decodes whole numbers as int or int64 depending on size.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}
