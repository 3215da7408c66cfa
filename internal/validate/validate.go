// Package validate applies declarative per-field rules to decoded request
// input. Every rule is evaluated independently and all failures are collected
// into a single report, so a client fixing a multi-field submission sees every
// problem at once.
package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// FieldError names a failing field and its human-readable message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the ordered list of failures produced by Apply.
type Errors []FieldError

// Check reports whether a decoded JSON value satisfies a predicate.
type Check func(value any) bool

// Rule binds a field name to a predicate and a failure message.
type Rule struct {
	Field    string
	Required bool
	Check    Check
	Message  string
}

// Required builds a rule for a field that must be present and valid.
func Required(field string, check Check, message string) Rule {
	return Rule{Field: field, Required: true, Check: check, Message: message}
}

// Optional builds a rule for a field that may be omitted. A present value
// must still satisfy the predicate; optionality is not a free pass.
func Optional(field string, check Check, message string) Rule {
	return Rule{Field: field, Check: check, Message: message}
}

// Apply evaluates every rule against the input and returns all failures in
// rule order. A nil-valued or absent optional field is skipped entirely.
func Apply(input map[string]any, rules []Rule) Errors {
	var errs Errors
	for _, rule := range rules {
		value, present := input[rule.Field]
		if !present || value == nil {
			if rule.Required {
				errs = append(errs, FieldError{Field: rule.Field, Message: rule.Message})
			}
			continue
		}
		if rule.Check != nil && !rule.Check(value) {
			errs = append(errs, FieldError{Field: rule.Field, Message: rule.Message})
		}
	}
	return errs
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NonEmpty accepts a string with non-whitespace content.
func NonEmpty(value any) bool {
	s, ok := value.(string)
	return ok && strings.TrimSpace(s) != ""
}

// String accepts any string, including the empty string.
func String(value any) bool {
	_, ok := value.(string)
	return ok
}

// Email accepts an email-shaped string.
func Email(value any) bool {
	s, ok := value.(string)
	return ok && emailPattern.MatchString(strings.TrimSpace(s))
}

// MinLen accepts a string of at least n characters.
func MinLen(n int) Check {
	return func(value any) bool {
		s, ok := value.(string)
		return ok && len(s) >= n
	}
}

// Numeric accepts a JSON number or a string holding one.
func Numeric(value any) bool {
	switch v := value.(type) {
	case float64:
		return true
	case int:
		return true
	case string:
		_, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return err == nil
	default:
		return false
	}
}

// Bool accepts a JSON boolean.
func Bool(value any) bool {
	_, ok := value.(bool)
	return ok
}

var iso8601Layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ISO8601 accepts a string in an ISO-8601 date or datetime layout.
func ISO8601(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	_, err := ParseTime(s)
	return err == nil
}

// ParseTime parses an ISO-8601 date or datetime string.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range iso8601Layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// OneOf accepts a string equal to one of the listed literals.
func OneOf(values ...string) Check {
	return func(value any) bool {
		s, ok := value.(string)
		if !ok {
			return false
		}
		for _, candidate := range values {
			if s == candidate {
				return true
			}
		}
		return false
	}
}
