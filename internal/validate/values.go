package validate

import (
	"strconv"
	"strings"
	"time"
)

// Values is a validated input bag with typed accessors. Accessors assume the
// corresponding rule already passed; they return zero values otherwise.
type Values map[string]any

// Has reports whether the field was supplied with a non-nil value.
func (v Values) Has(field string) bool {
	value, present := v[field]
	return present && value != nil
}

// String returns the field as a trimmed string.
func (v Values) String(field string) string {
	s, _ := v[field].(string)
	return strings.TrimSpace(s)
}

// StringPtr returns the field as a trimmed string pointer, or nil when absent.
func (v Values) StringPtr(field string) *string {
	if !v.Has(field) {
		return nil
	}
	s := v.String(field)
	return &s
}

// Int returns the field as an int, accepting JSON numbers and numeric strings.
func (v Values) Int(field string) int {
	switch value := v[field].(type) {
	case float64:
		return int(value)
	case int:
		return value
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(value))
		return n
	default:
		return 0
	}
}

// IntPtr returns the field as an int pointer, or nil when absent.
func (v Values) IntPtr(field string) *int {
	if !v.Has(field) {
		return nil
	}
	n := v.Int(field)
	return &n
}

// Bool returns the field as a boolean.
func (v Values) Bool(field string) bool {
	b, _ := v[field].(bool)
	return b
}

// Time returns the field parsed as an ISO-8601 date or datetime.
func (v Values) Time(field string) time.Time {
	t, _ := ParseTime(v.String(field))
	return t
}
