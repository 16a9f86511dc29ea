package types

import (
	"encoding/json"
	"strconv"
	"time"
)

// IDField is the designated identifier field present on every Record.
const IDField = "id"

// Record is a single backend entity: an opaque map from field name to value.
// Values are whatever the JSON decoder produced (string, float64, bool, nil).
// Accessor methods coerce leniently and never panic on malformed values.
type Record map[string]any

// ID returns the record's identifier, or "" if absent or not a string.
func (r Record) ID() string {
	s, _ := r[IDField].(string)
	return s
}

// Has reports whether the field is present with a non-nil value.
func (r Record) Has(name string) bool {
	v, ok := r[name]
	return ok && v != nil
}

// StringField returns the field coerced to a string. Numbers and booleans
// are formatted; nil and missing fields report ok=false.
func (r Record) StringField(name string) (string, bool) {
	v, ok := r[name]
	if !ok || v == nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		return strconv.FormatBool(t), true
	case json.Number:
		return t.String(), true
	default:
		return "", false
	}
}

// NumberField returns the field coerced to a float64. Numeric strings are
// parsed; anything else reports ok=false.
func (r Record) NumberField(name string) (float64, bool) {
	v, ok := r[name]
	if !ok || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// BoolField returns the field coerced to a bool.
func (r Record) BoolField(name string) (bool, bool) {
	v, ok := r[name]
	if !ok || v == nil {
		return false, false
	}
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		b, err := strconv.ParseBool(t)
		return b, err == nil
	default:
		return false, false
	}
}

// timeLayouts are the accepted timestamp formats, tried in order.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// TimeField returns the field parsed as a timestamp. A time.Time value is
// returned as-is; strings are tried against the accepted layouts. Malformed
// values report ok=false, never an error.
func (r Record) TimeField(name string) (time.Time, bool) {
	v, ok := r[name]
	if !ok || v == nil {
		return time.Time{}, false
	}
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		for _, layout := range timeLayouts {
			if ts, err := time.Parse(layout, t); err == nil {
				return ts, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
