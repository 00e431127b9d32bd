package feeds

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one raw feed entry: a mapping of feed-specific keys to
// primitive values (strings, numbers, or nested lists for photos).
type Record map[string]any

// String returns the first non-empty string value among the candidate
// keys, trimmed of surrounding whitespace. Missing keys and empty values
// yield "", never an error.
func (r Record) String(keys ...string) string {
	for _, key := range keys {
		value, ok := r[key]
		if !ok || value == nil {
			continue
		}
		s := strings.TrimSpace(stringify(value))
		if s != "" {
			return s
		}
	}
	return ""
}

// Number returns the first candidate key whose value parses to a
// non-zero number. Zero means "unknown" throughout the feeds, so a key
// holding "0" or unparsable text is skipped in favor of later
// candidates. When no candidate parses to non-zero the result is 0,
// never an error.
func (r Record) Number(keys ...string) float64 {
	for _, key := range keys {
		value, ok := r[key]
		if !ok || value == nil {
			continue
		}
		if n := ParseNumber(stringify(value)); n != 0 {
			return n
		}
	}
	return 0
}

// List returns the first list value among the candidate keys, or nil.
func (r Record) List(keys ...string) []any {
	for _, key := range keys {
		if list, ok := r[key].([]any); ok {
			return list
		}
	}
	return nil
}

// PhotoCount counts a record's photos: the length of an explicit list
// field if one exists, otherwise 1 when a single non-empty image field is
// present, otherwise 0.
func (r Record) PhotoCount(listKey, singleKey string) int {
	if list, ok := r[listKey].([]any); ok && len(list) > 0 {
		return len(list)
	}
	if r.String(singleKey) != "" {
		return 1
	}
	return 0
}

// ParseNumber parses a raw price or numeric field by stripping every
// character that is not a digit or decimal point and parsing the rest as
// a decimal. Empty or unparsable input yields 0, the "unknown" value;
// malformed fields are absorbed as soft defaults rather than surfaced
// as errors.
func ParseNumber(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	var b strings.Builder
	for _, c := range raw {
		if (c >= '0' && c <= '9') || c == '.' {
			b.WriteRune(c)
		}
	}
	if b.Len() == 0 {
		return 0
	}

	n, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return n
}

// CommaCount counts the non-empty, trimmed entries of a comma-separated
// value, such as an "additional images" field.
func CommaCount(raw string) int {
	if strings.TrimSpace(raw) == "" {
		return 0
	}
	count := 0
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	return count
}

// stringify renders a primitive feed value as a string. JSON numbers
// arrive as float64; integral values must not grow a ".000000" suffix.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
