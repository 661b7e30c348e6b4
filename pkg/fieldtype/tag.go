package fieldtype

import (
	"strconv"
	"strings"
)

// Tag carries the string attributes a content template declares for one field
// instance. Keys are lower-case attribute names.
type Tag map[string]string

// NewTag copies attrs into a Tag, normalising attribute names.
func NewTag(attrs map[string]string) Tag {
	tag := make(Tag, len(attrs))
	for name, value := range attrs {
		key := normalizeName(name)
		if key == "" {
			continue
		}
		tag[key] = value
	}
	return tag
}

// Has reports whether the attribute was declared at all.
func (t Tag) Has(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t[normalizeName(name)]
	return ok
}

// String returns the trimmed attribute value or "" when absent.
func (t Tag) String(name string) string {
	if t == nil {
		return ""
	}
	return strings.TrimSpace(t[normalizeName(name)])
}

// Int parses the leading base 10 integer of the attribute, so "3rows" is 3.
// Absent values, values without leading digits and out of range values yield 0.
func (t Tag) Int(name string) int {
	raw := t.String(name)
	end := 0
	if end < len(raw) && (raw[end] == '-' || raw[end] == '+') {
		end++
	}
	digits := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	value, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 0
	}
	return value
}

// Bool reports whether the attribute holds a truthy value. Absent attributes
// and "false" are false; only true, 1, yes and on count as true.
func (t Tag) Bool(name string) bool {
	switch strings.ToLower(t.String(name)) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}

// List splits a comma separated attribute. Entries are returned untrimmed so
// callers decide how to normalise them. Absent or blank attributes yield nil.
func (t Tag) List(name string) []string {
	if t == nil {
		return nil
	}
	raw := t[normalizeName(name)]
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

// With returns a copy of the tag with name set to value.
func (t Tag) With(name, value string) Tag {
	out := make(Tag, len(t)+1)
	for key, existing := range t {
		out[key] = existing
	}
	if key := normalizeName(name); key != "" {
		out[key] = value
	}
	return out
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
