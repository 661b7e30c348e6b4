package fieldtype

import (
	"net/url"
	"strings"
)

// Values is the flat field-name to raw-value mapping of one form submission.
type Values map[string]string

// FromForm flattens url.Values keeping the first value submitted per key.
func FromForm(form url.Values) Values {
	if len(form) == 0 {
		return Values{}
	}
	out := make(Values, len(form))
	for key, entries := range form {
		if len(entries) == 0 {
			continue
		}
		out[key] = entries[0]
	}
	return out
}

// Lookup returns the submitted value for key.
func (v Values) Lookup(key string) (string, bool) {
	if v == nil {
		return "", false
	}
	value, ok := v[key]
	return value, ok
}

// Scoped returns the subset of values whose keys start with prefix, with the
// prefix removed. Hosts that namespace input names per item use it to hand a
// field type the keys it generated.
func (v Values) Scoped(prefix string) Values {
	if prefix == "" {
		return v
	}
	out := make(Values)
	for key, value := range v {
		if rest, ok := strings.CutPrefix(key, prefix); ok && rest != "" {
			out[rest] = value
		}
	}
	return out
}
