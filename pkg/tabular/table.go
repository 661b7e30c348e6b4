package tabular

import (
	"encoding/json"
	"strings"
)

// Stored keys of the persisted representation.
const (
	TitlesKey = "titles"
	DataKey   = "data"
)

// Table is the persisted value of a tabular field: the column titles at save
// time and the row-major cell values. Rows written by ParseSubmission always
// have one cell per title.
type Table struct {
	Titles []string   `json:"titles"`
	Data   [][]string `json:"data"`
}

// Rows returns the number of stored rows.
func (t Table) Rows() int {
	return len(t.Data)
}

// Cell returns the value at (row, col) and whether it exists.
func (t Table) Cell(row, col int) (string, bool) {
	if row < 0 || row >= len(t.Data) {
		return "", false
	}
	cells := t.Data[row]
	if col < 0 || col >= len(cells) {
		return "", false
	}
	return cells[col], true
}

// MarshalJSON keeps empty tables encoding as arrays rather than null.
func (t Table) MarshalJSON() ([]byte, error) {
	type plain Table
	out := plain(t)
	if out.Titles == nil {
		out.Titles = []string{}
	}
	if out.Data == nil {
		out.Data = [][]string{}
	}
	return json.Marshal(out)
}

// DecodeTable interprets a previously persisted value. It accepts a Table, a
// *Table, JSON bytes or text, or a decoded JSON object. Anything it cannot
// read returns false so callers treat it as "no prior data".
func DecodeTable(raw any) (Table, bool) {
	switch v := raw.(type) {
	case nil:
		return Table{}, false
	case Table:
		return v, true
	case *Table:
		if v == nil {
			return Table{}, false
		}
		return *v, true
	case json.RawMessage:
		return decodeJSON(v)
	case []byte:
		return decodeJSON(v)
	case string:
		if strings.TrimSpace(v) == "" {
			return Table{}, false
		}
		return decodeJSON([]byte(v))
	case map[string]any:
		return decodeMap(v)
	default:
		return Table{}, false
	}
}

func decodeJSON(data []byte) (Table, bool) {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return Table{}, false
	}
	m, ok := decoded.(map[string]any)
	if !ok {
		return Table{}, false
	}
	return decodeMap(m)
}

func decodeMap(m map[string]any) (Table, bool) {
	normalized, err := normalizeJSON(m)
	if err != nil {
		return Table{}, false
	}
	if err := ValidateStored(normalized); err != nil {
		return Table{}, false
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return Table{}, false
	}
	var table Table
	if err := json.Unmarshal(payload, &table); err != nil {
		return Table{}, false
	}
	return table, true
}

// normalizeJSON round-trips v so typed slices ([]string, [][]string) become
// the generic shapes the schema validator walks.
func normalizeJSON(v any) (any, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}
