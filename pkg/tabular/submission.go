package tabular

import (
	"strings"

	"github.com/goliatone/go-gridfield/pkg/fieldtype"
)

// ParseSubmission rebuilds the stored table from submitted form values. Cells
// are looked up by CellID(cfg.ID, row, col) over the declared shape and
// trimmed; missing or blank cells become "". Rows after the last row holding a
// non-blank cell are dropped, blank rows between populated rows are kept.
func ParseSubmission(cfg Config, values fieldtype.Values) Table {
	cols := cfg.Cols()
	table := Table{
		Titles: make([]string, 0, cols),
		Data:   [][]string{},
	}
	for _, title := range cfg.Titles {
		table.Titles = append(table.Titles, strings.TrimSpace(title))
	}
	if cfg.Rows <= 0 || cols == 0 {
		return table
	}

	rows := make([][]string, 0, cfg.Rows)
	lastPopulated := -1
	for row := 0; row < cfg.Rows; row++ {
		cells := make([]string, cols)
		for col := 0; col < cols; col++ {
			raw, ok := values.Lookup(CellID(cfg.ID, row, col))
			if !ok {
				continue
			}
			if value := strings.TrimSpace(raw); value != "" {
				cells[col] = value
				lastPopulated = row
			}
		}
		rows = append(rows, cells)
	}

	table.Data = rows[:lastPopulated+1]
	return table
}
