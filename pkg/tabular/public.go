package tabular

import "strings"

// RenderPublic renders a stored table for the public site. LimitRows and
// LimitCols cap the output when positive and smaller than what is stored.
// NoHeaders drops the <table> wrapper and the header row so the rows can be
// embedded in caller markup. Cells are passed through sanitizer; a nil
// sanitizer emits them unchanged.
func RenderPublic(table Table, cfg Config, sanitizer Sanitizer) string {
	view := newPublicView(table, cfg, sanitizer)

	var b strings.Builder
	if !view.NoHeaders {
		b.WriteString(`<table><thead><tr>`)
		for _, title := range view.Titles {
			b.WriteString(`<th>`)
			b.WriteString(title)
			b.WriteString(`</th>`)
		}
		b.WriteString(`</tr></thead>`)
	}

	b.WriteString(`<tbody>`)
	for _, row := range view.Rows {
		b.WriteString(`<tr>`)
		for _, cell := range row {
			b.WriteString(`<td>`)
			b.WriteString(cell)
			b.WriteString(`</td>`)
		}
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</tbody>`)

	if !view.NoHeaders {
		b.WriteString(`</table>`)
	}
	return b.String()
}

// SearchText returns the text indexed for a stored table. Tabular fields do
// not contribute to search.
func SearchText(any) string {
	return ""
}

type publicView struct {
	NoHeaders bool       `json:"noheaders"`
	Titles    []string   `json:"titles"`
	Rows      [][]string `json:"rows"`
}

func newPublicView(table Table, cfg Config, sanitizer Sanitizer) publicView {
	if sanitizer == nil {
		sanitizer = PassThrough{}
	}

	rows := capTo(len(table.Data), cfg.LimitRows)
	cols := capTo(len(table.Titles), cfg.LimitCols)

	view := publicView{
		NoHeaders: cfg.NoHeaders,
		Titles:    make([]string, cols),
		Rows:      make([][]string, rows),
	}
	for col := 0; col < cols; col++ {
		view.Titles[col] = sanitizer.Sanitize(table.Titles[col])
	}
	for row := 0; row < rows; row++ {
		cells := make([]string, cols)
		for col := 0; col < cols; col++ {
			// Short rows only come from foreign data; missing cells render empty.
			value, _ := table.Cell(row, col)
			cells[col] = sanitizer.Sanitize(value)
		}
		view.Rows[row] = cells
	}
	return view
}

func capTo(actual, limit int) int {
	if limit > 0 && limit < actual {
		return limit
	}
	return actual
}
