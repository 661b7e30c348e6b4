package tabular

import (
	"html"
	"strings"
)

// RenderAdminGrid renders the editable grid for cfg, pre-filled from prior.
// The grid always has cfg.Rows rows and cfg.Cols() columns; prior cells
// outside that shape are not rendered. An invalid cfg renders an error notice
// instead of a grid.
func RenderAdminGrid(cfg Config, prior Table) string {
	if err := cfg.Validate(); err != nil {
		return ErrorNotice(err.Error())
	}

	view := newAdminView(cfg, prior)

	var b strings.Builder
	b.Grow(128 + len(view.Rows)*len(view.Titles)*96)

	b.WriteString(`<table id="`)
	b.WriteString(html.EscapeString(view.ID))
	b.WriteString(`" class="tabular" cellspacing="0" cellpadding="0"><thead><tr>`)
	for _, title := range view.Titles {
		b.WriteString(`<th>`)
		b.WriteString(html.EscapeString(title))
		b.WriteString(`</th>`)
	}
	b.WriteString(`</tr></thead><tbody>`)

	for _, row := range view.Rows {
		b.WriteString(`<tr>`)
		for _, cell := range row {
			b.WriteString(`<td>`)
			writeTextInput(&b, cell.ID, cell.Value)
			b.WriteString(`</td>`)
		}
		b.WriteString(`</tr>`)
	}

	b.WriteString(`</tbody></table>`)
	return b.String()
}

// ErrorNotice renders message as the inline admin error block.
func ErrorNotice(message string) string {
	return `<div class="error" style="clear: both; padding: 10px; margin: 12px 0;">` + html.EscapeString(message) + `</div>`
}

type adminCell struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

type adminView struct {
	ID     string        `json:"id"`
	Titles []string      `json:"titles"`
	Rows   [][]adminCell `json:"rows"`
}

func newAdminView(cfg Config, prior Table) adminView {
	cols := cfg.Cols()
	view := adminView{
		ID:     cfg.InputID,
		Titles: cfg.Titles,
		Rows:   make([][]adminCell, cfg.Rows),
	}
	for row := 0; row < cfg.Rows; row++ {
		cells := make([]adminCell, cols)
		for col := 0; col < cols; col++ {
			value, _ := prior.Cell(row, col)
			cells[col] = adminCell{
				ID:    CellID(cfg.InputID, row, col),
				Value: strings.TrimSpace(value),
			}
		}
		view.Rows[row] = cells
	}
	return view
}

// escaped returns a copy with every string HTML-escaped the way the built-in
// grid escapes them. Partials print these fields with |safe.
func (v adminView) escaped() adminView {
	out := adminView{
		ID:     html.EscapeString(v.ID),
		Titles: make([]string, len(v.Titles)),
		Rows:   make([][]adminCell, len(v.Rows)),
	}
	for i, title := range v.Titles {
		out.Titles[i] = html.EscapeString(title)
	}
	for r, row := range v.Rows {
		cells := make([]adminCell, len(row))
		for c, cell := range row {
			cells[c] = adminCell{ID: html.EscapeString(cell.ID), Value: html.EscapeString(cell.Value)}
		}
		out.Rows[r] = cells
	}
	return out
}

func writeTextInput(b *strings.Builder, id, value string) {
	escapedID := html.EscapeString(id)
	b.WriteString(`<input type="text" id="`)
	b.WriteString(escapedID)
	b.WriteString(`" name="`)
	b.WriteString(escapedID)
	b.WriteString(`" value="`)
	b.WriteString(html.EscapeString(value))
	b.WriteString(`" class="text" />`)
}
