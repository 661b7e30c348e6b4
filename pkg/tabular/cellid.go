package tabular

import "strconv"

// CellID names the input for grid position (row, col) of the grid identified
// by base. Admin inputs and submission lookups must both go through it.
func CellID(base string, row, col int) string {
	buf := make([]byte, 0, len(base)+16)
	buf = append(buf, base...)
	buf = append(buf, "_row"...)
	buf = strconv.AppendInt(buf, int64(row), 10)
	buf = append(buf, '_')
	buf = strconv.AppendInt(buf, int64(col), 10)
	return string(buf)
}
