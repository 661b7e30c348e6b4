package tabular_test

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/goliatone/go-gridfield/pkg/fieldtype"
	"github.com/goliatone/go-gridfield/pkg/tabular"
)

func titles(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "C" + strings.Repeat("x", i)
	}
	return out
}

func TestGridProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("cell ids are unique within a grid", prop.ForAll(
		func(rows, cols int) bool {
			seen := make(map[string]struct{}, rows*cols)
			for r := 0; r < rows; r++ {
				for c := 0; c < cols; c++ {
					id := tabular.CellID("f", r, c)
					if _, dup := seen[id]; dup {
						return false
					}
					seen[id] = struct{}{}
				}
			}
			return true
		},
		gen.IntRange(1, 40),
		gen.IntRange(1, 40),
	))

	properties.Property("admin grid always has the declared shape", prop.ForAll(
		func(rows, cols, storedRows, storedCols int) bool {
			cfg := tabular.Config{ID: "f", InputID: "f", Rows: rows, Titles: titles(cols)}
			prior := tabular.Table{Data: make([][]string, storedRows)}
			for i := range prior.Data {
				prior.Data[i] = make([]string, storedCols)
			}

			out := tabular.RenderAdminGrid(cfg, prior)
			return strings.Count(out, "<tr>") == rows+1 &&
				strings.Count(out, "<th>") == cols &&
				strings.Count(out, "<td>") == rows*cols
		},
		gen.IntRange(1, 12),
		gen.IntRange(1, 8),
		gen.IntRange(0, 20),
		gen.IntRange(0, 12),
	))

	properties.Property("submission keeps rows up to the last populated one", prop.ForAll(
		func(rows, cols, filledRow int) bool {
			if filledRow >= rows {
				filledRow = rows - 1
			}
			cfg := tabular.Config{ID: "f", InputID: "f", Rows: rows, Titles: titles(cols)}
			values := fieldtype.Values{tabular.CellID("f", filledRow, cols-1): "v"}

			table := tabular.ParseSubmission(cfg, values)
			if len(table.Data) != filledRow+1 {
				return false
			}
			for _, row := range table.Data {
				if len(row) != cols {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 15),
		gen.IntRange(1, 6),
		gen.IntRange(0, 15),
	))

	properties.Property("public output never exceeds limits", prop.ForAll(
		func(storedRows, limitRows, limitCols int) bool {
			table := tabular.Table{Titles: titles(4), Data: make([][]string, storedRows)}
			for i := range table.Data {
				table.Data[i] = []string{"a", "b", "c", "d"}
			}
			cfg := tabular.Config{LimitRows: limitRows, LimitCols: limitCols, NoHeaders: true}

			wantRows := storedRows
			if limitRows > 0 && limitRows < wantRows {
				wantRows = limitRows
			}
			wantCols := 4
			if limitCols > 0 && limitCols < wantCols {
				wantCols = limitCols
			}

			out := tabular.RenderPublic(table, cfg, nil)
			return strings.Count(out, "<tr>") == wantRows &&
				strings.Count(out, "<td>") == wantRows*wantCols
		},
		gen.IntRange(0, 10),
		gen.IntRange(0, 12),
		gen.IntRange(0, 6),
	))

	properties.TestingRun(t)
}
