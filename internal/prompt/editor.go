package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-gridfield/pkg/fieldtype"
	"github.com/goliatone/go-gridfield/pkg/tabular"
)

// EditTable walks the grid declared by cfg one cell at a time, offering the
// prior value as the default. Once the prior rows are exhausted the user is
// asked before each further row. The answers are parsed exactly like a form
// submission, so trailing blank rows are dropped.
func EditTable(ctx context.Context, driver Driver, cfg tabular.Config, prior tabular.Table) (tabular.Table, error) {
	if driver == nil {
		return tabular.Table{}, fmt.Errorf("prompt: driver is required")
	}
	if err := cfg.Validate(); err != nil {
		return tabular.Table{}, err
	}

	values := fieldtype.Values{}
	for row := 0; row < cfg.Rows; row++ {
		if row > 0 && row >= prior.Rows() {
			more, err := driver.AddRow(ctx, row, cfg.Rows)
			if err != nil {
				return tabular.Table{}, err
			}
			if !more {
				break
			}
		}

		if err := driver.Notify(ctx, fmt.Sprintf("Row %d", row+1)); err != nil {
			return tabular.Table{}, err
		}
		for col, title := range cfg.Titles {
			current, _ := prior.Cell(row, col)
			answer, err := driver.Cell(ctx, Cell{
				Row:     row,
				Col:     col,
				Rows:    cfg.Rows,
				Title:   title,
				Current: strings.TrimSpace(current),
			})
			if err != nil {
				return tabular.Table{}, err
			}
			values[tabular.CellID(cfg.ID, row, col)] = answer
		}
	}

	return tabular.ParseSubmission(cfg, values), nil
}

// ChooseField asks which of the labelled options to edit and returns its
// index.
func ChooseField(ctx context.Context, driver Driver, labels []string) (int, error) {
	switch len(labels) {
	case 0:
		return -1, fmt.Errorf("prompt: no fields to choose from")
	case 1:
		return 0, nil
	}
	idx, err := driver.PickField(ctx, labels)
	if err != nil {
		return -1, err
	}
	if idx < 0 || idx >= len(labels) {
		return -1, fmt.Errorf("prompt: field choice %d out of range", idx)
	}
	return idx, nil
}
