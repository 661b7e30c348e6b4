package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-gridfield/internal/prompt"
	"github.com/goliatone/go-gridfield/internal/store"
	"github.com/goliatone/go-gridfield/pkg/declaration"
	"github.com/goliatone/go-gridfield/pkg/tabular"
)

func (c *cli) newEditCmd() *cobra.Command {
	var itemID, fieldID string
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a tabular field of a stored item in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.edit(cmd.Context(), prompt.NewSurveyDriver(), itemID, fieldID)
		},
	}
	cmd.Flags().String("db", defaultDB, "SQLite database path")
	cmd.Flags().String("templates", "", "directory of template declarations (default: bundled samples)")
	cmd.Flags().StringVar(&itemID, "item", "", "item id")
	cmd.Flags().StringVar(&fieldID, "field", "", "field id (prompted when empty)")
	_ = cmd.MarkFlagRequired("item")
	return cmd
}

func (c *cli) edit(ctx context.Context, driver prompt.Driver, itemID, fieldID string) error {
	db, err := store.Open(ctx, c.cfg.GetString(cfgKeyDB))
	if err != nil {
		return err
	}
	defer db.Close()

	decls, err := c.declarations()
	if err != nil {
		return err
	}
	item, err := db.Item(ctx, itemID)
	if err != nil {
		return err
	}
	tpl, ok := decls.Template(item.Template)
	if !ok {
		return fmt.Errorf("item %s uses undeclared template %q", item.ID, item.Template)
	}

	field, err := pickField(ctx, driver, tpl, fieldID)
	if err != nil {
		return err
	}

	stored, err := db.Fields(ctx, item.ID)
	if err != nil {
		return err
	}
	prior, _ := tabular.DecodeTable(stored[field.ID].Raw)

	table, err := prompt.EditTable(ctx, driver, tabular.ParseConfig(field.Tag()), prior)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("encode table: %w", err)
	}
	if err := db.SaveFields(ctx, item.ID, []store.FieldValue{{
		FieldID:    field.ID,
		Raw:        payload,
		SearchText: tabular.SearchText(table),
	}}); err != nil {
		return err
	}

	c.logger.Info("gridfield: field saved", "item", item.ID, "field", field.ID, "rows", table.Rows())
	return driver.Notify(ctx, fmt.Sprintf("Saved %d row(s) to %s.", table.Rows(), field.Label))
}

func pickField(ctx context.Context, driver prompt.Driver, tpl declaration.Template, fieldID string) (declaration.Field, error) {
	var candidates []declaration.Field
	for _, field := range tpl.Fields {
		if field.Type == tabular.TypeName {
			candidates = append(candidates, field)
		}
	}

	if fieldID != "" {
		for _, field := range candidates {
			if field.ID == fieldID {
				return field, nil
			}
		}
		return declaration.Field{}, fmt.Errorf("template %q has no tabular field %q", tpl.Name, fieldID)
	}

	labels := make([]string, len(candidates))
	for i, field := range candidates {
		labels[i] = field.Label
	}
	idx, err := prompt.ChooseField(ctx, driver, labels)
	if err != nil {
		return declaration.Field{}, err
	}
	return candidates[idx], nil
}
