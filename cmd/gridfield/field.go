package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-gridfield/pkg/fieldtype"
)

// attrFlags collects repeated --attr name=value flags into a tag.
type attrFlags struct {
	raw []string
}

func (a *attrFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&a.raw, "attr", "a", nil, "field attribute as name=value (repeatable), e.g. -a id=prices -a rows=3 -a cols=Plan,Price")
}

func (a *attrFlags) tag() (fieldtype.Tag, error) {
	attrs := make(map[string]string, len(a.raw))
	for _, entry := range a.raw {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid attribute %q, expected name=value", entry)
		}
		attrs[name] = value
	}
	tag := fieldtype.NewTag(attrs)
	if !tag.Has("id") {
		tag = tag.With("id", "table")
	}
	return tag, nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

func (c *cli) newGridCmd() *cobra.Command {
	var (
		attrs     attrFlags
		priorPath string
	)
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the admin input grid and its head includes",
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := attrs.tag()
			if err != nil {
				return err
			}
			details := map[string]any{}
			if priorPath != "" {
				prior, err := readInput(cmd, priorPath)
				if err != nil {
					return fmt.Errorf("read prior value: %w", err)
				}
				details[tag.String("id")] = json.RawMessage(prior)
			}

			head := &fieldtype.Head{}
			grid := c.field().RenderInputs(fieldtype.NewSession(head), tag, details)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", strings.TrimRight(head.String(), "\n"), grid)
			return err
		},
	}
	attrs.register(cmd)
	cmd.Flags().StringVar(&priorPath, "prior", "", "stored JSON value to pre-fill the grid (- for stdin)")
	return cmd
}

func (c *cli) newParseCmd() *cobra.Command {
	var (
		attrs     attrFlags
		inputPath string
	)
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Turn a URL-encoded form submission into the stored JSON value",
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := attrs.tag()
			if err != nil {
				return err
			}
			body, err := readInput(cmd, inputPath)
			if err != nil {
				return fmt.Errorf("read submission: %w", err)
			}
			form, err := url.ParseQuery(strings.TrimSpace(string(body)))
			if err != nil {
				return fmt.Errorf("parse submission: %w", err)
			}

			raw := c.field().Raw(tag, fieldtype.FromForm(form))
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(raw)
		},
	}
	attrs.register(cmd)
	cmd.Flags().StringVar(&inputPath, "input", "-", "file holding the submission (- for stdin)")
	return cmd
}

func (c *cli) newRenderCmd() *cobra.Command {
	var (
		attrs     attrFlags
		inputPath string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a stored JSON value as public HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := attrs.tag()
			if err != nil {
				return err
			}
			stored, err := readInput(cmd, inputPath)
			if err != nil {
				return fmt.Errorf("read stored value: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), c.field().Processed(tag, json.RawMessage(stored)))
			return err
		},
	}
	attrs.register(cmd)
	cmd.Flags().StringVar(&inputPath, "input", "-", "file holding the stored value (- for stdin)")
	return cmd
}
