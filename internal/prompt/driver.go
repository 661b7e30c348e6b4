// Package prompt edits tabular fields from a terminal.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Cell describes one grid cell being asked for. Row and Col are zero based.
type Cell struct {
	Row     int
	Col     int
	Rows    int
	Title   string
	Current string
}

// Driver is the terminal seam of the table editor. Tests script it; the
// survey driver talks to a real terminal.
type Driver interface {
	// Cell asks for the value of one cell, offering Current as the default.
	Cell(ctx context.Context, cell Cell) (string, error)
	// AddRow asks whether to fill the zero based row of a rows high grid.
	AddRow(ctx context.Context, row, rows int) (bool, error)
	// PickField asks which labelled field to edit and returns its index.
	PickField(ctx context.Context, labels []string) (int, error)
	// Notify prints a status line.
	Notify(ctx context.Context, msg string) error
}

type surveyDriver struct {
	in  terminal.FileReader
	out terminal.FileWriter
	err io.Writer
}

// NewSurveyDriver returns a Driver backed by survey on the process standard
// streams.
func NewSurveyDriver() Driver {
	return &surveyDriver{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

func (d *surveyDriver) ask(ctx context.Context, p survey.Prompt, answer any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return translateSurveyErr(survey.AskOne(p, answer, survey.WithStdio(d.in, d.out, d.err)))
}

func (d *surveyDriver) Cell(ctx context.Context, cell Cell) (string, error) {
	var value string
	err := d.ask(ctx, &survey.Input{
		Message: cell.Title,
		Default: cell.Current,
		Help:    fmt.Sprintf("Row %d of %d, column %d. Leave blank to clear.", cell.Row+1, cell.Rows, cell.Col+1),
	}, &value)
	if err != nil {
		return "", fmt.Errorf("prompt: row %d %q: %w", cell.Row+1, cell.Title, err)
	}
	return value, nil
}

func (d *surveyDriver) AddRow(ctx context.Context, row, rows int) (bool, error) {
	var fill bool
	err := d.ask(ctx, &survey.Confirm{
		Message: fmt.Sprintf("Fill row %d of %d?", row+1, rows),
		Help:    "Rows left empty at the end of the table are not saved.",
	}, &fill)
	if err != nil {
		return false, fmt.Errorf("prompt: row %d: %w", row+1, err)
	}
	return fill, nil
}

func (d *surveyDriver) PickField(ctx context.Context, labels []string) (int, error) {
	var idx int
	err := d.ask(ctx, &survey.Select{
		Message:  "Field to edit",
		Options:  labels,
		PageSize: 10,
	}, &idx)
	if err != nil {
		return -1, fmt.Errorf("prompt: pick field: %w", err)
	}
	return idx, nil
}

func (d *surveyDriver) Notify(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

// translateSurveyErr maps a terminal interrupt to ErrAborted.
func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
