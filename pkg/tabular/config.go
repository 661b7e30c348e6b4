package tabular

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-gridfield/pkg/fieldtype"
)

// Attribute names read from the template tag.
const (
	AttrID        = "id"
	AttrInputID   = "input_id"
	AttrRows      = "rows"
	AttrCols      = "cols"
	AttrLimitRows = "limitrows"
	AttrLimitCols = "limitcols"
	AttrNoHeaders = "noheaders"
)

// Config is the typed form of a tabular template tag.
type Config struct {
	ID        string
	InputID   string
	Rows      int
	Titles    []string
	LimitRows int
	LimitCols int
	NoHeaders bool
}

// ParseConfig reads a Config from tag. Numbers that do not parse become 0 and
// absent flags are false; validation is left to Validate.
func ParseConfig(tag fieldtype.Tag) Config {
	cfg := Config{
		ID:        tag.String(AttrID),
		InputID:   tag.String(AttrInputID),
		Rows:      tag.Int(AttrRows),
		LimitRows: tag.Int(AttrLimitRows),
		LimitCols: tag.Int(AttrLimitCols),
		NoHeaders: tag.Bool(AttrNoHeaders),
	}
	if cfg.InputID == "" {
		cfg.InputID = cfg.ID
	}
	for _, title := range tag.List(AttrCols) {
		cfg.Titles = append(cfg.Titles, strings.TrimSpace(title))
	}
	return cfg
}

// Cols is the declared column count.
func (c Config) Cols() int {
	return len(c.Titles)
}

// Validate reports a *ConfigError when the declared dimensions are unusable.
// The error counts only non-blank titles.
func (c Config) Validate() error {
	if titles := titleCount(c.Titles); c.Rows <= 0 || titles == 0 {
		return &ConfigError{Rows: c.Rows, Cols: titles}
	}
	return nil
}

func titleCount(titles []string) int {
	n := 0
	for _, title := range titles {
		if title != "" {
			n++
		}
	}
	return n
}

// ConfigError describes a template declaring an invalid grid. It is shown
// inline in the admin panel instead of the grid.
type ConfigError struct {
	Rows int
	Cols int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("Table has invalid number of rows (%d) or columns (%d). Check your template.", e.Rows, e.Cols)
}
