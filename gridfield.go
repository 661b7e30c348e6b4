// Package gridfield is the entry point for the tabular content field type.
// It re-exports the pieces hosts typically need so a single import covers the
// common setup:
//
//	registry := gridfield.NewRegistry(gridfield.WithLogger(logger))
//	session := gridfield.NewSession(head)
//	html := field.RenderInputs(session, tag, details)
package gridfield

import (
	"github.com/goliatone/go-gridfield/pkg/fieldtype"
	"github.com/goliatone/go-gridfield/pkg/tabular"
)

// Field is the tabular field type.
type Field = tabular.Field

// Table is the persisted value of a tabular field.
type Table = tabular.Table

// Config is the tabular configuration parsed from template attributes.
type Config = tabular.Config

// Option configures a Field.
type Option = tabular.Option

// Tag is the attribute set of one field declaration.
type Tag = fieldtype.Tag

// Values is one flattened form submission.
type Values = fieldtype.Values

// Session scopes once-per-page head content to a render.
type Session = fieldtype.Session

// Re-exported options.
var (
	WithLogger           = tabular.WithLogger
	WithAssetPath        = tabular.WithAssetPath
	WithSanitizer        = tabular.WithSanitizer
	WithTheme            = tabular.WithTheme
	WithTemplateRenderer = tabular.WithTemplateRenderer
)

// New constructs the tabular field type.
func New(options ...Option) *Field {
	return tabular.New(options...)
}

// NewRegistry returns a field type registry with the tabular field type
// registered.
func NewRegistry(options ...Option) *fieldtype.Registry {
	registry := fieldtype.NewRegistry()
	registry.MustRegister(tabular.New(options...))
	return registry
}

// NewSession starts a render session writing head content to head.
func NewSession(head fieldtype.HeadWriter) *Session {
	return fieldtype.NewSession(head)
}
