package tabular

import (
	"log/slog"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-gridfield/pkg/fieldtype"
	"github.com/goliatone/go-gridfield/pkg/render/template"
)

// TypeName is the template type attribute handled by Field.
const TypeName = "tabular"

// Field is the tabular field type. It holds configuration only; per-page
// state lives in the fieldtype.Session passed to each call, so one Field can
// serve concurrent requests.
type Field struct {
	logger    *slog.Logger
	assetPath string
	sanitizer Sanitizer
	theme     *theme.RendererConfig
	templates template.TemplateRenderer
}

var _ fieldtype.FieldType = (*Field)(nil)

// New constructs a Field applying options over the defaults.
func New(options ...Option) *Field {
	f := &Field{
		logger:    slog.New(slog.DiscardHandler),
		assetPath: DefaultAssetPath,
		sanitizer: PassThrough{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Name implements fieldtype.FieldType.
func (f *Field) Name() string {
	return TypeName
}

// ProcessedOutputIsMarkup reports that Processed returns HTML.
func (f *Field) ProcessedOutputIsMarkup() bool {
	return true
}

// AssetPath is the URL prefix the stylesheet is linked from.
func (f *Field) AssetPath() string {
	return f.assetPath
}

// StylesheetURL resolves the admin stylesheet, preferring the theme asset
// resolver when it knows the stylesheet key.
func (f *Field) StylesheetURL() string {
	if f.theme != nil && f.theme.AssetURL != nil {
		if resolved := strings.TrimSpace(f.theme.AssetURL(StylesheetAssetKey)); resolved != "" {
			return resolved
		}
	}
	return joinAssetPath(f.assetPath, StylesheetName)
}

// AddPageResources implements fieldtype.FieldType.
func (f *Field) AddPageResources(session *fieldtype.Session) {
	AddPageResources(session, f.StylesheetURL())
}

// RenderInputs implements fieldtype.FieldType. Prior values are read from
// details under the field id; unreadable values are treated as absent.
func (f *Field) RenderInputs(session *fieldtype.Session, tag fieldtype.Tag, details map[string]any) string {
	f.AddPageResources(session)

	cfg := ParseConfig(tag)
	if err := cfg.Validate(); err != nil {
		f.logger.Warn("tabular: invalid field configuration",
			"id", cfg.ID, "rows", cfg.Rows, "cols", cfg.Cols())
		return ErrorNotice(err.Error())
	}

	prior := f.priorTable(cfg.ID, details)
	if out, ok := f.renderPartial(PartialAdmin, map[string]any{"grid": newAdminView(cfg, prior).escaped()}); ok {
		return out
	}
	return RenderAdminGrid(cfg, prior)
}

// Raw implements fieldtype.FieldType and returns a Table.
func (f *Field) Raw(tag fieldtype.Tag, values fieldtype.Values) any {
	return ParseSubmission(ParseConfig(tag), values)
}

// Processed implements fieldtype.FieldType.
func (f *Field) Processed(tag fieldtype.Tag, raw any) string {
	table, ok := DecodeTable(raw)
	if !ok {
		f.logger.Debug("tabular: stored value unreadable, rendering empty table", "id", tag.String(AttrID))
	}
	cfg := ParseConfig(tag)
	if out, ok := f.renderPartial(PartialPublic, map[string]any{"table": newPublicView(table, cfg, f.sanitizer)}); ok {
		return out
	}
	return RenderPublic(table, cfg, f.sanitizer)
}

// SearchText implements fieldtype.FieldType.
func (f *Field) SearchText(raw any) string {
	return SearchText(raw)
}

func (f *Field) priorTable(id string, details map[string]any) Table {
	raw, ok := details[id]
	if !ok {
		return Table{}
	}
	table, ok := DecodeTable(raw)
	if !ok {
		f.logger.Debug("tabular: ignoring unreadable prior value", "id", id)
		return Table{}
	}
	return table
}

// renderPartial renders the theme partial registered under key. It reports
// false when no partial applies or rendering fails, so callers fall back to
// the built-in markup.
func (f *Field) renderPartial(key string, payload map[string]any) (string, bool) {
	if f.theme == nil || f.templates == nil {
		return "", false
	}
	name := strings.TrimSpace(f.theme.Partials[key])
	if name == "" {
		return "", false
	}
	out, err := f.templates.RenderTemplate(name, payload)
	if err != nil {
		f.logger.Warn("tabular: theme partial failed, using built-in markup",
			"partial", key, "template", name, "error", err)
		return "", false
	}
	return out, true
}
