package tabular

import (
	"log/slog"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-gridfield/pkg/render/template"
)

// Option configures a Field.
type Option func(*Field)

// WithLogger routes configuration and fallback diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Field) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithAssetPath sets the URL prefix the admin stylesheet is served from.
func WithAssetPath(path string) Option {
	return func(f *Field) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			f.assetPath = strings.TrimRight(trimmed, "/")
		}
	}
}

// WithSanitizer sets the policy applied to public cell output. By default
// stored values are emitted unchanged; pass DefaultSanitizer() to strip all but
// inline formatting.
func WithSanitizer(sanitizer Sanitizer) Option {
	return func(f *Field) {
		if sanitizer != nil {
			f.sanitizer = sanitizer
		}
	}
}

// WithTheme supplies a go-theme renderer configuration. Its asset resolver
// may relocate the stylesheet and its partials may replace the admin and
// public markup (keys PartialAdmin and PartialPublic).
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(f *Field) {
		f.theme = cfg
	}
}

// WithTemplateRenderer sets the engine used to render theme partials.
func WithTemplateRenderer(renderer template.TemplateRenderer) Option {
	return func(f *Field) {
		if renderer != nil {
			f.templates = renderer
		}
	}
}
