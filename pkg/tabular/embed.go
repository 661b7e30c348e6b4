package tabular

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

const (
	// StylesheetName is the admin stylesheet served from the asset path.
	StylesheetName = "tabular.css"
	// StylesheetAssetKey is looked up through the theme asset resolver.
	StylesheetAssetKey = "tabular.stylesheet"

	// Theme partial keys that replace the built-in markup. The admin partial
	// receives grid strings already HTML-escaped.
	PartialAdmin  = "tabular.admin"
	PartialPublic = "tabular.public"

	// Paths of the bundled partials inside TemplatesFS.
	TemplateAdmin  = "templates/admin_grid.tmpl"
	TemplatePublic = "templates/public_table.tmpl"
)

// TemplatesFS exposes the bundled pongo2 partials. They produce the same
// markup as the built-in renderers and are a starting point for themes.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the admin stylesheet so hosts can serve or copy it.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}
