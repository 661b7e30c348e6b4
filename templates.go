package gridfield

import (
	"io/fs"

	"github.com/goliatone/go-gridfield/pkg/tabular"
)

// EmbeddedTemplates exposes the bundled pongo2 partials (admin grid and
// public table) so themes can copy or extend them.
func EmbeddedTemplates() fs.FS {
	return tabular.TemplatesFS()
}

// AssetsFS exposes the admin stylesheet so Go applications can serve it
// without the field type's own route.
//
// Typical mount:
//
//	mux.Handle(tabular.DefaultAssetPath+"/",
//	  http.StripPrefix(tabular.DefaultAssetPath,
//	    http.FileServerFS(gridfield.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return tabular.AssetsFS()
}
