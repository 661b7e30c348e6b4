package tabular

import (
	"html"
	"strings"

	"github.com/goliatone/go-gridfield/pkg/fieldtype"
)

// DefaultAssetPath is where the admin stylesheet is expected to be served.
const DefaultAssetPath = "/addons/fieldtypes/tabular/assets"

// AddPageResources appends the stylesheet include for stylesheetURL to the
// session head. Repeated calls within one session add nothing.
func AddPageResources(session *fieldtype.Session, stylesheetURL string) bool {
	return session.Once(TypeName, func(head fieldtype.HeadWriter) {
		for _, part := range headContent(stylesheetURL) {
			head.AddHeadContent(part)
		}
	})
}

func headContent(stylesheetURL string) []string {
	const (
		eol = "\n"
		tab = "\t"
	)
	return []string{
		eol,
		tab + "<!-- BEGIN: Include files for the tabular fieldtype -->",
		eol,
		tab + `<link rel="stylesheet" href="` + html.EscapeString(stylesheetURL) + `" />`,
		eol,
		tab + "<!-- END: Include files for the tabular fieldtype -->",
		eol,
	}
}

func joinAssetPath(base, name string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	return base + "/" + name
}
