package fieldtype

// FieldType is a pluggable editor for one kind of content value.
type FieldType interface {
	// Name is the value of the template's type attribute, e.g. "tabular".
	Name() string
	// RenderInputs returns the admin panel markup. details carries the
	// previously saved values of the item keyed by field id.
	RenderInputs(session *Session, tag Tag, details map[string]any) string
	// Raw builds the value to persist from a form submission.
	Raw(tag Tag, values Values) any
	// Processed renders a persisted value for the public site.
	Processed(tag Tag, raw any) string
	// SearchText returns the text the host should index for raw.
	SearchText(raw any) string
	// AddPageResources injects head content needed by the admin markup.
	AddPageResources(session *Session)
}
