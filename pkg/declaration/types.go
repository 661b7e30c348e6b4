package declaration

import (
	"sort"

	"github.com/goliatone/go-gridfield/pkg/fieldtype"
)

// Store keeps the parsed templates. It is safe for concurrent readers when
// treated as immutable after construction.
type Store struct {
	templates map[string]Template
}

// Template is a named content template and its ordered fields.
type Template struct {
	Name   string
	Title  string
	Source string
	Fields []Field
}

// Field declares one editable region of a template.
type Field struct {
	ID    string
	Type  string
	Label string
	Attrs fieldtype.Tag
}

// Tag returns the attributes passed to the field type. The declared id is
// always present under "id".
func (f Field) Tag() fieldtype.Tag {
	return f.Attrs.With("id", f.ID)
}

// Field returns the field declared with id.
func (t Template) Field(id string) (Field, bool) {
	for _, field := range t.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return Field{}, false
}

// Template returns the template registered under name.
func (s *Store) Template(name string) (Template, bool) {
	if s == nil {
		return Template{}, false
	}
	tpl, ok := s.templates[name]
	return tpl, ok
}

// Names lists template names in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any templates.
func (s *Store) Empty() bool {
	return s == nil || len(s.templates) == 0
}
