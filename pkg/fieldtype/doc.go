// Package fieldtype holds the host side of the field type contract: template
// tag attributes, submitted form values, per-request render sessions and a
// registry that maps type names to implementations.
//
// Field types never reach into ambient request state. Everything they need is
// passed in explicitly: the Tag declared in the content template, the Values
// submitted by the admin form and the Session of the page being rendered.
package fieldtype
