// Package declaration loads content-template declarations. A declaration file
// (JSON or YAML) names one or more templates and lists, in order, the fields
// each template exposes: their id, field type and the attributes handed to the
// field type as a fieldtype.Tag.
package declaration
