// Package tabular implements the "tabular" field type: an editable grid whose
// shape is declared by the content template.
//
// A template declares the grid with string attributes:
//
//	id         field id; saved values are keyed by it
//	input_id   id used for admin inputs (defaults to id)
//	rows       number of editable rows
//	cols       comma separated column titles
//	limitrows  optional cap on rows rendered on the public site
//	limitcols  optional cap on columns rendered on the public site
//	noheaders  omit the <table> wrapper and header row on the public site
//
// The admin grid always has exactly the declared shape. Saved data outside it
// is not shown and is dropped by the next submission, which rebuilds the table
// from the submitted values alone and trims trailing blank rows.
package tabular
