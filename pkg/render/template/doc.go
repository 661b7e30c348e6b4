// Package template defines the renderer-agnostic template seam used by the
// field types and the demo host. Implementations live in sub-packages.
package template
