// Package template defines the engine contract used by HTML renderers. The
// pongo subpackage provides the bundled implementation.
package template
