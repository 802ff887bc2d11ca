// Package template defines the renderer-agnostic template seam used by the
// HTML renderer. The gotemplate subpackage backs it with a pongo2 template
// set so renderers never import the engine directly.
package template
