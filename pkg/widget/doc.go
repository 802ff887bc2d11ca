// Package widget builds the interactive webblock widget: a wrapping row of
// buttons above a single content frame. Element construction and event wiring
// go through the Host capability interface so any UI toolkit (an HTML node
// tree, a terminal UI, a test double) can back the widget.
//
// Render assumes a parsed config. RenderSource is the display entry point: it
// parses block text and shows a plain-text notice in place of the widget when
// the payload is malformed.
package widget
