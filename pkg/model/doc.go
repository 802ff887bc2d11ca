// Package model defines the typed block configuration shared by the codec,
// the widget builder and the renderers. A BlockConfig is an ordered list of
// ButtonDescriptor values plus four layout settings (width, height, button
// size and default color). Defaults live in a single table returned by
// Defaults so parsing, authoring and serialization agree on them.
//
// Normalization (label defaulting and URL scheme prefixing) happens once at
// authoring time through NormalizeButton. Neither the codec nor the renderers
// normalize again.
package model
