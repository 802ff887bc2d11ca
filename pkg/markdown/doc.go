// Package markdown hosts webblocks inside markdown documents. The goldmark
// extension returned by New swaps every fenced code block tagged "webblock"
// for a Block node and renders it through a render.Renderer. Converter wraps
// goldmark with the extension, GFM and optional sanitized raw HTML.
package markdown
