// Package codec converts between model.BlockConfig and the textual webblock
// format embedded in documents:
//
//	[
//	  {
//	    "label": "Docs",
//	    "url": "https://example.com",
//	    "color": ""
//	  }
//	]
//	width=100%
//	height=500px
//	buttonSize=medium
//	defaultColor=#007bff
//
// Settings lines are optional and may appear in any order; the first line for
// each key wins. Everything else is the JSON button payload. Serialize and
// Parse are inverse operations over that format.
package codec
