package webblock

import (
	"io/fs"

	"github.com/goliatone/go-webblock/pkg/renderers/html"
)

// RuntimeAssetsFS exposes the click-wiring script html widgets rely on so Go
// applications can serve it next to rendered pages.
//
// Typical mount:
//
//	mux.Handle("/runtime/",
//	  http.StripPrefix("/runtime/",
//	    http.FileServerFS(webblock.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	return html.AssetsFS()
}
