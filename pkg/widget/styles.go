package widget

import (
	"fmt"

	"github.com/goliatone/go-webblock/pkg/model"
)

const (
	RowStyle       = "display:flex; flex-wrap:wrap; gap:10px; margin-bottom:10px;"
	buttonBaseTmpl = "background-color: %s; color: white; border:none; border-radius:4px; cursor:pointer;"
	frameStyleTmpl = "width: %s; height: %s; border: 1px solid #ccc;"
)

// Attribute names shared with the runtime script and the HTML renderers.
const (
	AttrBlock = "data-webblock"
	AttrURL   = "data-webblock-url"
	AttrFrame = "data-webblock-frame"
)

var sizeStyles = map[model.ButtonSize]string{
	model.ButtonSizeSmall:  "padding:4px 8px; font-size:0.75rem;",
	model.ButtonSizeMedium: "padding:8px 16px; font-size:1rem;",
	model.ButtonSizeLarge:  "padding:12px 24px; font-size:1.25rem;",
}

// SizeStyle returns the padding/font-size declarations for a size, or "" for
// sizes outside the table.
func SizeStyle(size model.ButtonSize) string {
	return sizeStyles[size]
}

// ButtonStyle returns the full inline style of a button within cfg.
func ButtonStyle(cfg model.BlockConfig, button model.ButtonDescriptor) string {
	base := fmt.Sprintf(buttonBaseTmpl, cfg.ResolveColor(button))
	if size := SizeStyle(cfg.ButtonSize); size != "" {
		return size + " " + base
	}
	return base
}

// FrameStyle returns the inline style of the content frame.
func FrameStyle(cfg model.BlockConfig) string {
	return fmt.Sprintf(frameStyleTmpl, cfg.Width, cfg.Height)
}
