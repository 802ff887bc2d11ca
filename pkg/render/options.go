package render

import theme "github.com/goliatone/go-theme"

// DefaultMountID is used when RenderOptions.MountID is empty.
const DefaultMountID = "webblock"

// RenderOptions describe per-block data renderers can use without touching
// the parsed configuration.
type RenderOptions struct {
	// MountID identifies the block inside its page. Documents holding several
	// blocks give each one its own id so the runtime script can scope clicks.
	MountID string
	// Theme carries resolved go-theme tokens; renderers expose them as CSS
	// custom properties on the widget container.
	Theme *theme.RendererConfig
}

// Mount returns MountID or DefaultMountID.
func (o RenderOptions) Mount() string {
	if o.MountID == "" {
		return DefaultMountID
	}
	return o.MountID
}
