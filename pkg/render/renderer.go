package render

import (
	"context"

	"github.com/goliatone/go-webblock/pkg/model"
)

// Renderer converts a parsed block into a byte representation (HTML today).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, cfg model.BlockConfig, options RenderOptions) ([]byte, error)
}
