package render

import (
	"context"

	"github.com/goliatone/go-choices/pkg/enum"
)

// Renderer converts an enumeration into a byte representation (an HTML
// control, terminal output, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, choices *enum.Choices, options Options) ([]byte, error)
}
