// Package renderer provides a way to render toolchain reports in different formats.
package renderer

import (
	"fmt"
	"io"

	"github.com/ChainSafe/ksymdump/toolchain"
)

// Renderer defines the interface for rendering toolchain status in different formats.
type Renderer interface {
	// Render writes the statuses to the provided writer.
	Render(statuses []toolchain.Status, output io.Writer) error

	// Format returns the name of the output format (e.g., "json", "text").
	Format() string
}

// New returns the renderer for format.
func New(format string) (Renderer, error) {
	switch format {
	case "text", "":
		return NewTextRenderer(), nil
	case "json":
		return NewJSONRenderer(), nil
	default:
		return nil, fmt.Errorf("invalid format: %s", format)
	}
}
