package renderer

import (
	"fmt"
	"io"

	"github.com/ChainSafe/ksymdump/toolchain"
)

// TextRenderer writes one tab-separated line per tool.
type TextRenderer struct{}

// NewTextRenderer creates a new instance of TextRenderer.
func NewTextRenderer() Renderer {
	return &TextRenderer{}
}

func (r *TextRenderer) Render(statuses []toolchain.Status, output io.Writer) error {
	for _, st := range statuses {
		path := st.Path
		if !st.Found {
			path = "not found"
		}
		if _, err := fmt.Fprintf(output, "%s\t%s\n", st.Name, path); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextRenderer) Format() string {
	return "text"
}
