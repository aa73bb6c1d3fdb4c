package renderer

import (
	"encoding/json"
	"io"

	"github.com/ChainSafe/ksymdump/toolchain"
)

// JSONRenderer renders statuses in JSON format.
type JSONRenderer struct{}

func NewJSONRenderer() Renderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) Render(statuses []toolchain.Status, output io.Writer) error {
	return json.NewEncoder(output).Encode(statuses)
}

func (r *JSONRenderer) Format() string {
	return "json"
}
