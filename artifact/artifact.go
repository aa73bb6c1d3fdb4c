// Package artifact owns the layout of the output directory.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// Fixed artifact names inside the output directory.
const (
	SymbolsFile         = "kernel.sym"
	ExternalSymbolsFile = "kernel.ext.sym"
	DisassemblyFile     = "kernel.obj"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Layout resolves artifact paths under Dir.
type Layout struct {
	Dir string
}

func NewLayout(dir string) Layout {
	return Layout{Dir: dir}
}

func (l Layout) Symbols() string {
	return filepath.Join(l.Dir, SymbolsFile)
}

func (l Layout) ExternalSymbols() string {
	return filepath.Join(l.Dir, ExternalSymbolsFile)
}

func (l Layout) Disassembly() string {
	return filepath.Join(l.Dir, DisassemblyFile)
}

// EnsureDir creates the output directory if needed. An existing directory
// is not an error.
func (l Layout) EnsureDir() error {
	if err := os.MkdirAll(l.Dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// Write replaces path with data. The content is staged in a temporary file
// in the same directory and renamed over path, so readers see either the
// previous file or the complete new one.
func Write(path string, data []byte) error {
	if err := renameio.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
