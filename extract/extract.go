// Package extract runs the symbol dump and disassembly of a kernel image
// and stores the results in the output directory.
package extract

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/ChainSafe/ksymdump/artifact"
	"github.com/ChainSafe/ksymdump/disassembler"
	"github.com/ChainSafe/ksymdump/symtab"
)

// ErrInvalidKernel is returned when the kernel path does not name a readable
// regular file.
var ErrInvalidKernel = errors.New("invalid kernel file")

// Extractor runs the steps of one extraction in order. Each step finishes
// before the next one starts and the first failure stops the run.
type Extractor struct {
	Symbols      symtab.Dumper
	Disassembler disassembler.Disassembler
	Layout       artifact.Layout
	// WithExternal also writes the external-only symbol table.
	WithExternal bool
	Logger       zerolog.Logger
}

// Result lists the files written by a successful run.
type Result struct {
	Symbols         string
	ExternalSymbols string
	Disassembly     string
}

// Run extracts the symbol table and disassembly of kernel.
func (e *Extractor) Run(ctx context.Context, kernel string) (*Result, error) {
	if err := checkKernel(kernel); err != nil {
		return nil, err
	}
	if err := e.Layout.EnsureDir(); err != nil {
		return nil, err
	}

	result := &Result{}

	syms, err := e.Symbols.Dump(ctx, symtab.ScopeAll, kernel)
	if err != nil {
		return nil, err
	}
	result.Symbols = e.Layout.Symbols()
	if err := e.write(result.Symbols, syms); err != nil {
		return nil, err
	}

	if e.WithExternal {
		ext, err := e.Symbols.Dump(ctx, symtab.ScopeExternal, kernel)
		if err != nil {
			return nil, err
		}
		result.ExternalSymbols = e.Layout.ExternalSymbols()
		if err := e.write(result.ExternalSymbols, ext); err != nil {
			return nil, err
		}
	}

	dump, err := e.Disassembler.Disassemble(ctx, kernel)
	if err != nil {
		return nil, err
	}
	result.Disassembly = e.Layout.Disassembly()
	if err := e.write(result.Disassembly, dump); err != nil {
		return nil, err
	}

	return result, nil
}

func (e *Extractor) write(path string, data []byte) error {
	if err := artifact.Write(path, data); err != nil {
		return err
	}
	e.Logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("wrote artifact")
	return nil
}

func checkKernel(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKernel, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKernel, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrInvalidKernel, path)
	}
	return nil
}
