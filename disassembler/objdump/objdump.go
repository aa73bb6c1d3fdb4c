package objdump

import (
	"context"
	"fmt"

	"github.com/ChainSafe/ksymdump/runner"
)

// TextSection is the only section disassembled.
const TextSection = ".text"

type Objdump struct {
	Tool   string
	Runner runner.Runner
}

func New(tool string, r runner.Runner) *Objdump {
	return &Objdump{
		Tool:   tool,
		Runner: r,
	}
}

// Args returns the objdump arguments for target: disassemble the text
// section with file offsets and demangled names.
func Args(target string) []string {
	return []string{"-D", "-j", TextSection, "-F", "-C", target}
}

func (o *Objdump) Disassemble(ctx context.Context, target string) ([]byte, error) {
	output, err := o.Runner.Run(ctx, o.Tool, Args(target)...)
	if err != nil {
		return nil, fmt.Errorf("failed to generate binary disassembly: %w", err)
	}
	return output, nil
}

func (o *Objdump) Command() string {
	return o.Tool
}
