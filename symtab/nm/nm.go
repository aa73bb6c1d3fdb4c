package nm

import (
	"context"
	"fmt"

	"github.com/ChainSafe/ksymdump/runner"
	"github.com/ChainSafe/ksymdump/symtab"
)

type NM struct {
	Tool   string
	Runner runner.Runner
}

func New(tool string, r runner.Runner) *NM {
	return &NM{Tool: tool, Runner: r}
}

// Args returns the nm arguments for target. Symbols are always demangled
// and sorted numerically by address.
func Args(scope symtab.Scope, target string) ([]string, error) {
	switch scope {
	case symtab.ScopeAll:
		return []string{"-C", "-n", target}, nil
	case symtab.ScopeExternal:
		return []string{"-C", "-g", "-n", target}, nil
	default:
		return nil, fmt.Errorf("unsupported symbol scope %d", scope)
	}
}

func (n *NM) Dump(ctx context.Context, scope symtab.Scope, target string) ([]byte, error) {
	args, err := Args(scope, target)
	if err != nil {
		return nil, err
	}
	output, err := n.Runner.Run(ctx, n.Tool, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to dump %s symbols: %w", scope, err)
	}
	return output, nil
}

func (n *NM) Command() string {
	return n.Tool
}
