// Package symtab defines how a kernel's symbol table is dumped.
package symtab

import "context"

// Scope selects which symbols are listed.
type Scope int64

const (
	// ScopeAll lists the full symbol table.
	ScopeAll Scope = iota + 1
	// ScopeExternal lists external (global) symbols only.
	ScopeExternal
)

func (s Scope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopeExternal:
		return "external"
	default:
		return "unknown"
	}
}

// Dumper lists the symbols of a binary, demangled and sorted by address.
type Dumper interface {
	Dump(ctx context.Context, scope Scope, target string) ([]byte, error)
	Command() string
}
