// Package disassembler defines how kernel text is turned into a
// disassembly listing.
package disassembler

import "context"

// Disassembler produces the disassembly of a binary's executable text.
type Disassembler interface {
	// Disassemble returns the raw listing for target.
	Disassemble(ctx context.Context, target string) ([]byte, error)
	// Command returns the executable the disassembler runs.
	Command() string
}

type Type int64

const (
	TypeObjdump Type = iota + 1
)
