package manager

import (
	"errors"

	"github.com/ChainSafe/ksymdump/disassembler"
	"github.com/ChainSafe/ksymdump/disassembler/objdump"
	"github.com/ChainSafe/ksymdump/runner"
	"github.com/ChainSafe/ksymdump/toolchain"
)

func NewDisassembler(typ disassembler.Type, tc *toolchain.Toolchain, r runner.Runner) (disassembler.Disassembler, error) {
	switch typ {
	case disassembler.TypeObjdump:
		return objdump.New(tc.ObjdumpCommand(), r), nil
	default:
		return nil, errors.New("disassembler not supported")
	}
}
