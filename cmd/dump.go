package cmd

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ChainSafe/ksymdump/artifact"
	"github.com/ChainSafe/ksymdump/disassembler"
	"github.com/ChainSafe/ksymdump/disassembler/manager"
	"github.com/ChainSafe/ksymdump/extract"
	"github.com/ChainSafe/ksymdump/logging"
	"github.com/ChainSafe/ksymdump/runner"
	"github.com/ChainSafe/ksymdump/symtab/nm"
)

// Dump extracts kernel.sym and kernel.obj for the kernel named by the
// positional arguments.
func Dump(ctx *cli.Context) error {
	if ctx.NArg() != 3 {
		_ = cli.ShowAppHelp(ctx)
		msg := fmt.Sprintf("expected 3 arguments <kernel> <arch> <output-dir>, got %d", ctx.NArg())
		if hasFlagAfterArgs(ctx.Args().Slice()) {
			msg += " (flags must come before <kernel>)"
		}
		return cli.Exit(msg, exitUsage)
	}
	kernel := ctx.Args().Get(0)
	arch := ctx.Args().Get(1)
	outputDir := ctx.Args().Get(2)

	logger := logging.New(ctx.App.Writer, ctx.Bool(VerboseFlagName))
	logger.Info().
		Str("kernel", kernel).
		Str("arch", arch).
		Str("output", outputDir).
		Msg("dumping kernel")

	tc, err := loadToolchain(ctx, arch)
	if err != nil {
		return err
	}

	// Both tools must exist before anything is written.
	for _, name := range []string{tc.NMCommand(), tc.ObjdumpCommand()} {
		if _, err := tc.Resolve(name); err != nil {
			return runner.NotFound(name, err)
		}
	}

	r := runner.New(tc.Resolve, logger)
	dis, err := manager.NewDisassembler(disassembler.TypeObjdump, tc, r)
	if err != nil {
		return err
	}

	ex := &extract.Extractor{
		Symbols:      nm.New(tc.NMCommand(), r),
		Disassembler: dis,
		Layout:       artifact.NewLayout(outputDir),
		WithExternal: ctx.Bool(WithExternFlagName),
		Logger:       logger,
	}
	res, err := ex.Run(ctx.Context, kernel)
	if err != nil {
		return fmt.Errorf("dump failed: %w", err)
	}

	logger.Info().Str("disassembly", res.Disassembly).Msgf("Done! symbol table written to %s", res.Symbols)
	return nil
}

// hasFlagAfterArgs reports whether a flag-looking word was left among the
// positional arguments. Flag parsing stops at the first positional.
func hasFlagAfterArgs(args []string) bool {
	for _, arg := range args {
		if len(arg) > 1 && strings.HasPrefix(arg, "-") {
			return true
		}
	}
	return false
}
