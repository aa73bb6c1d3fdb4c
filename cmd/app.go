// Package cmd defines all the commands for the cli
package cmd

import (
	"strings"

	"github.com/urfave/cli/v2"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

// commandNames are the words taken as a command rather than a kernel path
// when they appear first.
var commandNames = []string{"tools", "help", "h"}

// NewApp returns the ksymdump application. The root action performs the
// dump, so the tool is invoked as `ksymdump <kernel> <arch> <output-dir>`.
func NewApp(name string) *cli.App {
	app := cli.NewApp()
	app.Name = name
	app.Usage = "Kernel symbol table and disassembly extractor"
	app.Description = "Runs the cross toolchain's nm and objdump on a kernel image and " +
		"stores the raw output as kernel.sym and kernel.obj in the output directory.\n\n" +
		"Flags must come before <kernel>. A kernel path equal to a command name " +
		"(" + strings.Join(commandNames, ", ") + ") is run as that command; write it as ./" + commandNames[0] + " instead."
	app.ArgsUsage = "<kernel> <arch> <output-dir>"
	app.OnUsageError = func(ctx *cli.Context, err error, _ bool) error {
		_ = cli.ShowAppHelp(ctx)
		return cli.Exit(err.Error(), exitUsage)
	}
	app.Flags = DumpFlags()
	app.Action = Dump
	app.Commands = []*cli.Command{
		CreateToolsCommand(Tools),
	}
	return app
}
