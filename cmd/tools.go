package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ChainSafe/ksymdump/renderer"
)

const FormatFlagName = "format"

func CreateToolsCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "tools",
		Usage:       "Shows the toolchain executables used for an arch",
		Description: "Resolves the nm and objdump executables for <arch> without running them",
		ArgsUsage:   "<arch>",
		Action:      action,
		OnUsageError: func(ctx *cli.Context, err error, _ bool) error {
			if ctx.Command != nil {
				_ = cli.ShowSubcommandHelp(ctx)
			}
			return cli.Exit(err.Error(), exitUsage)
		},
		Flags: append(toolchainFlags(), &cli.StringFlag{
			Name:  FormatFlagName,
			Usage: "format of the output. Options: json, text",
			Value: "text",
		}),
	}
}

// Tools prints the resolved tool names and paths. It fails if any tool is
// missing.
func Tools(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		_ = cli.ShowSubcommandHelp(ctx)
		return cli.Exit(fmt.Sprintf("expected 1 argument <arch>, got %d", ctx.NArg()), exitUsage)
	}

	r, err := renderer.New(ctx.String(FormatFlagName))
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}

	tc, err := loadToolchain(ctx, ctx.Args().First())
	if err != nil {
		return err
	}

	statuses := tc.Check()
	if err := r.Render(statuses, ctx.App.Writer); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}

	var missing []string
	for _, st := range statuses {
		if !st.Found {
			missing = append(missing, st.Name)
		}
	}
	if len(missing) > 0 {
		return cli.Exit(fmt.Sprintf("missing toolchain executables: %v", missing), exitFailure)
	}
	return nil
}
