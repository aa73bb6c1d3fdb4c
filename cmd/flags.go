package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ChainSafe/ksymdump/artifact"
	"github.com/ChainSafe/ksymdump/toolchain"
)

// Flag names. The flags themselves are built per app because urfave/cli
// records environment lookups on the flag values.
const (
	ConventionFlagName       = "convention"
	ToolchainProfileFlagName = "toolchain-profile"
	ToolchainDirFlagName     = "toolchain-dir"
	WithExternFlagName       = "with-extern"
	VerboseFlagName          = "verbose"
)

func toolchainFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        ConventionFlagName,
			Usage:       "String inserted between arch and the tool name. Use \"\" when arch is already a full prefix",
			EnvVars:     []string{"KSYMDUMP_CONVENTION"},
			Value:       toolchain.ConventionMusl,
			DefaultText: toolchain.ConventionMusl,
		},
		&cli.PathFlag{
			Name:    ToolchainProfileFlagName,
			Usage:   "Path to a YAML toolchain profile",
			EnvVars: []string{"KSYMDUMP_TOOLCHAIN_PROFILE"},
		},
		&cli.PathFlag{
			Name:    ToolchainDirFlagName,
			Usage:   "Directory searched for toolchain executables before PATH",
			EnvVars: []string{"KSYMDUMP_TOOLCHAIN_DIR"},
		},
		&cli.BoolFlag{
			Name:    VerboseFlagName,
			Aliases: []string{"v"},
			Usage:   "enable debug logging",
			Value:   false,
		},
	}
}

// DumpFlags returns the flags accepted by the dump action.
func DumpFlags() []cli.Flag {
	return append(toolchainFlags(), &cli.BoolFlag{
		Name:  WithExternFlagName,
		Usage: "also write the external-only symbol table to " + artifact.ExternalSymbolsFile,
		Value: false,
	})
}

// loadToolchain builds the toolchain for arch. Flags override the profile,
// which overrides the defaults.
func loadToolchain(ctx *cli.Context, arch string) (*toolchain.Toolchain, error) {
	tc := toolchain.New(arch)
	if path := ctx.Path(ToolchainProfileFlagName); path != "" {
		prof, err := toolchain.LoadProfile(path)
		if err != nil {
			return nil, fmt.Errorf("error loading toolchain profile: %w", err)
		}
		tc.Apply(prof)
	}
	if ctx.IsSet(ConventionFlagName) {
		tc.Convention = ctx.String(ConventionFlagName)
	}
	if ctx.IsSet(ToolchainDirFlagName) {
		tc.BinDir = ctx.Path(ToolchainDirFlagName)
	}
	return tc, nil
}
