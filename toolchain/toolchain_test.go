package toolchain_test

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChainSafe/ksymdump/common/faketool"
	"github.com/ChainSafe/ksymdump/toolchain"
)

func TestCommandNames(t *testing.T) {
	cases := map[string]struct {
		arch       string
		convention string
		nm         string
		objdump    string
	}{
		"musl": {
			arch:       "riscv64",
			convention: toolchain.ConventionMusl,
			nm:         "riscv64-linux-musl-nm",
			objdump:    "riscv64-linux-musl-objdump",
		},
		"bare prefix": {
			arch:       "riscv64-unknown-elf-",
			convention: toolchain.ConventionBare,
			nm:         "riscv64-unknown-elf-nm",
			objdump:    "riscv64-unknown-elf-objdump",
		},
		"host tools": {
			arch:       "",
			convention: toolchain.ConventionBare,
			nm:         "nm",
			objdump:    "objdump",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			chain := toolchain.New(tc.arch)
			chain.Convention = tc.convention
			assert.Equal(t, tc.nm, chain.NMCommand())
			assert.Equal(t, tc.objdump, chain.ObjdumpCommand())
		})
	}
}

func TestNewDefaults(t *testing.T) {
	chain := toolchain.New("aarch64")
	assert.Equal(t, "aarch64", chain.Arch)
	assert.Equal(t, "-linux-musl-", chain.Convention)
	assert.Equal(t, "aarch64-linux-musl-readelf", chain.Command("readelf"))
	assert.Empty(t, chain.BinDir)
}

func TestApply(t *testing.T) {
	bare := ""
	chain := toolchain.New("riscv64-unknown-elf-")
	chain.Apply(&toolchain.Profile{
		Convention: &bare,
		Objdump:    "llvm-objdump",
		BinDir:     "/opt/cross/bin",
	})
	assert.Equal(t, "riscv64-unknown-elf-nm", chain.NMCommand())
	assert.Equal(t, "riscv64-unknown-elf-llvm-objdump", chain.ObjdumpCommand())
	assert.Equal(t, "/opt/cross/bin", chain.BinDir)

	chain.Apply(nil)
	assert.Equal(t, "riscv64-unknown-elf-nm", chain.NMCommand())
}

func TestResolvePrefersBinDir(t *testing.T) {
	binDir := t.TempDir()
	pathDir := t.TempDir()
	inBin := faketool.Install(t, binDir, "riscv64-linux-musl-nm", faketool.Tool{})
	faketool.Install(t, pathDir, "riscv64-linux-musl-nm", faketool.Tool{})
	onPath := faketool.Install(t, pathDir, "riscv64-linux-musl-objdump", faketool.Tool{})
	faketool.PrependPath(t, pathDir)

	chain := toolchain.New("riscv64")
	chain.BinDir = binDir

	path, err := chain.Resolve(chain.NMCommand())
	require.NoError(t, err)
	assert.Equal(t, inBin, path)

	path, err = chain.Resolve(chain.ObjdumpCommand())
	require.NoError(t, err)
	assert.Equal(t, onPath, path)
}

func TestResolveSkipsNonExecutable(t *testing.T) {
	binDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "mips-linux-musl-nm"), []byte("data"), 0o644))
	t.Setenv("PATH", t.TempDir())

	chain := toolchain.New("mips")
	chain.BinDir = binDir
	_, err := chain.Resolve(chain.NMCommand())
	require.Error(t, err)
	assert.True(t, errors.Is(err, exec.ErrNotFound))
}

func TestResolveMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	chain := toolchain.New("no-such-arch")
	_, err := chain.Resolve(chain.NMCommand())
	require.Error(t, err)
	assert.True(t, errors.Is(err, exec.ErrNotFound))
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	nm := faketool.Install(t, dir, "riscv64-linux-musl-nm", faketool.Tool{})
	t.Setenv("PATH", t.TempDir())

	chain := toolchain.New("riscv64")
	chain.BinDir = dir
	assert.Equal(t, []toolchain.Status{
		{Role: "nm", Name: "riscv64-linux-musl-nm", Path: nm, Found: true},
		{Role: "objdump", Name: "riscv64-linux-musl-objdump"},
	}, chain.Check())
}
