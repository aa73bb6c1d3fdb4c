// Package toolchain derives cross toolchain executable names from a target
// architecture and locates them on disk.
package toolchain

import (
	"os"
	"os/exec"
	"path/filepath"
)

// ConventionMusl is the cross prefix used by the musl cross toolchains the
// kernel is built with, e.g. riscv64-linux-musl-nm.
const ConventionMusl = "-linux-musl-"

// ConventionBare treats the architecture argument as the complete prefix,
// e.g. "riscv64-unknown-elf-".
const ConventionBare = ""

const (
	DefaultNM      = "nm"
	DefaultObjdump = "objdump"
)

// Toolchain names the binary-analysis tools of one cross toolchain.
type Toolchain struct {
	Arch       string
	Convention string
	NM         string
	Objdump    string
	// BinDir, if set, is searched before PATH.
	BinDir string
}

// New returns the toolchain for arch using the musl naming convention.
func New(arch string) *Toolchain {
	return &Toolchain{
		Arch:       arch,
		Convention: ConventionMusl,
		NM:         DefaultNM,
		Objdump:    DefaultObjdump,
	}
}

// Apply overlays the non-empty fields of prof onto t.
func (t *Toolchain) Apply(prof *Profile) {
	if prof == nil {
		return
	}
	if prof.Convention != nil {
		t.Convention = *prof.Convention
	}
	if prof.NM != "" {
		t.NM = prof.NM
	}
	if prof.Objdump != "" {
		t.Objdump = prof.Objdump
	}
	if prof.BinDir != "" {
		t.BinDir = prof.BinDir
	}
}

// Command returns the executable name for base in this toolchain.
func (t *Toolchain) Command(base string) string {
	return t.Arch + t.Convention + base
}

func (t *Toolchain) NMCommand() string {
	return t.Command(t.NM)
}

func (t *Toolchain) ObjdumpCommand() string {
	return t.Command(t.Objdump)
}

// Resolve returns the absolute path of the executable name. The error wraps
// exec.ErrNotFound when name is neither in BinDir nor on PATH.
func (t *Toolchain) Resolve(name string) (string, error) {
	if t.BinDir != "" {
		candidate := filepath.Join(t.BinDir, name)
		if isExecutable(candidate) {
			return filepath.Abs(candidate)
		}
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", err
	}
	return filepath.Abs(path)
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}

// Status reports where one toolchain executable resolved to.
type Status struct {
	Role  string `json:"role"`
	Name  string `json:"name"`
	Path  string `json:"path,omitempty"`
	Found bool   `json:"found"`
}

// Check resolves the symbol-dump and disassembler executables.
func (t *Toolchain) Check() []Status {
	tools := []struct{ role, name string }{
		{"nm", t.NMCommand()},
		{"objdump", t.ObjdumpCommand()},
	}
	statuses := make([]Status, 0, len(tools))
	for _, tool := range tools {
		st := Status{Role: tool.role, Name: tool.name}
		if path, err := t.Resolve(tool.name); err == nil {
			st.Path = path
			st.Found = true
		}
		statuses = append(statuses, st)
	}
	return statuses
}
