// Package faketool installs scripted stand-ins for toolchain executables so
// tests can run the real process plumbing without a cross toolchain.
package faketool

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/kballard/go-shellquote"
)

// Tool describes the behaviour of one fake executable.
type Tool struct {
	Stdout   []byte
	Stderr   string
	ExitCode int
}

// Install writes an executable named name into dir. Every invocation appends
// its argument list as one line to name+".calls" in dir, copies tool.Stdout to
// stdout, tool.Stderr to stderr and exits with tool.ExitCode.
func Install(t testing.TB, dir, name string, tool Tool) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are shell scripts")
	}

	path := filepath.Join(dir, name)
	stdoutPath := path + ".stdout"
	if err := os.WriteFile(stdoutPath, tool.Stdout, 0o600); err != nil {
		t.Fatalf("failed to write fake stdout: %v", err)
	}

	script := strings.Join([]string{
		"#!/bin/sh",
		"PATH=/usr/bin:/bin:$PATH",
		`echo "$*" >> ` + shellquote.Join(path+".calls"),
		"cat " + shellquote.Join(stdoutPath),
		"printf '%s' " + shellquote.Join(tool.Stderr) + " >&2",
		"exit " + strconv.Itoa(tool.ExitCode),
		"",
	}, "\n")
	//nolint:gosec
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write fake tool: %v", err)
	}
	return path
}

// Calls returns the recorded argument lists of the fake tool at path, one
// entry per invocation.
func Calls(t testing.TB, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path + ".calls")
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("failed to read calls: %v", err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

// PrependPath puts dir at the front of PATH for the duration of the test.
func PrependPath(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}
