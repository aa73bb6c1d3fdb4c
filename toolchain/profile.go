package toolchain

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is the on-disk toolchain configuration. Empty fields keep the
// toolchain defaults.
type Profile struct {
	// Convention is a pointer so that an explicit "" selects the bare form.
	Convention *string `yaml:"convention"`
	NM         string  `yaml:"nm"`
	Objdump    string  `yaml:"objdump"`
	BinDir     string  `yaml:"bin_dir"`
}

// LoadProfile loads a toolchain profile from a YAML file.
func LoadProfile(filename string) (*Profile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	defer file.Close()

	var profile Profile
	if err := yaml.NewDecoder(file).Decode(&profile); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &profile, nil
}
