package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)
	logger.Debug().Msg("hidden")
	logger.Info().Str("arch", "riscv64").Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "arch=riscv64")
	assert.NotContains(t, buf.String(), "\x1b[")

	buf.Reset()
	logger = New(&buf, true)
	logger.Debug().Msg("running")
	assert.Contains(t, buf.String(), "running")
}
