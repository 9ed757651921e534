// SPDX-License-Identifier: MIT

package header

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolphin-riscv/devcfg/internal/config"
)

func TestGenerateCreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "runtime", "gen", "device_config.h")

	doc := &config.Document{
		Memory: &config.Memory{Base: int64(4096), Size: int64(8192)},
	}

	diags, err := Generate(doc, out)
	require.NoError(t, err)
	require.Empty(t, diags)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	want, _ := Render(doc)
	assert.Equal(t, want, data)
}

func TestGenerateIdempotent(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "device_config.h")

	doc := &config.Document{
		Devices: []config.Device{{Name: "uart0", Base: int64(0x10000000), Enabled: true}},
	}

	_, err := Generate(doc, out)
	require.NoError(t, err)
	first, err := os.ReadFile(out)
	require.NoError(t, err)

	_, err = Generate(doc, out)
	require.NoError(t, err)
	second, err := os.ReadFile(out)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestWriteFailsWhenParentIsAFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := Write(filepath.Join(blocker, "sub", "device_config.h"), []byte("data"))
	assert.Error(t, err)
}
