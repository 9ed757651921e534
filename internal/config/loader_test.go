// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "device.toml", `
[memory]
memory_base = 2147483648
memory_size = 134217728

[[devices]]
name = "UART 0"
base = 268435456
size = 256
enabled = true
type = "serial"

[[devices]]
name = "timer"
base = 33554432
`)

	doc, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, doc.Memory)
	assert.EqualValues(t, 2147483648, doc.Memory.Base)
	assert.EqualValues(t, 134217728, doc.Memory.Size)

	require.Len(t, doc.Devices, 2)
	assert.Equal(t, "UART 0", doc.Devices[0].Name)
	assert.EqualValues(t, 268435456, doc.Devices[0].Base)
	assert.Equal(t, true, doc.Devices[0].Enabled)
	assert.Equal(t, "serial", doc.Devices[0].Type)
	assert.Equal(t, "timer", doc.Devices[1].Name)
	assert.Nil(t, doc.Devices[1].Enabled)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "device.yaml", `
memory:
  memory_base: 4096
  memory_size: 8192
devices:
  - name: uart0
    base: 256
    enabled: true
`)

	doc, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, doc.Memory)
	assert.EqualValues(t, 4096, doc.Memory.Base)

	require.Len(t, doc.Devices, 1)
	assert.Equal(t, "uart0", doc.Devices[0].Name)
	assert.EqualValues(t, 256, doc.Devices[0].Base)
}

func TestLoadPreservesMistypedFields(t *testing.T) {
	// Wrong-typed scalars must survive loading; the emitter decides per field.
	path := writeFile(t, "device.toml", `
[memory]
memory_base = "not-a-number"

[[devices]]
name = "uart0"
base = "broken"
size = 32
`)

	doc, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, doc.Memory)
	assert.Equal(t, "not-a-number", doc.Memory.Base)
	assert.Nil(t, doc.Memory.Size)

	require.Len(t, doc.Devices, 1)
	assert.Equal(t, "broken", doc.Devices[0].Base)
	assert.EqualValues(t, 32, doc.Devices[0].Size)
}

func TestLoadEmptyMemorySection(t *testing.T) {
	path := writeFile(t, "device.toml", "[memory]\n")

	doc, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, doc.Memory)
	assert.Nil(t, doc.Memory.Base)
	assert.Nil(t, doc.Memory.Size)
}

func TestLoadEmptyDocument(t *testing.T) {
	path := writeFile(t, "device.toml", "")

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Nil(t, doc.Memory)
	assert.Empty(t, doc.Devices)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadParseError(t *testing.T) {
	path := writeFile(t, "device.toml", "= broken = [\n")

	_, err := Load(path)
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, path, perr.Path)
	assert.Error(t, perr.Err)
}

func TestLoadYAMLParseError(t *testing.T) {
	path := writeFile(t, "device.yaml", "memory: [unclosed\n")

	var perr *ParseError
	_, err := Load(path)
	require.ErrorAs(t, err, &perr)
}
