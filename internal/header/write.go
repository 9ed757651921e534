// SPDX-License-Identifier: MIT

package header

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/dolphin-riscv/devcfg/internal/config"
)

// Write puts the rendered header at path in one atomic operation, creating
// missing parent directories first. renameio stages a temp file and renames
// it into place, so no partial header is ever visible.
func Write(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending header file: %w", err)
	}
	defer func() {
		// Removes the temp file if we never committed.
		_ = pending.Cleanup()
	}()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("write header data: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace header file: %w", err)
	}
	return nil
}

// Generate renders doc and writes the result to path. Returned diagnostics
// describe fields that were skipped; the error covers the write path only.
func Generate(doc *config.Document, path string) ([]Diagnostic, error) {
	data, diags := Render(doc)
	if err := Write(path, data); err != nil {
		return diags, err
	}
	return diags, nil
}
