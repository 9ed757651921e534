// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load reads and parses the configuration file at path. The format is chosen
// by extension: .yaml/.yml parse as YAML, everything else as TOML (the
// native input format of the runtime build).
//
// A missing file wraps ErrNotFound; undecodable content returns a *ParseError.
// Missing sections are not an error.
func Load(path string) (*Document, error) {
	path = filepath.Clean(path)

	// #nosec G304 -- input paths are provided by the operator via CLI
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var doc Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = toml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return &doc, nil
}
