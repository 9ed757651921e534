// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
)

// ErrNotFound classifies a missing input file. Use errors.Is(err, ErrNotFound)
// instead of string matching.
var ErrNotFound = errors.New("config file not found")

// ParseError classifies a file whose contents are not a well-formed document.
// It carries the underlying parser diagnostic.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
