// SPDX-License-Identifier: MIT

// Package config loads the device/memory description that the header
// generator renders into device_config.h.
package config

// Document is the root of a parsed configuration file. Both sections are
// optional; a document with neither is valid and produces a minimal header.
type Document struct {
	Memory  *Memory  `toml:"memory" yaml:"memory"`
	Devices []Device `toml:"devices" yaml:"devices"`
}

// Memory describes the main memory region. Fields are kept as raw decoded
// values so that a present-but-mistyped field survives loading and can be
// skipped per field at render time instead of failing the whole run.
// A nil field means the key was absent.
type Memory struct {
	Base any `toml:"memory_base" yaml:"memory_base"`
	Size any `toml:"memory_size" yaml:"memory_size"`
}

// Device describes one peripheral. Only Name is required; records without a
// usable name are skipped by the emitter. The raw-value convention matches
// Memory.
type Device struct {
	Name    any `toml:"name" yaml:"name"`
	Base    any `toml:"base" yaml:"base"`
	Size    any `toml:"size" yaml:"size"`
	Enabled any `toml:"enabled" yaml:"enabled"`
	Type    any `toml:"type" yaml:"type"`
}
