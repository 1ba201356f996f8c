// Package config loads optional YAML defaults for cmd/benchsingle, the way
// internal/config.LoadLoginServer resolves a YAML file to a populated struct
// in the la2go reference server, falling back to hardcoded defaults when the
// file is absent.
package config
