// Package config handles configuration management for mint.
// It supports loading configuration from multiple sources including
// the embedded defaults, a TOML or YAML file, environment variables, and
// command-line flags.
package config
