// Package config loads, normalizes, and validates karamove configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts) and reads TOML files from --config, ~/.config/karamove/config.toml
// or ./karamove.toml. A missing file is not an error: the roster commands run
// with defaults, so a fresh checkout works without any setup.
package config
