package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSegments(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSegments() error {
	if strings.ContainsAny(c.Segments.Extension, `/\ `) {
		return fmt.Errorf("segments.extension %q must be a bare file extension", c.Segments.Extension)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}
