package config

import (
	"fmt"
	"strings"
)

// Validate checks field values and normalizes the extension list.
func (c *Config) Validate() error {
	if c.Convert.Workers < 0 {
		return fmt.Errorf("convert.workers must not be negative, got %d", c.Convert.Workers)
	}
	if strings.ContainsAny(c.Convert.Suffix, `/\`) {
		return fmt.Errorf("convert.suffix must not contain path separators, got %q", c.Convert.Suffix)
	}
	if len(c.Convert.Extensions) == 0 {
		return fmt.Errorf("convert.extensions must not be empty")
	}
	for i, ext := range c.Convert.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			return fmt.Errorf("convert.extensions[%d] is empty", i)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Convert.Extensions[i] = ext
	}
	return nil
}
