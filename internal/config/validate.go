package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the configuration for errors the core workflow cannot
// recover from. It runs before any remote call is made.
func (c *Config) Validate() error {
	if c.RootURL == "" {
		return fmt.Errorf("root_url is required")
	}
	parsed, err := url.Parse(c.RootURL)
	if err != nil {
		return fmt.Errorf("root_url is not a valid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("root_url must use http or https, got %q", c.RootURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("root_url has no host: %q", c.RootURL)
	}

	if c.AdminUsername == "" {
		return fmt.Errorf("admin_username is required")
	}
	if c.AdminPassword == "" {
		return fmt.Errorf("admin_password is required (set it in the config or via %s)", EnvAdminPassword)
	}
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}

	return c.validateStacks()
}

// validateStacks requires at least one declared stack, complete entries,
// and unique names. Names are compared case-insensitively because the
// control plane does not distinguish case.
func (c *Config) validateStacks() error {
	if len(c.Stacks) == 0 {
		return fmt.Errorf("at least one stack must be declared")
	}

	seen := make(map[string]bool, len(c.Stacks))
	for i, s := range c.Stacks {
		if s.Name == "" {
			return fmt.Errorf("stacks[%d]: name is required", i)
		}
		if s.ComposeFile == "" {
			return fmt.Errorf("stack %q: compose_file is required", s.Name)
		}
		key := strings.ToLower(s.Name)
		if seen[key] {
			return fmt.Errorf("stack %q is declared more than once", s.Name)
		}
		seen[key] = true
	}
	return nil
}
