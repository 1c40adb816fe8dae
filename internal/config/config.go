package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Config struct {
	// Repos is the fixed set of repositories to operate on, as OWNER/NAME
	// slugs (see --repos). Values may be provided as repeated flags and/or
	// comma-separated lists. Order is preserved and used as the canonical
	// ordering for merged results.
	Repos []string

	// State filters listed issues by state (see --state).
	// Allowed values: open, closed, all.
	State string

	// Format controls console output (see --format).
	// Allowed values: text, json.
	Format string

	// Timeout is the global timeout for one command invocation (see --timeout).
	// Must be > 0.
	Timeout time.Duration

	// Verbose enables per-request GitHub API logging on stderr.
	Verbose bool
}

func New() *Config {
	return &Config{
		State:   "open",
		Format:  "text",
		Timeout: 2 * time.Minute,
	}
}

func (c *Config) Validate() error {
	c.Repos = splitCommaList(c.Repos)
	if len(c.Repos) == 0 {
		return errors.New("at least one --repos value must be provided")
	}

	c.State = normalizeEnumValue(c.State)
	if c.State == "" {
		c.State = "open"
	}
	if c.State != "open" && c.State != "closed" && c.State != "all" {
		return fmt.Errorf("unsupported --state: %s (must be one of: open, closed, all)", c.State)
	}

	c.Format = normalizeEnumValue(c.Format)
	if c.Format == "" {
		c.Format = "text"
	}
	if c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("unsupported --format: %s (must be one of: text, json)", c.Format)
	}

	if c.Timeout <= 0 {
		return errors.New("--timeout must be > 0")
	}

	return nil
}

func normalizeEnumValue(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func splitCommaList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			p := strings.TrimSpace(part)
			if p == "" {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}
