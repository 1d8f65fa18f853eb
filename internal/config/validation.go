package config

import (
	"fmt"
	"net/url"
	"strings"
)

func (c *Config) Validate() error {
	if err := c.validateBluesky(); err != nil {
		return fmt.Errorf("Bluesky config validation failed: %w", err)
	}

	if err := c.validateArchive(); err != nil {
		return fmt.Errorf("archive config validation failed: %w", err)
	}

	if err := c.validateMigration(); err != nil {
		return fmt.Errorf("migration config validation failed: %w", err)
	}

	return nil
}

func (c *Config) validateBluesky() error {
	if c.Bluesky.Host == "" {
		return fmt.Errorf("Bluesky host must be configured")
	}

	parsed, err := url.Parse(c.Bluesky.Host)
	if err != nil {
		return fmt.Errorf("invalid Bluesky host URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("Bluesky host must be an http(s) URL, got %q", c.Bluesky.Host)
	}

	if c.Bluesky.Identifier == "" || c.Bluesky.Identifier == "your-handle.bsky.social" {
		return fmt.Errorf("Bluesky identifier must be configured")
	}

	if strings.ContainsAny(c.Bluesky.Identifier, " \t") {
		return fmt.Errorf("Bluesky identifier must not contain whitespace")
	}

	if c.Bluesky.Password == "" || c.Bluesky.Password == "your_app_password" {
		return fmt.Errorf("Bluesky password must be configured")
	}

	if c.Bluesky.TwoFactorWait < 0 {
		return fmt.Errorf("two-factor wait cannot be negative")
	}

	return nil
}

func (c *Config) validateArchive() error {
	if c.Archive.TweetsFile == "" {
		return fmt.Errorf("tweets archive file path must be configured")
	}

	// MediaDir may legitimately be empty for text-only archives;
	// the preflight check reports on its existence instead.
	return nil
}

func (c *Config) validateMigration() error {
	if c.Migration.MaxRetries <= 0 {
		return fmt.Errorf("max retries must be positive")
	}

	if c.Migration.PostDelay < 0 {
		return fmt.Errorf("post delay cannot be negative")
	}

	return nil
}
