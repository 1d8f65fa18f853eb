// Package migration orchestrates the migration of a Twitter archive to
// Bluesky posts. It coordinates archive reading, authentication, media
// resolution, publishing, pacing, and outcome reporting.
package migration

import (
	"context"
	"fmt"

	"github.com/exileum/twitter-to-bluesky/internal/archive"
	"github.com/exileum/twitter-to-bluesky/internal/bluesky"
	"github.com/exileum/twitter-to-bluesky/internal/config"
	"github.com/exileum/twitter-to-bluesky/internal/media"
	"github.com/exileum/twitter-to-bluesky/internal/report"
)

// Migrator orchestrates the complete migration run. Authentication failure
// or an unusable archive aborts before any post is attempted; everything
// after that point is contained per post.
type Migrator struct {
	config   *config.Config
	prompter bluesky.SecondFactorPrompter
}

// NewMigrator creates a migration orchestrator with the provided
// configuration. The second-factor code, if the platform demands one, is
// read from the operator's terminal.
func NewMigrator(cfg *config.Config) *Migrator {
	return &Migrator{
		config:   cfg,
		prompter: config.StdinPrompter{},
	}
}

// SetSecondFactorPrompter overrides the step-up code source.
func (m *Migrator) SetSecondFactorPrompter(p bluesky.SecondFactorPrompter) {
	m.prompter = p
}

// Run executes the migration with the given context.
func (m *Migrator) Run(ctx context.Context) error {
	if err := m.config.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	checker := NewPreflightChecker(m.config)
	if err := checker.RunChecks(); err != nil {
		return fmt.Errorf("%w: %v", ErrArchiveUnavailable, err)
	}

	tweets, err := archive.ReadArchive(m.config.Archive.TweetsFile)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArchiveUnavailable, err)
	}

	client := bluesky.NewClient(m.config.Bluesky.Host, m.config.Migration.MaxRetries)

	var session *bluesky.Session
	if !m.config.Migration.DryRun {
		authenticator := bluesky.NewAuthenticator(client, m.prompter, m.config.Bluesky.TwoFactorWait)
		session, err = authenticator.Authenticate(ctx, m.config.Bluesky.Identifier, m.config.Bluesky.Password)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
		}
	}

	resolver := media.NewResolver(m.config.Archive.MediaDir)
	publisher := NewPublisher(client, session, m.config.Migration.DryRun, m.config.Migration.Verbose)
	tracker := report.NewTracker(m.config.Migration.DryRun)

	runner := NewRunner(m.config, resolver, publisher, tracker)
	return runner.RunMigration(ctx, tweets)
}
