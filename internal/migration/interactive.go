package migration

import (
	"context"
	"fmt"
	"log"

	"github.com/exileum/twitter-to-bluesky/internal/config"
)

// InteractiveRunner handles the interactive migration flow
type InteractiveRunner struct {
	nonInteractive bool
}

// NewInteractiveRunner creates a new interactive migration runner
func NewInteractiveRunner(nonInteractive bool) *InteractiveRunner {
	return &InteractiveRunner{
		nonInteractive: nonInteractive,
	}
}

// Run executes the migration workflow, offering a dry run first when the
// operator is present.
func (r *InteractiveRunner) Run(cfg *config.Config) error {
	if !r.nonInteractive && !cfg.Migration.DryRun {
		if config.PromptBool("Would you like to do a dry run first? (recommended)", true) {
			if err := r.runDryRun(cfg); err != nil {
				log.Printf("Dry run failed: %v", err)
				return err
			}
		}

		if !config.PromptBool("Start the actual migration now?", false) {
			fmt.Println("Migration not started.")
			return nil
		}
	}

	migrator := NewMigrator(cfg)
	return migrator.Run(context.Background())
}

// runDryRun executes a full pass with network calls disabled.
func (r *InteractiveRunner) runDryRun(cfg *config.Config) error {
	fmt.Println("\nRunning dry run...")

	dryCfg := *cfg
	dryCfg.Migration.DryRun = true

	migrator := NewMigrator(&dryCfg)
	return migrator.Run(context.Background())
}
