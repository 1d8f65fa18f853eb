package main

import (
	"flag"
	"log"

	"github.com/exileum/twitter-to-bluesky/internal/config"
	"github.com/exileum/twitter-to-bluesky/internal/migration"
)

func main() {
	var (
		dryRun         = flag.Bool("dry-run", false, "Run in dry-run mode (no actual API calls)")
		verbose        = flag.Bool("verbose", false, "Enable verbose logging")
		nonInteractive = flag.Bool("non-interactive", false, "Run in non-interactive mode using environment variables")
	)
	flag.Parse()

	var cfg *config.Config
	if *nonInteractive {
		cfg = config.New()
	} else {
		cfg = config.InteractiveConfig()
	}

	cfg.Migration.DryRun = *dryRun
	cfg.Migration.Verbose = *verbose

	runner := migration.NewInteractiveRunner(*nonInteractive)
	if err := runner.Run(cfg); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
}
