package migration

import (
	"fmt"
	"log"
	"os"

	"github.com/exileum/twitter-to-bluesky/internal/config"
)

type PreflightChecker struct {
	config *config.Config
}

func NewPreflightChecker(cfg *config.Config) *PreflightChecker {
	return &PreflightChecker{config: cfg}
}

func (p *PreflightChecker) RunChecks() error {
	log.Println("Running pre-flight checks...")

	if p.config.Migration.DryRun {
		log.Println("  Running in DRY-RUN mode - no actual changes will be made")
	}

	if err := p.checkArchiveFile(); err != nil {
		return err
	}

	p.checkMediaDir()

	log.Println("✓ All pre-flight checks passed")
	return nil
}

func (p *PreflightChecker) checkArchiveFile() error {
	info, err := os.Stat(p.config.Archive.TweetsFile)
	if err != nil {
		return fmt.Errorf("archive file check failed for %s: %w", p.config.Archive.TweetsFile, err)
	}
	if info.IsDir() {
		return fmt.Errorf("archive path %s is a directory, expected a file", p.config.Archive.TweetsFile)
	}
	log.Println("  ✓ Archive file found")
	return nil
}

// checkMediaDir only warns: a missing media directory means every media
// lookup misses, which is a per-item condition, not a fatal one.
func (p *PreflightChecker) checkMediaDir() {
	if p.config.Archive.MediaDir == "" {
		log.Println("  ⚠ No media directory configured; posts will migrate without images")
		return
	}

	info, err := os.Stat(p.config.Archive.MediaDir)
	if err != nil || !info.IsDir() {
		log.Printf("  ⚠ Media directory %s not accessible; posts will migrate without images", p.config.Archive.MediaDir)
		return
	}
	log.Println("  ✓ Media directory ready")
}
