// Package report tracks per-post outcomes for the run summary. The tool is
// one-shot, so the tracker is purely in-memory: nothing is persisted and
// re-running starts from scratch.
package report

import (
	"fmt"
	"strings"
)

type Tracker struct {
	migrated    int
	skipped     int
	failedPosts []string
	dryRun      bool
}

func NewTracker(dryRun bool) *Tracker {
	return &Tracker{dryRun: dryRun}
}

// MarkMigrated records a successfully published post.
func (t *Tracker) MarkMigrated(postID string) {
	t.migrated++
}

// MarkSkipped records a post filtered out before publishing (no text).
func (t *Tracker) MarkSkipped(postID string) {
	t.skipped++
}

// MarkFailed records a post whose publish call did not succeed.
func (t *Tracker) MarkFailed(postID string) {
	t.failedPosts = append(t.failedPosts, postID)
}

func (t *Tracker) Migrated() int { return t.migrated }
func (t *Tracker) Skipped() int  { return t.skipped }

// FailedPosts returns the IDs of failed posts in failure order.
func (t *Tracker) FailedPosts() []string {
	return t.failedPosts
}

func (t *Tracker) PrintSummary() {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("Migration Summary")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Migrated posts: %d\n", t.migrated)
	fmt.Printf("Skipped posts (no text): %d\n", t.skipped)
	fmt.Printf("Failed posts: %d\n", len(t.failedPosts))

	if len(t.failedPosts) > 0 {
		fmt.Println("\nFailed post IDs (re-run after fixing to migrate them):")
		for _, id := range t.failedPosts {
			fmt.Printf("  - %s\n", id)
		}
	}

	if t.dryRun {
		fmt.Println("\n[DRY-RUN MODE] No actual changes were made")
	}
}
