package migration

import (
	"context"
	"log"

	"github.com/exileum/twitter-to-bluesky/internal/archive"
	"github.com/exileum/twitter-to-bluesky/internal/config"
	"github.com/exileum/twitter-to-bluesky/internal/report"
	"github.com/exileum/twitter-to-bluesky/internal/util"
)

// MediaResolver locates a post's local media file.
type MediaResolver interface {
	Resolve(postID, remoteFilename string) (string, bool, error)
}

// PostPublisher assembles and submits one post.
type PostPublisher interface {
	Publish(ctx context.Context, postText, createdAt string, mediaPaths []string) Result
}

// Runner drives the post loop: archive order, per-post media resolution,
// publishing, outcome tracking, and inter-post pacing.
type Runner struct {
	config    *config.Config
	resolver  MediaResolver
	publisher PostPublisher
	tracker   *report.Tracker
}

func NewRunner(cfg *config.Config, resolver MediaResolver, publisher PostPublisher, tracker *report.Tracker) *Runner {
	return &Runner{
		config:    cfg,
		resolver:  resolver,
		publisher: publisher,
		tracker:   tracker,
	}
}

// RunMigration processes every tweet in archive order. Per-post failures
// are recorded and skipped over; only context cancellation stops the loop.
func (r *Runner) RunMigration(ctx context.Context, tweets []archive.TweetWrapper) error {
	log.Printf("✓ Found %d posts to migrate", len(tweets))

	for i, wrapper := range tweets {
		tweet := wrapper.Tweet
		log.Printf("\nProcessing post %d/%d (id %s)", i+1, len(tweets), tweet.IDStr)

		// Posts with no extractable text are dropped entirely. This is
		// distinct from the publisher's placeholder substitution, which
		// only applies to posts whose text field survives extraction.
		postText := tweet.Text()
		if postText == "" {
			log.Printf("  ⏭ Skipped: post has no text")
			r.tracker.MarkSkipped(tweet.IDStr)
			continue
		}

		mediaPaths := r.resolveMedia(tweet)
		createdAt := archive.FormatTimestamp(tweet.CreatedAt)

		result := r.publisher.Publish(ctx, postText, createdAt, mediaPaths)
		if result.OK {
			r.tracker.MarkMigrated(tweet.IDStr)
		} else {
			r.tracker.MarkFailed(tweet.IDStr)
		}

		// Fixed pacing between posts is the rate-limiting mechanism.
		if !r.config.Migration.DryRun && r.config.Migration.PostDelay > 0 {
			if err := util.ContextSleep(ctx, r.config.Migration.PostDelay); err != nil {
				return err
			}
		}
	}

	r.tracker.PrintSummary()
	return nil
}

// resolveMedia maps the tweet's photo attachments to local paths in their
// original order. A missing local file drops that item, not the post.
func (r *Runner) resolveMedia(tweet archive.Tweet) []string {
	var paths []string

	for _, filename := range tweet.PhotoFilenames() {
		path, found, err := r.resolver.Resolve(tweet.IDStr, filename)
		if err != nil {
			log.Printf("  ✗ Media lookup failed for %s: %v", filename, err)
			continue
		}
		if !found {
			log.Printf("  ⏭ Local media not found: %s-%s", tweet.IDStr, filename)
			continue
		}
		paths = append(paths, path)
	}

	return paths
}
