package migration

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/exileum/twitter-to-bluesky/internal/bluesky"
	"github.com/exileum/twitter-to-bluesky/internal/media"
	"github.com/exileum/twitter-to-bluesky/internal/text"
)

// imageAltText is the fixed alt text attached to every migrated image;
// the archive carries no per-image description to preserve.
const imageAltText = "Twitter image"

// PostingClient is the Bluesky API surface the publisher needs.
type PostingClient interface {
	UploadBlob(ctx context.Context, session *bluesky.Session, path, mimeType string) (*bluesky.BlobRef, error)
	CreatePost(ctx context.Context, session *bluesky.Session, record bluesky.PostRecord) error
}

// Result reports the outcome of a single publish attempt. A failed post is
// reported, not propagated as fatal, so the run continues.
type Result struct {
	OK         bool
	StatusCode int    // HTTP status of the failed call, when available
	Body       string // Platform's raw error body, when available
}

// Publisher assembles and submits one post record at a time: text
// normalization, ordered media uploads with per-item failure containment,
// embed construction, and record submission.
type Publisher struct {
	client     PostingClient
	session    *bluesky.Session
	normalizer *text.Normalizer
	dryRun     bool
	verbose    bool
}

func NewPublisher(client PostingClient, session *bluesky.Session, dryRun, verbose bool) *Publisher {
	return &Publisher{
		client:     client,
		session:    session,
		normalizer: text.NewNormalizer(),
		dryRun:     dryRun,
		verbose:    verbose,
	}
}

// Publish normalizes the text, uploads the given media in order, and
// submits the assembled record.
func (p *Publisher) Publish(ctx context.Context, postText, createdAt string, mediaPaths []string) Result {
	record := bluesky.PostRecord{
		Type:      bluesky.PostRecordType,
		Text:      p.normalizer.Normalize(postText),
		CreatedAt: createdAt,
	}

	images := p.uploadAll(ctx, mediaPaths)
	if len(images) > 0 {
		record.Embed = &bluesky.ImagesEmbed{
			Type:   bluesky.ImagesEmbedType,
			Images: images,
		}
	}

	if p.verbose {
		if payload, err := json.MarshalIndent(record, "", "  "); err == nil {
			log.Printf("  Record payload:\n%s", payload)
		}
	}

	if p.dryRun {
		log.Printf("  [DRY-RUN] Would post: %s", preview(record.Text))
		return Result{OK: true}
	}

	if err := p.client.CreatePost(ctx, p.session, record); err != nil {
		result := Result{OK: false}

		var reqErr *bluesky.RequestError
		if errors.As(err, &reqErr) {
			result.StatusCode = reqErr.StatusCode
			result.Body = reqErr.Body
			log.Printf("  ✗ Posting failed (status %d): %s", reqErr.StatusCode, reqErr.Body)
		} else {
			result.Body = err.Error()
			log.Printf("  ✗ Posting failed: %v", err)
		}
		return result
	}

	log.Printf("  ✓ Posted: %s", preview(record.Text))
	return Result{OK: true}
}

// uploadAll uploads each media path in input order, dropping failures and
// unsupported types. At most MaxEmbedImages blobs survive.
func (p *Publisher) uploadAll(ctx context.Context, mediaPaths []string) []bluesky.EmbedImage {
	var images []bluesky.EmbedImage

	for _, path := range mediaPaths {
		if len(images) >= bluesky.MaxEmbedImages {
			log.Printf("  ⚠ Image limit reached, dropping remaining media: %s", path)
			continue
		}

		mimeType, ok := media.DetectPhotoMIME(path)
		if !ok {
			log.Printf("  ✗ Skipped unsupported media type: %s", path)
			continue
		}

		if p.dryRun {
			log.Printf("  [DRY-RUN] Would upload: %s as %s", path, mimeType)
			continue
		}

		log.Printf("  Uploading media: %s as %s...", path, mimeType)
		blob, err := p.client.UploadBlob(ctx, p.session, path, mimeType)
		if err != nil {
			log.Printf("  ✗ Media upload failed: %v", err)
			continue
		}

		images = append(images, bluesky.EmbedImage{
			Image: *blob,
			Alt:   imageAltText,
		})
	}

	return images
}

func preview(s string) string {
	const max = 50
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
