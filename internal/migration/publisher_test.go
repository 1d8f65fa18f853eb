package migration

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/exileum/twitter-to-bluesky/internal/bluesky"
	"github.com/exileum/twitter-to-bluesky/internal/testutil"
	"github.com/exileum/twitter-to-bluesky/internal/text"
)

var testSession = &bluesky.Session{AccessJwt: "jwt", DID: "did:plc:test"}

func blobFor(link string) *bluesky.BlobRef {
	return &bluesky.BlobRef{Type: "blob", Ref: bluesky.BlobLink{Link: link}, Size: 1}
}

func TestPublishTextOnly(t *testing.T) {
	var posted *bluesky.PostRecord
	client := &testutil.BlueskyClient{
		CreatePostFunc: func(ctx context.Context, session *bluesky.Session, record bluesky.PostRecord) error {
			posted = &record
			return nil
		},
	}

	publisher := NewPublisher(client, testSession, false, false)
	result := publisher.Publish(context.Background(), "Hello", "2024-01-01T12:00:00.000Z", nil)

	if !result.OK {
		t.Fatalf("Expected success, got %+v", result)
	}
	if posted == nil {
		t.Fatal("Expected CreatePost to be called")
	}
	if posted.Text != "Hello" || posted.CreatedAt != "2024-01-01T12:00:00.000Z" {
		t.Errorf("Unexpected record: %+v", posted)
	}
	if posted.Embed != nil {
		t.Error("Expected no embed for text-only post")
	}
}

func TestPublishNormalizesText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Whitespace-only becomes placeholder",
			input: "   ",
			want:  text.EmptyTextPlaceholder,
		},
		{
			name:  "Entities unescaped",
			input: "a &amp; b",
			want:  "a & b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var posted bluesky.PostRecord
			client := &testutil.BlueskyClient{
				CreatePostFunc: func(ctx context.Context, session *bluesky.Session, record bluesky.PostRecord) error {
					posted = record
					return nil
				},
			}

			publisher := NewPublisher(client, testSession, false, false)
			if result := publisher.Publish(context.Background(), tt.input, "2024-01-01T12:00:00.000Z", nil); !result.OK {
				t.Fatalf("Expected success, got %+v", result)
			}
			if posted.Text != tt.want {
				t.Errorf("Expected text %q, got %q", tt.want, posted.Text)
			}
		})
	}
}

func TestPublishWithMedia(t *testing.T) {
	t.Run("Successful uploads are embedded in order", func(t *testing.T) {
		var uploaded []string
		client := &testutil.BlueskyClient{
			UploadBlobFunc: func(ctx context.Context, session *bluesky.Session, path, mimeType string) (*bluesky.BlobRef, error) {
				uploaded = append(uploaded, path)
				blob := blobFor("ref-" + path)
				blob.MimeType = mimeType
				return blob, nil
			},
			CreatePostFunc: func(ctx context.Context, session *bluesky.Session, record bluesky.PostRecord) error {
				if record.Embed == nil {
					t.Fatal("Expected embed block")
				}
				if len(record.Embed.Images) != 2 {
					t.Fatalf("Expected 2 images, got %d", len(record.Embed.Images))
				}
				if record.Embed.Images[0].Image.Ref.Link != "ref-/m/1-a.jpg" {
					t.Errorf("Image order not preserved: %+v", record.Embed.Images)
				}
				if record.Embed.Images[0].Alt != "Twitter image" {
					t.Errorf("Expected fixed alt text, got %q", record.Embed.Images[0].Alt)
				}
				if record.Embed.Images[0].Image.MimeType != "image/jpeg" {
					t.Errorf("Expected detected MIME on blob, got %q", record.Embed.Images[0].Image.MimeType)
				}
				return nil
			},
		}

		publisher := NewPublisher(client, testSession, false, false)
		result := publisher.Publish(context.Background(), "pics", "2024-01-01T12:00:00.000Z", []string{"/m/1-a.jpg", "/m/1-b.png"})
		if !result.OK {
			t.Fatalf("Expected success, got %+v", result)
		}
		if len(uploaded) != 2 {
			t.Errorf("Expected 2 uploads, got %v", uploaded)
		}
	})

	t.Run("Unsupported MIME never reaches upload", func(t *testing.T) {
		client := &testutil.BlueskyClient{
			UploadBlobFunc: func(ctx context.Context, session *bluesky.Session, path, mimeType string) (*bluesky.BlobRef, error) {
				t.Errorf("UploadBlob called for unsupported file %s", path)
				return nil, errors.New("should not happen")
			},
			CreatePostFunc: func(ctx context.Context, session *bluesky.Session, record bluesky.PostRecord) error {
				if record.Embed != nil {
					t.Error("Expected no embed when all media are unsupported")
				}
				return nil
			},
		}

		publisher := NewPublisher(client, testSession, false, false)
		result := publisher.Publish(context.Background(), "gif post", "2024-01-01T12:00:00.000Z", []string{"/m/1-anim.gif", "/m/1-clip.mp4"})
		if !result.OK {
			t.Fatalf("Expected post to proceed without media, got %+v", result)
		}
	})

	t.Run("Failed upload is dropped, post proceeds", func(t *testing.T) {
		client := &testutil.BlueskyClient{
			UploadBlobFunc: func(ctx context.Context, session *bluesky.Session, path, mimeType string) (*bluesky.BlobRef, error) {
				if strings.Contains(path, "bad") {
					return nil, &bluesky.RequestError{Operation: "upload blob", StatusCode: 500, Body: "boom"}
				}
				return blobFor("ok"), nil
			},
			CreatePostFunc: func(ctx context.Context, session *bluesky.Session, record bluesky.PostRecord) error {
				if record.Embed == nil || len(record.Embed.Images) != 1 {
					t.Errorf("Expected exactly the surviving blob, got %+v", record.Embed)
				}
				return nil
			},
		}

		publisher := NewPublisher(client, testSession, false, false)
		result := publisher.Publish(context.Background(), "partial", "2024-01-01T12:00:00.000Z", []string{"/m/1-bad.jpg", "/m/1-good.jpg"})
		if !result.OK {
			t.Fatalf("Expected success, got %+v", result)
		}
	})

	t.Run("Image limit caps the embed", func(t *testing.T) {
		var uploads int
		client := &testutil.BlueskyClient{
			UploadBlobFunc: func(ctx context.Context, session *bluesky.Session, path, mimeType string) (*bluesky.BlobRef, error) {
				uploads++
				return blobFor(path), nil
			},
			CreatePostFunc: func(ctx context.Context, session *bluesky.Session, record bluesky.PostRecord) error {
				if len(record.Embed.Images) != bluesky.MaxEmbedImages {
					t.Errorf("Expected %d images, got %d", bluesky.MaxEmbedImages, len(record.Embed.Images))
				}
				return nil
			},
		}

		paths := []string{"/m/1.jpg", "/m/2.jpg", "/m/3.jpg", "/m/4.jpg", "/m/5.jpg", "/m/6.jpg"}
		publisher := NewPublisher(client, testSession, false, false)
		if result := publisher.Publish(context.Background(), "many", "2024-01-01T12:00:00.000Z", paths); !result.OK {
			t.Fatalf("Expected success, got %+v", result)
		}
		if uploads != bluesky.MaxEmbedImages {
			t.Errorf("Expected uploads to stop at the limit, got %d", uploads)
		}
	})
}

func TestPublishFailure(t *testing.T) {
	t.Run("Platform error is reported, not raised", func(t *testing.T) {
		client := &testutil.BlueskyClient{
			CreatePostFunc: func(ctx context.Context, session *bluesky.Session, record bluesky.PostRecord) error {
				return &bluesky.RequestError{Operation: "create record", StatusCode: 400, Body: `{"error":"InvalidRequest"}`}
			},
		}

		publisher := NewPublisher(client, testSession, false, false)
		result := publisher.Publish(context.Background(), "Hello", "2024-01-01T12:00:00.000Z", nil)

		if result.OK {
			t.Fatal("Expected failure result")
		}
		if result.StatusCode != 400 {
			t.Errorf("Expected status 400, got %d", result.StatusCode)
		}
		if !strings.Contains(result.Body, "InvalidRequest") {
			t.Errorf("Expected platform body in result, got %q", result.Body)
		}
	})

	t.Run("Transport error is reported", func(t *testing.T) {
		client := &testutil.BlueskyClient{
			CreatePostFunc: func(ctx context.Context, session *bluesky.Session, record bluesky.PostRecord) error {
				return errors.New("connection refused")
			},
		}

		publisher := NewPublisher(client, testSession, false, false)
		result := publisher.Publish(context.Background(), "Hello", "2024-01-01T12:00:00.000Z", nil)
		if result.OK {
			t.Fatal("Expected failure result")
		}
		if !strings.Contains(result.Body, "connection refused") {
			t.Errorf("Expected transport error in result, got %q", result.Body)
		}
	})
}

func TestPublishDryRun(t *testing.T) {
	client := &testutil.BlueskyClient{
		UploadBlobFunc: func(ctx context.Context, session *bluesky.Session, path, mimeType string) (*bluesky.BlobRef, error) {
			t.Error("UploadBlob called in dry-run mode")
			return nil, errors.New("no network in dry run")
		},
		CreatePostFunc: func(ctx context.Context, session *bluesky.Session, record bluesky.PostRecord) error {
			t.Error("CreatePost called in dry-run mode")
			return errors.New("no network in dry run")
		},
	}

	publisher := NewPublisher(client, nil, true, false)
	result := publisher.Publish(context.Background(), "Hello", "2024-01-01T12:00:00.000Z", []string{"/m/1-a.jpg"})
	if !result.OK {
		t.Fatalf("Expected dry-run publish to report success, got %+v", result)
	}
}
