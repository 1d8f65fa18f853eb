// Package testutil provides func-field mocks for the external surfaces the
// migration touches. Tests must set the funcs they expect to be called.
package testutil

import (
	"context"
	"errors"

	"github.com/exileum/twitter-to-bluesky/internal/bluesky"
)

// BlueskyClient mocks the posting surface of the Bluesky API client.
type BlueskyClient struct {
	UploadBlobFunc func(ctx context.Context, session *bluesky.Session, path, mimeType string) (*bluesky.BlobRef, error)
	CreatePostFunc func(ctx context.Context, session *bluesky.Session, record bluesky.PostRecord) error
}

func (m *BlueskyClient) UploadBlob(ctx context.Context, session *bluesky.Session, path, mimeType string) (*bluesky.BlobRef, error) {
	if m.UploadBlobFunc != nil {
		return m.UploadBlobFunc(ctx, session, path, mimeType)
	}
	return nil, errors.New("UploadBlobFunc not set - test must explicitly set mock behavior")
}

func (m *BlueskyClient) CreatePost(ctx context.Context, session *bluesky.Session, record bluesky.PostRecord) error {
	if m.CreatePostFunc != nil {
		return m.CreatePostFunc(ctx, session, record)
	}
	return errors.New("CreatePostFunc not set - test must explicitly set mock behavior")
}

// MediaResolver mocks local media lookup.
type MediaResolver struct {
	ResolveFunc func(postID, remoteFilename string) (string, bool, error)
}

func (m *MediaResolver) Resolve(postID, remoteFilename string) (string, bool, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(postID, remoteFilename)
	}
	return "", false, errors.New("ResolveFunc not set - test must explicitly set mock behavior")
}
