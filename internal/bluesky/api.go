package bluesky

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"
)

// UploadBlob uploads the file at path as a raw binary blob and returns its
// reference. mimeType is the locally detected content type; it is stamped
// onto the returned reference because the platform's response does not
// validate it. A non-success response is a recoverable per-media failure.
func (c *Client) UploadBlob(ctx context.Context, session *Session, path, mimeType string) (*BlobRef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read media file %s: %w", path, err)
	}

	resp, err := c.retryableRequest(func() (*resty.Response, error) {
		return c.client.R().
			SetContext(ctx).
			SetAuthToken(session.AccessJwt).
			SetHeader("Content-Type", "application/octet-stream").
			SetBody(data).
			Post(c.url(uploadBlobPath))
	})

	if err != nil {
		return nil, fmt.Errorf("blob upload request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return nil, &RequestError{
			Operation:  "upload blob",
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}

	var result uploadBlobResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse upload response: %w", err)
	}

	if result.Blob.Ref.Link == "" {
		return nil, fmt.Errorf("upload response contained no blob reference: %s", resp.String())
	}

	blob := result.Blob
	blob.MimeType = mimeType
	return &blob, nil
}

// CreatePost writes a feed post record to the session's repository.
// A non-success response is returned as a *RequestError carrying the
// platform's body; it is a recoverable per-post failure for the caller.
func (c *Client) CreatePost(ctx context.Context, session *Session, record PostRecord) error {
	resp, err := c.retryableRequest(func() (*resty.Response, error) {
		return c.client.R().
			SetContext(ctx).
			SetAuthToken(session.AccessJwt).
			SetHeader("Content-Type", "application/json").
			SetBody(createRecordRequest{
				Repo:       session.Repo(),
				Collection: FeedPostCollection,
				Record:     record,
			}).
			Post(c.url(createRecordPath))
	})

	if err != nil {
		return fmt.Errorf("create record request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		return &RequestError{
			Operation:  "create record",
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}

	return nil
}
