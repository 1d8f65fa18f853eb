// Package bluesky provides an XRPC client for the destination platform:
// session creation (including the second-factor step-up), binary blob
// uploads, and feed post record creation.
package bluesky

import (
	"fmt"
	"math"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	createSessionPath = "/xrpc/com.atproto.server.createSession"
	uploadBlobPath    = "/xrpc/com.atproto.repo.uploadBlob"
	createRecordPath  = "/xrpc/com.atproto.repo.createRecord"

	// FeedPostCollection is the record collection posts are written to.
	FeedPostCollection = "app.bsky.feed.post"

	// PostRecordType is the $type value of an outbound post record.
	PostRecordType = "app.bsky.feed.post"

	// ImagesEmbedType is the $type value of an image embed block.
	ImagesEmbedType = "app.bsky.embed.images"

	// MaxEmbedImages is the platform's per-post image limit.
	MaxEmbedImages = 4
)

type Client struct {
	host       string
	maxRetries int
	client     *resty.Client
}

func NewClient(host string, maxRetries int) *Client {
	// Create resty client with appropriate timeouts and settings
	restyClient := resty.New().
		SetTimeout(30*time.Second).                         // Overall request timeout (30s for API calls)
		SetRetryCount(0).                                   // Disable resty's built-in retry (we handle our own)
		SetHeader("User-Agent", "Twitter-to-Bluesky/1.0").  // Set user agent
		SetHeader("Accept", "application/json")             // Expect JSON responses

	return &Client{
		host:       host,
		maxRetries: maxRetries,
		client:     restyClient,
	}
}

// retryableRequest retries rate-limited (429) requests with exponential
// backoff. Every other status is returned to the caller as-is.
func (c *Client) retryableRequest(req func() (*resty.Response, error)) (*resty.Response, error) {
	for i := 0; i < c.maxRetries; i++ {
		resp, err := req()

		if err != nil {
			return nil, err
		}

		if resp.StatusCode() != 429 {
			return resp, nil
		}

		if i < c.maxRetries-1 {
			delay := time.Duration(math.Pow(2, float64(i))) * time.Second
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("max retries (%d) exceeded", c.maxRetries)
}

// SetTimeout allows customizing the HTTP timeout after client creation
func (c *Client) SetTimeout(timeout time.Duration) *Client {
	c.client.SetTimeout(timeout)
	return c
}

func (c *Client) url(path string) string {
	return c.host + path
}
