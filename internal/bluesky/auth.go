package bluesky

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/exileum/twitter-to-bluesky/internal/util"
)

// authFactorRequiredError is the platform's error identifier signaling
// that a sign-in code was emailed and must accompany a second attempt.
const authFactorRequiredError = "AuthFactorTokenRequired"

// SecondFactorPrompter supplies the out-of-band sign-in code during the
// step-up flow. Production wiring reads it from the operator's terminal.
type SecondFactorPrompter interface {
	SecondFactorCode(ctx context.Context) (string, error)
}

// CreateSession performs a single authentication request. factorToken may
// be empty on the first attempt. Non-200 responses are returned as an
// *AuthError carrying the platform's error payload.
func (c *Client) CreateSession(ctx context.Context, identifier, password, factorToken string) (*Session, error) {
	resp, err := c.retryableRequest(func() (*resty.Response, error) {
		return c.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(createSessionRequest{
				Identifier:      identifier,
				Password:        password,
				AuthFactorToken: factorToken,
			}).
			Post(c.url(createSessionPath))
	})

	if err != nil {
		return nil, fmt.Errorf("authentication request failed: %w", err)
	}

	if resp.StatusCode() != 200 {
		var body apiErrorBody
		_ = json.Unmarshal(resp.Body(), &body)

		return nil, &AuthError{
			StatusCode: resp.StatusCode(),
			Name:       body.Error,
			Body:       resp.String(),
		}
	}

	var session Session
	if err := json.Unmarshal(resp.Body(), &session); err != nil {
		return nil, fmt.Errorf("failed to parse session response: %w", err)
	}

	if session.AccessJwt == "" {
		return nil, fmt.Errorf("session response contained no access token")
	}

	return &session, nil
}

// Authenticator drives the login flow, including the single step-up
// attempt when the platform requires a second factor.
type Authenticator struct {
	client       *Client
	prompter     SecondFactorPrompter
	deliveryWait time.Duration
}

// NewAuthenticator creates an authenticator. deliveryWait is how long to
// pause before prompting for the code, giving the out-of-band email time
// to arrive.
func NewAuthenticator(client *Client, prompter SecondFactorPrompter, deliveryWait time.Duration) *Authenticator {
	return &Authenticator{
		client:       client,
		prompter:     prompter,
		deliveryWait: deliveryWait,
	}
}

// Authenticate exchanges credentials for a session. When the platform
// responds with a second-factor challenge, it waits for code delivery,
// prompts once, and retries once; a second failure is terminal.
func (a *Authenticator) Authenticate(ctx context.Context, identifier, password string) (*Session, error) {
	log.Println("Logging in to Bluesky...")

	session, err := a.client.CreateSession(ctx, identifier, password, "")
	if err == nil {
		log.Printf("✓ Logged in as %s", session.Handle)
		return session, nil
	}

	var authErr *AuthError
	if !errors.As(err, &authErr) || authErr.Name != authFactorRequiredError {
		return nil, err
	}

	log.Println("Sign-in code required. A code has been sent to your email.")
	if a.deliveryWait > 0 {
		log.Printf("Waiting %v for the code to arrive...", a.deliveryWait)
		if err := util.ContextSleep(ctx, a.deliveryWait); err != nil {
			return nil, err
		}
	}

	code, err := a.prompter.SecondFactorCode(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect sign-in code: %w", err)
	}

	session, err = a.client.CreateSession(ctx, identifier, password, code)
	if err != nil {
		return nil, err
	}

	log.Printf("✓ Logged in as %s", session.Handle)
	return session, nil
}
