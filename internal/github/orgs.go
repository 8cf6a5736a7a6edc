package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	gh "github.com/google/go-github/v80/github"
)

var ErrMaxRetries = errors.New("max retries reached")

// GetOrganization fetches an organization, waiting out rate limits.
func (c *client) GetOrganization(ctx context.Context, org string) (*gh.Organization, *gh.Response, error) {
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		o, resp, err := c.organizations.Get(ctx, org)

		if err == nil {
			return o, resp, nil
		}

		var rateLimitErr *gh.RateLimitError
		ok := errors.As(err, &rateLimitErr)
		if !ok {
			return nil, resp, err
		}

		if attempt == c.maxRetries {
			return nil, resp, fmt.Errorf("%w: %w", ErrMaxRetries, err)
		}

		waitDuration := rateLimitErr.Rate.Reset.Sub(time.Now())
		if waitDuration < 0 {
			waitDuration = c.baseDelay * time.Duration(1<<attempt)
		}

		select {
		case <-time.After(waitDuration):
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		}
	}

	return nil, nil, fmt.Errorf("unexpected retry loop exit")
}
