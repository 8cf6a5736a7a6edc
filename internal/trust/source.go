package trust

import (
	"context"
	"errors"
)

var ErrUnexpectedStatus = errors.New("unexpected status code")

// PublisherTrustSource decides whether an action owner is a verified
// publisher. An error means the answer is unknown, not that the owner is
// untrusted.
type PublisherTrustSource interface {
	Verify(ctx context.Context, owner, action string) (bool, error)
}
