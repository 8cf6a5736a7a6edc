package trust

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tracker-tv/github-actions-auditor/internal/github"
)

// OrganizationSource treats an owner as verified when GitHub reports it as
// an organization with verified domains.
type OrganizationSource struct {
	gh github.Client
}

func NewOrganizationSource(gh github.Client) *OrganizationSource {
	return &OrganizationSource{gh: gh}
}

func (s *OrganizationSource) Verify(ctx context.Context, owner, _ string) (bool, error) {
	org, resp, err := s.gh.GetOrganization(ctx, owner)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, fmt.Errorf("getting organization %s: %w", owner, err)
	}
	return org.GetIsVerified(), nil
}
