package trust

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

const (
	DefaultBaseURL = "https://github.com"

	// Markup snapshot of the marketplace listing for a verified creator.
	DefaultVerifiedMarker     = "Verified"
	DefaultPartnerAttestation = "GitHub has manually verified the creator of the action as an official partner organization."
)

var relativeListingPattern = regexp.MustCompile(`href="(/marketplace/actions/[^"]+)"`)

// MarketplaceSource verifies publishers by scraping the repository page for
// its marketplace listing and checking the listing for the verified creator
// badge.
type MarketplaceSource struct {
	fetcher            Fetcher
	baseURL            string
	verifiedMarker     string
	partnerAttestation string
	absoluteListing    *regexp.Regexp
}

type Option func(*MarketplaceSource)

func WithFetcher(f Fetcher) Option {
	return func(s *MarketplaceSource) {
		s.fetcher = f
	}
}

func WithBaseURL(baseURL string) Option {
	return func(s *MarketplaceSource) {
		s.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

func WithVerifiedMarker(marker string) Option {
	return func(s *MarketplaceSource) {
		s.verifiedMarker = marker
	}
}

func WithPartnerAttestation(text string) Option {
	return func(s *MarketplaceSource) {
		s.partnerAttestation = text
	}
}

func NewMarketplaceSource(opts ...Option) *MarketplaceSource {
	s := &MarketplaceSource{
		baseURL:            DefaultBaseURL,
		verifiedMarker:     DefaultVerifiedMarker,
		partnerAttestation: DefaultPartnerAttestation,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.fetcher == nil {
		s.fetcher = NewHTTPFetcher(nil, DefaultTimeout)
	}
	s.absoluteListing = regexp.MustCompile(`href="(` + regexp.QuoteMeta(s.baseURL) + `/marketplace/actions/[^"]+)"`)
	return s
}

func (s *MarketplaceSource) Verify(ctx context.Context, owner, action string) (bool, error) {
	repoURL := s.baseURL + "/" + owner
	if action != "" {
		repoURL += "/" + action
	}

	repoPage, err := s.get(ctx, repoURL)
	if err != nil {
		return false, fmt.Errorf("fetching repository page: %w", err)
	}

	listingURL, ok := s.listingURL(repoPage)
	if !ok {
		return false, nil
	}

	listing, err := s.get(ctx, listingURL)
	if err != nil {
		return false, fmt.Errorf("fetching marketplace page: %w", err)
	}

	return s.hasVerification(listing, owner), nil
}

func (s *MarketplaceSource) get(ctx context.Context, url string) (string, error) {
	status, body, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("%w: %s: HTTP %d", ErrUnexpectedStatus, url, status)
	}
	return body, nil
}

func (s *MarketplaceSource) listingURL(page string) (string, bool) {
	if m := s.absoluteListing.FindStringSubmatch(page); m != nil {
		return m[1], true
	}
	if m := relativeListingPattern.FindStringSubmatch(page); m != nil {
		return s.baseURL + m[1], true
	}
	return "", false
}

// hasVerification requires the badge, the attestation sentence and a link
// back to the owner's organization.
func (s *MarketplaceSource) hasVerification(page, owner string) bool {
	if !strings.Contains(page, s.verifiedMarker) {
		return false
	}
	if !strings.Contains(page, s.partnerAttestation) {
		return false
	}
	return hasOwnerLink(page, owner)
}

func hasOwnerLink(page, owner string) bool {
	if owner == "" {
		return false
	}
	variants := []string{owner, strings.ToLower(owner), strings.ToUpper(owner), capitalize(owner)}
	for _, o := range variants {
		patterns := []string{
			"https://github.com/" + o,
			"/" + o,
			`href="/` + o + `"`,
			"[" + o + "](/" + o + ")",
			"github.com/" + o,
		}
		for _, p := range patterns {
			if strings.Contains(page, p) {
				return true
			}
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
