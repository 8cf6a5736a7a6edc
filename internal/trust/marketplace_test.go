package trust

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const verifiedListing = `<html><body>
<span class="badge">Verified</span>
<p>GitHub has manually verified the creator of the action as an official partner organization.</p>
<a href="/actions">actions</a>
</body></html>`

type marketplaceServer struct {
	*httptest.Server
	hits atomic.Int32
}

func newMarketplaceServer(t *testing.T, routes map[string]func(w http.ResponseWriter, r *http.Request)) *marketplaceServer {
	t.Helper()
	s := &marketplaceServer{}
	mux := http.NewServeMux()
	for path, h := range routes {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			s.hits.Add(1)
			h(w, r)
		})
	}
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

func page(body string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, body)
	}
}

func status(code int) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
	}
}

func newTestSource(server *marketplaceServer, opts ...Option) *MarketplaceSource {
	base := []Option{
		WithBaseURL(server.URL),
		WithFetcher(NewHTTPFetcher(server.Client(), time.Second)),
	}
	return NewMarketplaceSource(append(base, opts...)...)
}

func TestMarketplaceSource_VerifiedViaRelativeLink(t *testing.T) {
	server := newMarketplaceServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"/actions/checkout":             page(`<a href="/marketplace/actions/checkout">View on Marketplace</a>`),
		"/marketplace/actions/checkout": page(verifiedListing),
	})

	ok, err := newTestSource(server).Verify(context.Background(), "actions", "checkout")

	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int32(2), server.hits.Load())
}

func TestMarketplaceSource_VerifiedViaAbsoluteLink(t *testing.T) {
	var server *marketplaceServer
	server = newMarketplaceServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"/actions/setup-go": func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<a href="%s/marketplace/actions/setup-go-environment">Marketplace</a>`, server.URL)
		},
		"/marketplace/actions/setup-go-environment": page(verifiedListing),
	})

	ok, err := newTestSource(server).Verify(context.Background(), "actions", "setup-go")

	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestMarketplaceSource_OwnerOnlyURL(t *testing.T) {
	server := newMarketplaceServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"/actions":                      page(`<a href="/marketplace/actions/checkout">x</a>`),
		"/marketplace/actions/checkout": page(verifiedListing),
	})

	ok, err := newTestSource(server).Verify(context.Background(), "actions", "")

	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestMarketplaceSource_RepositoryPageNotFound(t *testing.T) {
	server := newMarketplaceServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"/ghost/action": status(http.StatusNotFound),
	})

	ok, err := newTestSource(server).Verify(context.Background(), "ghost", "action")

	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestMarketplaceSource_NoMarketplaceLink(t *testing.T) {
	server := newMarketplaceServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"/someone/tool": page(`<html>no listing here</html>`),
	})

	ok, err := newTestSource(server).Verify(context.Background(), "someone", "tool")

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int32(1), server.hits.Load())
}

func TestMarketplaceSource_ListingError(t *testing.T) {
	server := newMarketplaceServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"/actions/checkout":             page(`<a href="/marketplace/actions/checkout">x</a>`),
		"/marketplace/actions/checkout": status(http.StatusInternalServerError),
	})

	ok, err := newTestSource(server).Verify(context.Background(), "actions", "checkout")

	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestMarketplaceSource_MarkerWithoutAttestation(t *testing.T) {
	server := newMarketplaceServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"/actions/checkout":             page(`<a href="/marketplace/actions/checkout">x</a>`),
		"/marketplace/actions/checkout": page(`<span>Verified</span><a href="/actions">actions</a>`),
	})

	ok, err := newTestSource(server).Verify(context.Background(), "actions", "checkout")

	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestMarketplaceSource_AttestationWithoutOwnerLink(t *testing.T) {
	listing := `<span>Verified</span>
<p>GitHub has manually verified the creator of the action as an official partner organization.</p>
<a href="/someone-else">someone-else</a>`

	server := newMarketplaceServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"/acme/deploy":                page(`<a href="/marketplace/actions/deploy">x</a>`),
		"/marketplace/actions/deploy": page(listing),
	})

	ok, err := newTestSource(server).Verify(context.Background(), "acme", "deploy")

	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestMarketplaceSource_CustomMarkers(t *testing.T) {
	listing := `<b>Trusted</b> Partner approved. <a href="https://github.com/acme">acme</a>`

	server := newMarketplaceServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"/acme/deploy":                page(`<a href="/marketplace/actions/deploy">x</a>`),
		"/marketplace/actions/deploy": page(listing),
	})

	src := newTestSource(server, WithVerifiedMarker("Trusted"), WithPartnerAttestation("Partner approved."))
	ok, err := src.Verify(context.Background(), "acme", "deploy")

	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestMarketplaceSource_Timeout(t *testing.T) {
	server := newMarketplaceServer(t, map[string]func(http.ResponseWriter, *http.Request){
		"/slow/action": func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(time.Second):
			case <-r.Context().Done():
			}
		},
	})

	src := NewMarketplaceSource(
		WithBaseURL(server.URL),
		WithFetcher(NewHTTPFetcher(server.Client(), 20*time.Millisecond)),
	)

	start := time.Now()
	ok, err := src.Verify(context.Background(), "slow", "action")

	assert.False(t, ok)
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestHTTPFetcher_SetsUserAgent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusTeapot)
		fmt.Fprint(w, "body")
	}))
	defer server.Close()

	code, body, err := NewHTTPFetcher(nil, 0).Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, code)
	assert.Equal(t, "body", body)
}

func TestHasOwnerLink(t *testing.T) {
	tests := []struct {
		name  string
		page  string
		owner string
		want  bool
	}{
		{name: "absolute url", page: `see https://github.com/docker for more`, owner: "docker", want: true},
		{name: "root relative", page: `<a class="x" href='/docker'>`, owner: "docker", want: true},
		{name: "html attribute", page: `<a href="/docker">`, owner: "docker", want: true},
		{name: "markdown link", page: `[docker](/docker)`, owner: "docker", want: true},
		{name: "protocol-less", page: `github.com/docker`, owner: "docker", want: true},
		{name: "lowercase variant", page: `https://github.com/docker`, owner: "Docker", want: true},
		{name: "uppercase variant", page: `https://github.com/AWS`, owner: "aws", want: true},
		{name: "capitalized variant", page: `https://github.com/Azure`, owner: "azure", want: true},
		{name: "mixed case not covered", page: `https://github.com/HashiCorp`, owner: "hashicorp", want: false},
		{name: "absent", page: `<a href="/other">`, owner: "docker", want: false},
		{name: "empty owner", page: `/anything`, owner: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasOwnerLink(tt.page, tt.owner))
		})
	}
}
