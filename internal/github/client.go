package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
)

type RepositoriesAdapter interface {
	GetContents(ctx context.Context, owner, repo, path string, opts *gh.RepositoryContentGetOptions) (*gh.RepositoryContent, []*gh.RepositoryContent, *gh.Response, error)
}

type GitAdapter interface {
	GetTree(ctx context.Context, owner, repo, sha string, recursive bool) (*gh.Tree, *gh.Response, error)
}

type OrganizationsAdapter interface {
	Get(ctx context.Context, org string) (*gh.Organization, *gh.Response, error)
}

type Client interface {
	GetContentsRaw(ctx context.Context, owner, repo, path, ref string) (*gh.RepositoryContent, []*gh.RepositoryContent, *gh.Response, error)
	GetFileContent(ctx context.Context, owner, repo, path, ref string) (string, string, error)
	GetTree(ctx context.Context, owner, repo, sha string, recursive bool) (*gh.Tree, *gh.Response, error)
	GetOrganization(ctx context.Context, org string) (*gh.Organization, *gh.Response, error)
}

type client struct {
	repositories  RepositoriesAdapter
	git           GitAdapter
	organizations OrganizationsAdapter
	maxRetries    int
	baseDelay     time.Duration
}

type authTransport struct {
	token string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.token)
	return http.DefaultTransport.RoundTrip(req)
}

const defaultServerURL = "https://github.com"

// New builds a client for serverURL. Any server other than github.com is
// treated as GitHub Enterprise Server.
func New(token, serverURL string) (Client, error) {
	var httpClient *http.Client
	if token != "" {
		httpClient = &http.Client{
			Transport: &authTransport{
				token: token,
			},
		}
	}
	ghClient := gh.NewClient(httpClient)

	serverURL = strings.TrimSuffix(serverURL, "/")
	if serverURL != "" && serverURL != defaultServerURL {
		var err error
		ghClient, err = ghClient.WithEnterpriseURLs(serverURL+"/", serverURL+"/")
		if err != nil {
			return nil, fmt.Errorf("configuring enterprise server %s: %w", serverURL, err)
		}
	}

	return &client{
		repositories:  ghClient.Repositories,
		git:           ghClient.Git,
		organizations: ghClient.Organizations,
		maxRetries:    5,
		baseDelay:     1 * time.Second,
	}, nil
}
