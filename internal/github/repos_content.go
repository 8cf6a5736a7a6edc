package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
)

func (c *client) GetContentsRaw(ctx context.Context, owner, repo, path, ref string) (*gh.RepositoryContent, []*gh.RepositoryContent, *gh.Response, error) {
	opts := &gh.RepositoryContentGetOptions{Ref: ref}
	return c.repositories.GetContents(ctx, owner, repo, path, opts)
}
