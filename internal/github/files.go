package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"
)

func (c *client) GetFileContent(ctx context.Context, owner, repo, path, ref string) (string, string, error) {
	opts := &gh.RepositoryContentGetOptions{Ref: ref}
	content, _, _, err := c.repositories.GetContents(ctx, owner, repo, path, opts)
	if err != nil {
		return "", "", err
	}
	if content == nil {
		return "", "", fmt.Errorf("%s is not a file", path)
	}
	decoded, err := content.GetContent()
	if err != nil {
		return "", "", err
	}
	return decoded, content.GetSHA(), nil
}
