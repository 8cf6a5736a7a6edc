package github

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	github "github.com/tracker-tv/github-actions-auditor/internal/github/mocks"
)

func TestGetFileContent_Success(t *testing.T) {
	ctx := context.Background()
	repoSvc := github.NewMockRepositoriesAdapter(t)

	fileContent := "name: test\non: push"
	encodedContent := base64.StdEncoding.EncodeToString([]byte(fileContent))

	repoSvc.
		EXPECT().
		GetContents(mock.Anything, "org-name", "repo-name", ".github/workflows/test.yml",
			mock.MatchedBy(func(opts *gh.RepositoryContentGetOptions) bool {
				return opts.Ref == "main"
			}),
		).
		Once().
		Return(
			&gh.RepositoryContent{
				Content:  gh.Ptr(encodedContent),
				Encoding: gh.Ptr("base64"),
				SHA:      gh.Ptr("abc123"),
			},
			nil,
			&gh.Response{},
			nil,
		)

	c := &client{repositories: repoSvc}

	content, sha, err := c.GetFileContent(ctx, "org-name", "repo-name", ".github/workflows/test.yml", "main")

	assert.NoError(t, err)
	assert.Equal(t, fileContent, content)
	assert.Equal(t, "abc123", sha)
}

func TestGetFileContent_NotFound(t *testing.T) {
	ctx := context.Background()
	repoSvc := github.NewMockRepositoriesAdapter(t)

	repoSvc.
		EXPECT().
		GetContents(mock.Anything, "org-name", "repo-name", ".github/workflows/test.yml", mock.Anything).
		Once().
		Return(nil, nil, nil, errors.New("not found"))

	c := &client{repositories: repoSvc}

	content, sha, err := c.GetFileContent(ctx, "org-name", "repo-name", ".github/workflows/test.yml", "main")

	assert.Error(t, err)
	assert.Empty(t, content)
	assert.Empty(t, sha)
}

func TestGetFileContent_Directory(t *testing.T) {
	ctx := context.Background()
	repoSvc := github.NewMockRepositoriesAdapter(t)

	repoSvc.
		EXPECT().
		GetContents(mock.Anything, "org-name", "repo-name", ".github/workflows", mock.Anything).
		Once().
		Return(nil, []*gh.RepositoryContent{{Name: gh.Ptr("ci.yml")}}, &gh.Response{}, nil)

	c := &client{repositories: repoSvc}

	content, _, err := c.GetFileContent(ctx, "org-name", "repo-name", ".github/workflows", "main")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "is not a file")
	assert.Empty(t, content)
}
