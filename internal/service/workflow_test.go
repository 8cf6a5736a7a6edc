package service

import (
	"context"
	"errors"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	githubMocks "github.com/tracker-tv/github-actions-auditor/internal/github/mocks"
	"github.com/tracker-tv/github-actions-auditor/models"
)

var testRepo = models.Repository{Owner: "tracker-tv", Name: "api"}

func TestNewWorkflowService(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)

	svc := NewWorkflowService(mockClient, testRepo, "", zap.NewNop())

	assert.NotNil(t, svc)
	assert.Implements(t, (*WorkflowService)(nil), svc)
	assert.Equal(t, "HEAD", svc.(*workflowService).ref)
}

func TestList_MatchesWorkflowFiles(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	tree := &gh.Tree{
		Entries: []*gh.TreeEntry{
			{Path: gh.Ptr(".github"), Type: gh.Ptr("tree")},
			{Path: gh.Ptr(".github/workflows"), Type: gh.Ptr("tree")},
			{Path: gh.Ptr(".github/workflows/ci.yml"), Type: gh.Ptr("blob")},
			{Path: gh.Ptr(".github/workflows/nested/release.yaml"), Type: gh.Ptr("blob")},
			{Path: gh.Ptr(".github/workflows/README.md"), Type: gh.Ptr("blob")},
			{Path: gh.Ptr(".github/dependabot.yml"), Type: gh.Ptr("blob")},
			{Path: gh.Ptr("main.go"), Type: gh.Ptr("blob")},
		},
	}

	mockClient.
		EXPECT().
		GetTree(mock.Anything, "tracker-tv", "api", "HEAD", true).
		Once().
		Return(tree, &gh.Response{}, nil)

	mockClient.
		EXPECT().
		GetFileContent(mock.Anything, "tracker-tv", "api", ".github/workflows/ci.yml", "").
		Once().
		Return("name: ci", "sha1", nil)

	mockClient.
		EXPECT().
		GetFileContent(mock.Anything, "tracker-tv", "api", ".github/workflows/nested/release.yaml", "").
		Once().
		Return("name: release", "sha2", nil)

	svc := NewWorkflowService(mockClient, testRepo, "HEAD", zap.NewNop())
	files, err := svc.List(ctx)

	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "ci.yml", files[0].Name)
	assert.Equal(t, ".github/workflows/ci.yml", files[0].Path)
	assert.Equal(t, "name: ci", files[0].Content)
	assert.Equal(t, "release.yaml", files[1].Name)
}

func TestList_ExplicitRef(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	tree := &gh.Tree{
		Entries: []*gh.TreeEntry{
			{Path: gh.Ptr(".github/workflows/ci.yml"), Type: gh.Ptr("blob")},
		},
	}

	mockClient.
		EXPECT().
		GetTree(mock.Anything, "tracker-tv", "api", "v1.2.0", true).
		Once().
		Return(tree, &gh.Response{}, nil)

	mockClient.
		EXPECT().
		GetFileContent(mock.Anything, "tracker-tv", "api", ".github/workflows/ci.yml", "v1.2.0").
		Once().
		Return("name: ci", "sha1", nil)

	files, err := NewWorkflowService(mockClient, testRepo, "v1.2.0", zap.NewNop()).List(ctx)

	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestList_TreeError(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		GetTree(mock.Anything, "tracker-tv", "api", "HEAD", true).
		Once().
		Return(nil, nil, errors.New("repository not found"))

	files, err := NewWorkflowService(mockClient, testRepo, "HEAD", zap.NewNop()).List(ctx)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "tracker-tv/api@HEAD")
	assert.Nil(t, files)
}

func TestList_SkipsUnreadableFile(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)
	core, logs := observer.New(zapcore.WarnLevel)

	tree := &gh.Tree{
		Entries: []*gh.TreeEntry{
			{Path: gh.Ptr(".github/workflows/broken.yml"), Type: gh.Ptr("blob")},
			{Path: gh.Ptr(".github/workflows/ci.yml"), Type: gh.Ptr("blob")},
		},
	}

	mockClient.
		EXPECT().
		GetTree(mock.Anything, "tracker-tv", "api", "HEAD", true).
		Once().
		Return(tree, &gh.Response{}, nil)

	mockClient.
		EXPECT().
		GetFileContent(mock.Anything, "tracker-tv", "api", ".github/workflows/broken.yml", "").
		Once().
		Return("", "", errors.New("too large"))

	mockClient.
		EXPECT().
		GetFileContent(mock.Anything, "tracker-tv", "api", ".github/workflows/ci.yml", "").
		Once().
		Return("name: ci", "sha1", nil)

	files, err := NewWorkflowService(mockClient, testRepo, "HEAD", zap.New(core)).List(ctx)

	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "ci.yml", files[0].Name)
	assert.Equal(t, 1, logs.FilterMessage("could not fetch workflow").Len())
}

func TestList_TruncatedTreeWalksWorkflowsDirectory(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)
	core, logs := observer.New(zapcore.WarnLevel)

	tree := &gh.Tree{
		Truncated: gh.Ptr(true),
		Entries: []*gh.TreeEntry{
			{Path: gh.Ptr("main.go"), Type: gh.Ptr("blob")},
		},
	}

	mockClient.
		EXPECT().
		GetTree(mock.Anything, "tracker-tv", "api", "main", true).
		Once().
		Return(tree, &gh.Response{}, nil)

	mockClient.
		EXPECT().
		GetContentsRaw(mock.Anything, "tracker-tv", "api", ".github/workflows", "main").
		Once().
		Return(nil, []*gh.RepositoryContent{
			{Path: gh.Ptr(".github/workflows/ci.yml"), Type: gh.Ptr("file")},
			{Path: gh.Ptr(".github/workflows/README.md"), Type: gh.Ptr("file")},
			{Path: gh.Ptr(".github/workflows/nested"), Type: gh.Ptr("dir")},
		}, &gh.Response{}, nil)

	mockClient.
		EXPECT().
		GetContentsRaw(mock.Anything, "tracker-tv", "api", ".github/workflows/nested", "main").
		Once().
		Return(nil, []*gh.RepositoryContent{
			{Path: gh.Ptr(".github/workflows/nested/deploy.yaml"), Type: gh.Ptr("file")},
		}, &gh.Response{}, nil)

	mockClient.
		EXPECT().
		GetFileContent(mock.Anything, "tracker-tv", "api", ".github/workflows/ci.yml", "main").
		Once().
		Return("name: ci", "sha1", nil)

	mockClient.
		EXPECT().
		GetFileContent(mock.Anything, "tracker-tv", "api", ".github/workflows/nested/deploy.yaml", "main").
		Once().
		Return("name: deploy", "sha2", nil)

	files, err := NewWorkflowService(mockClient, testRepo, "main", zap.New(core)).List(ctx)

	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, ".github/workflows/ci.yml", files[0].Path)
	assert.Equal(t, ".github/workflows/nested/deploy.yaml", files[1].Path)
	assert.Equal(t, 1, logs.FilterMessage("repository tree truncated, listing workflows directory").Len())
}

func TestList_TruncatedTreeListingError(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		GetTree(mock.Anything, "tracker-tv", "api", "HEAD", true).
		Once().
		Return(&gh.Tree{Truncated: gh.Ptr(true)}, &gh.Response{}, nil)

	mockClient.
		EXPECT().
		GetContentsRaw(mock.Anything, "tracker-tv", "api", ".github/workflows", "").
		Once().
		Return(nil, nil, nil, errors.New("not found"))

	files, err := NewWorkflowService(mockClient, testRepo, "HEAD", zap.NewNop()).List(ctx)

	assert.Error(t, err)
	assert.Nil(t, files)
}
