package service

import (
	"context"
	"fmt"
	"path"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/tracker-tv/github-actions-auditor/internal/github"
	"github.com/tracker-tv/github-actions-auditor/models"
)

const (
	workflowsDir = ".github/workflows"
	workflowGlob = workflowsDir + "/**/*.{yml,yaml}"
)

type WorkflowService interface {
	List(ctx context.Context) ([]*models.WorkflowFile, error)
}

type workflowService struct {
	gh     github.Client
	repo   models.Repository
	ref    string
	logger *zap.Logger
}

// NewWorkflowService lists the workflow files of a remote repository at ref.
func NewWorkflowService(ghClient github.Client, repo models.Repository, ref string, logger *zap.Logger) WorkflowService {
	if ref == "" {
		ref = "HEAD"
	}
	return &workflowService{gh: ghClient, repo: repo, ref: ref, logger: logger}
}

func (s *workflowService) List(ctx context.Context) ([]*models.WorkflowFile, error) {
	paths, err := s.workflowPaths(ctx)
	if err != nil {
		return nil, err
	}

	var files []*models.WorkflowFile
	for _, filePath := range paths {
		content, _, err := s.gh.GetFileContent(ctx, s.repo.Owner, s.repo.Name, filePath, s.contentRef())
		if err != nil {
			s.logger.Warn("could not fetch workflow",
				zap.String("repository", s.repo.FullName()),
				zap.String("file", filePath),
				zap.Error(err),
			)
			continue
		}

		files = append(files, &models.WorkflowFile{
			Name:    path.Base(filePath),
			Path:    filePath,
			Content: content,
		})
	}

	return files, nil
}

// contentRef maps HEAD to the empty ref, which the contents API resolves to
// the default branch.
func (s *workflowService) contentRef() string {
	if s.ref == "HEAD" {
		return ""
	}
	return s.ref
}

func (s *workflowService) workflowPaths(ctx context.Context) ([]string, error) {
	tree, _, err := s.gh.GetTree(ctx, s.repo.Owner, s.repo.Name, s.ref, true)
	if err != nil {
		return nil, fmt.Errorf("getting tree of %s@%s: %w", s.repo.FullName(), s.ref, err)
	}

	if tree.GetTruncated() {
		s.logger.Warn("repository tree truncated, listing workflows directory",
			zap.String("repository", s.repo.FullName()),
		)
		return s.walkContents(ctx, workflowsDir)
	}

	var paths []string
	for _, entry := range tree.Entries {
		if entry.GetType() != "blob" {
			continue
		}
		ok, err := matchWorkflow(entry.GetPath())
		if err != nil {
			return nil, err
		}
		if ok {
			paths = append(paths, entry.GetPath())
		}
	}
	return paths, nil
}

func (s *workflowService) walkContents(ctx context.Context, dir string) ([]string, error) {
	_, entries, _, err := s.gh.GetContentsRaw(ctx, s.repo.Owner, s.repo.Name, dir, s.contentRef())
	if err != nil {
		return nil, fmt.Errorf("listing %s in %s: %w", dir, s.repo.FullName(), err)
	}

	var paths []string
	for _, entry := range entries {
		switch entry.GetType() {
		case "dir":
			sub, err := s.walkContents(ctx, entry.GetPath())
			if err != nil {
				return nil, err
			}
			paths = append(paths, sub...)
		case "file":
			ok, err := matchWorkflow(entry.GetPath())
			if err != nil {
				return nil, err
			}
			if ok {
				paths = append(paths, entry.GetPath())
			}
		}
	}
	return paths, nil
}

func matchWorkflow(filePath string) (bool, error) {
	matched, err := doublestar.Match(workflowGlob, filePath)
	if err != nil {
		return false, fmt.Errorf("matching %s: %w", filePath, err)
	}
	return matched, nil
}
