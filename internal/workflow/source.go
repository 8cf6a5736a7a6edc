package workflow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/tracker-tv/github-actions-auditor/models"
)

const workflowPattern = "**/*.{yml,yaml}"

// LocalSource reads workflow files from a directory tree.
type LocalSource struct {
	dir    string
	logger *zap.Logger
}

func NewLocalSource(dir string, logger *zap.Logger) *LocalSource {
	return &LocalSource{dir: dir, logger: logger}
}

func (s *LocalSource) List(ctx context.Context) ([]*models.WorkflowFile, error) {
	info, err := os.Stat(s.dir)
	if err != nil || !info.IsDir() {
		s.logger.Warn("workflows directory not found", zap.String("dir", s.dir))
		return nil, nil
	}

	matches, err := doublestar.Glob(os.DirFS(s.dir), workflowPattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", s.dir, err)
	}
	sort.Strings(matches)

	files := make([]*models.WorkflowFile, 0, len(matches))
	for _, m := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(s.dir, filepath.FromSlash(m))
		data, err := os.ReadFile(path)
		if err != nil {
			s.logger.Warn("could not read workflow", zap.String("file", path), zap.Error(err))
			continue
		}

		files = append(files, &models.WorkflowFile{
			Name:    filepath.Base(path),
			Path:    path,
			Content: string(data),
		})
	}

	return files, nil
}
