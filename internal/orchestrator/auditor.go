package orchestrator

import (
	"context"
	"fmt"
	"iter"

	"go.uber.org/zap"

	"github.com/tracker-tv/github-actions-auditor/internal/service"
	"github.com/tracker-tv/github-actions-auditor/internal/workflow"
	"github.com/tracker-tv/github-actions-auditor/models"
)

type WorkflowSource interface {
	List(ctx context.Context) ([]*models.WorkflowFile, error)
}

type Auditor struct {
	source WorkflowSource
	audit  service.AuditService
	logger *zap.Logger
}

func NewAuditor(source WorkflowSource, audit service.AuditService, logger *zap.Logger) *Auditor {
	return &Auditor{source: source, audit: audit, logger: logger}
}

func (a *Auditor) Run(ctx context.Context) (*models.AuditResult, error) {
	files, err := a.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing workflows: %w", err)
	}
	a.logger.Info("found workflow files", zap.Int("count", len(files)))

	refs := counted(workflow.ExtractAll(files, a.logger), func(n int) {
		a.logger.Info("found external action references", zap.Int("count", n))
	})

	result := a.audit.Audit(ctx, refs)

	a.logger.Info("audit finished",
		zap.Int("audited", len(result.Verdicts)),
		zap.Int("failed", result.FailedCount()),
		zap.Int("exit_code", result.ExitCode),
	)
	return result, nil
}

// counted reports the number of yielded references once the sequence is
// fully consumed.
func counted(seq iter.Seq[models.ActionReference], done func(int)) iter.Seq[models.ActionReference] {
	return func(yield func(models.ActionReference) bool) {
		n := 0
		for ref := range seq {
			n++
			if !yield(ref) {
				return
			}
		}
		done(n)
	}
}
