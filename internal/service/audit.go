package service

import (
	"context"
	"iter"

	"golang.org/x/sync/errgroup"

	"github.com/tracker-tv/github-actions-auditor/internal/pin"
	"github.com/tracker-tv/github-actions-auditor/internal/policy"
	"github.com/tracker-tv/github-actions-auditor/models"
)

type TrustVerifier interface {
	IsVerified(ctx context.Context, owner, action string) bool
}

type AuditService interface {
	Audit(ctx context.Context, refs iter.Seq[models.ActionReference]) *models.AuditResult
}

type auditService struct {
	rules       policy.Rules
	trust       TrustVerifier
	concurrency int
}

// NewAuditService builds the verdict aggregator. With concurrency > 1,
// trust lookups for different references run in parallel; verdicts are
// still returned in encounter order.
func NewAuditService(rules policy.Rules, trust TrustVerifier, concurrency int) AuditService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &auditService{rules: rules, trust: trust, concurrency: concurrency}
}

func (s *auditService) Audit(ctx context.Context, refs iter.Seq[models.ActionReference]) *models.AuditResult {
	result := &models.AuditResult{Verdicts: []models.VerdictRecord{}}

	if s.concurrency == 1 {
		for ref := range refs {
			if !ref.Auditable() {
				continue
			}
			verified := s.trust.IsVerified(ctx, ref.Owner(), ref.Name())
			add(result, s.verdict(ref, verified))
		}
		return result
	}

	var auditable []models.ActionReference
	for ref := range refs {
		if ref.Auditable() {
			auditable = append(auditable, ref)
		}
	}

	verified := make([]bool, len(auditable))
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, ref := range auditable {
		g.Go(func() error {
			verified[i] = s.trust.IsVerified(ctx, ref.Owner(), ref.Name())
			return nil
		})
	}
	_ = g.Wait()

	for i, ref := range auditable {
		add(result, s.verdict(ref, verified[i]))
	}
	return result
}

func (s *auditService) verdict(ref models.ActionReference, verified bool) models.VerdictRecord {
	v := models.VerdictRecord{
		Reference: ref,
		Allowed:   s.rules.Allowed(ref.ActionPath),
		Pinned:    pin.IsCommitPin(ref.Version),
		Verified:  verified,
		Issues:    []models.IssueKind{},
	}

	if !v.Allowed {
		v.Issues = append(v.Issues, models.IssuePolicyBlocked)
	}
	if !v.Verified {
		v.Issues = append(v.Issues, models.IssueUnverifiedPublisher)
	}
	if !v.Pinned {
		v.Issues = append(v.Issues, models.IssueUnpinnedVersion)
	}

	return v
}

func add(result *models.AuditResult, v models.VerdictRecord) {
	if !v.Passed() {
		result.ExitCode = 1
	}
	result.Verdicts = append(result.Verdicts, v)
}
