package models

type IssueKind string

const (
	IssuePolicyBlocked       IssueKind = "policy-blocked"
	IssueUnverifiedPublisher IssueKind = "unverified-publisher"
	IssueUnpinnedVersion     IssueKind = "unpinned-version"
)

func (k IssueKind) Description() string {
	switch k {
	case IssuePolicyBlocked:
		return "Blocked by whitelist/blacklist rules"
	case IssueUnverifiedPublisher:
		return "Not from verified publisher"
	case IssueUnpinnedVersion:
		return "Not pinned to commit hash"
	default:
		return string(k)
	}
}

type VerdictRecord struct {
	Reference ActionReference `json:"reference"`
	Allowed   bool            `json:"is_action_allowed"`
	Pinned    bool            `json:"is_pinned_to_hash"`
	Verified  bool            `json:"is_verified"`
	Issues    []IssueKind     `json:"issues"`
}

func (v VerdictRecord) Passed() bool {
	return len(v.Issues) == 0
}

type AuditResult struct {
	Verdicts []VerdictRecord `json:"verdicts"`
	ExitCode int             `json:"exit_code"`
}

func (r *AuditResult) VerifiedCount() int {
	return r.count(func(v VerdictRecord) bool { return v.Verified })
}

func (r *AuditResult) PinnedCount() int {
	return r.count(func(v VerdictRecord) bool { return v.Pinned })
}

func (r *AuditResult) AllowedCount() int {
	return r.count(func(v VerdictRecord) bool { return v.Allowed })
}

func (r *AuditResult) FailedCount() int {
	return r.count(func(v VerdictRecord) bool { return !v.Passed() })
}

func (r *AuditResult) count(pred func(VerdictRecord) bool) int {
	n := 0
	for _, v := range r.Verdicts {
		if pred(v) {
			n++
		}
	}
	return n
}
