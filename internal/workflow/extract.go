package workflow

import (
	"iter"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/tracker-tv/github-actions-auditor/models"
)

// A `uses:` value, optionally wrapped in matching quotes. Exactly one of the
// three groups is set on a match.
var usesPattern = regexp.MustCompile(
	`uses:\s*(?:'([^@\s'"#]+@[^\s'"#]+)'|"([^@\s'"#]+@[^\s'"#]+)"|([^@\s'"#]+@[^\s'"#]+))`,
)

// Extract yields the remote action references found in content, one per
// matching line, in line order. Local actions ("./...") are skipped. The
// document is also parsed as YAML; a parse failure is logged but does not
// stop the line scan.
func Extract(file, content string, logger *zap.Logger) iter.Seq[models.ActionReference] {
	return func(yield func(models.ActionReference) bool) {
		var doc yaml.Node
		if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
			logger.Warn("could not parse workflow",
				zap.String("file", file),
				zap.Error(err),
			)
		}

		for i, line := range strings.Split(content, "\n") {
			action, ok := matchUses(line)
			if !ok || strings.HasPrefix(action, "./") {
				continue
			}

			ref := models.NewActionReference(file, i+1, strings.TrimSpace(line), action)
			if !yield(ref) {
				return
			}
		}
	}
}

// ExtractAll chains Extract over files in order.
func ExtractAll(files []*models.WorkflowFile, logger *zap.Logger) iter.Seq[models.ActionReference] {
	return func(yield func(models.ActionReference) bool) {
		for _, f := range files {
			if f == nil {
				continue
			}
			for ref := range Extract(f.Path, f.Content, logger) {
				if !yield(ref) {
					return
				}
			}
		}
	}
}

func matchUses(line string) (string, bool) {
	m := usesPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	for _, g := range m[1:] {
		if g != "" {
			return strings.TrimSpace(g), true
		}
	}
	return "", false
}
