package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tracker-tv/github-actions-auditor/models"
)

type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

var runnerPrefixes = []string{"/home/runner/work/", "/github/workspace/"}

type Renderer struct {
	prefixes []string
}

// NewRenderer strips the runner workspace prefixes, and workDir, from
// displayed file paths. An empty workDir falls back to the current
// directory.
func NewRenderer(workDir string) *Renderer {
	if workDir == "" {
		workDir, _ = os.Getwd()
	}

	prefixes := append([]string{}, runnerPrefixes...)
	if workDir != "" {
		prefixes = append(prefixes, strings.TrimSuffix(workDir, "/")+"/")
	}
	return &Renderer{prefixes: prefixes}
}

func (r *Renderer) Render(w io.Writer, result *models.AuditResult, format Format) error {
	switch format {
	case FormatJSON:
		return r.JSON(w, result)
	case FormatMarkdown, "":
		_, err := io.WriteString(w, r.Markdown(result))
		return err
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func (r *Renderer) displayPath(path string) string {
	for _, p := range r.prefixes {
		if strings.HasPrefix(path, p) {
			return path[len(p):]
		}
	}
	return path
}

func (r *Renderer) Markdown(result *models.AuditResult) string {
	var b strings.Builder
	total := len(result.Verdicts)

	b.WriteString("# GitHub Actions Security Audit Report\n\n")
	if result.ExitCode == 0 {
		b.WriteString("## ✅ All checks passed!\n\n")
	} else {
		b.WriteString("## ❌ Security issues found!\n\n")
	}

	fmt.Fprintf(&b, "**Total actions audited:** %d\n", total)
	fmt.Fprintf(&b, "**Verified publishers:** %d/%d\n", result.VerifiedCount(), total)
	fmt.Fprintf(&b, "**Commit hash pinned:** %d/%d\n", result.PinnedCount(), total)
	fmt.Fprintf(&b, "**Allowed by whitelist/blacklist:** %d/%d\n", result.AllowedCount(), total)
	fmt.Fprintf(&b, "**Failed checks:** %d\n\n", result.FailedCount())

	b.WriteString("## Detailed Results\n\n")
	for _, v := range result.Verdicts {
		ref := v.Reference
		fmt.Fprintf(&b, "### %s %s\n", status(v), ref.Action)
		fmt.Fprintf(&b, "- **File:** %s:%d\n", r.displayPath(ref.File), ref.Line)
		fmt.Fprintf(&b, "- **Owner:** %s\n", ref.Owner())
		fmt.Fprintf(&b, "- **Version:** %s\n", ref.Version)
		fmt.Fprintf(&b, "- **Verified Publisher:** %s\n", mark(v.Verified))
		fmt.Fprintf(&b, "- **Pinned to Hash:** %s\n", mark(v.Pinned))
		fmt.Fprintf(&b, "- **Allowed by Rules:** %s\n", mark(v.Allowed))
		if len(v.Issues) > 0 {
			descriptions := make([]string, 0, len(v.Issues))
			for _, issue := range v.Issues {
				descriptions = append(descriptions, issue.Description())
			}
			fmt.Fprintf(&b, "- **Issues:** %s\n", strings.Join(descriptions, ", "))
		}
		b.WriteString("\n")
	}

	if result.ExitCode != 0 {
		b.WriteString("## 🔧 Recommendations\n\n")
		b.WriteString("1. **Pin to commit hashes:** Use specific commit SHA instead of tags\n")
		b.WriteString("2. **Use verified publishers:** Only use actions from trusted sources\n\n")
		b.WriteString("Example of secure action usage:\n")
		b.WriteString("```yaml\n")
		b.WriteString("- name: Checkout\n")
		b.WriteString("  uses: actions/checkout@b4ffde65f46336ab88eb53be808477a3936bae11  # v4.1.1\n")
		b.WriteString("```\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

type jsonEntry struct {
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Action   string   `json:"action"`
	Owner    string   `json:"owner"`
	Version  string   `json:"version"`
	Verified bool     `json:"is_verified"`
	Pinned   bool     `json:"is_pinned_to_hash"`
	Allowed  bool     `json:"is_action_allowed"`
	Status   string   `json:"status"`
	Issues   []string `json:"issues"`
}

type jsonReport struct {
	ExitCode int         `json:"exit_code"`
	Results  []jsonEntry `json:"results"`
}

func (r *Renderer) JSON(w io.Writer, result *models.AuditResult) error {
	out := jsonReport{ExitCode: result.ExitCode, Results: make([]jsonEntry, 0, len(result.Verdicts))}
	for _, v := range result.Verdicts {
		issues := make([]string, 0, len(v.Issues))
		for _, issue := range v.Issues {
			issues = append(issues, string(issue))
		}
		out.Results = append(out.Results, jsonEntry{
			File:     r.displayPath(v.Reference.File),
			Line:     v.Reference.Line,
			Action:   v.Reference.Action,
			Owner:    v.Reference.Owner(),
			Version:  v.Reference.Version,
			Verified: v.Verified,
			Pinned:   v.Pinned,
			Allowed:  v.Allowed,
			Status:   statusWord(v),
			Issues:   issues,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// WriteFile writes the rendered report to path. When appendTo is true the
// report is appended, as GitHub expects for the step summary file.
func (r *Renderer) WriteFile(path string, result *models.AuditResult, format Format, appendTo bool) error {
	return writeFile(path, appendTo, func(w io.Writer) error {
		if err := r.Render(w, result, format); err != nil {
			return err
		}
		if format != FormatJSON {
			_, err := io.WriteString(w, "\n")
			return err
		}
		return nil
	})
}

// WriteOutputs appends the markdown report and the exit code to a GitHub
// Actions output file as the "report" and "exit_code" outputs.
func (r *Renderer) WriteOutputs(path string, result *models.AuditResult) error {
	return writeFile(path, true, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "report<<%s\n%s\n%s\nexit_code=%d\n",
			outputDelimiter, r.Markdown(result), outputDelimiter, result.ExitCode)
		return err
	})
}

const outputDelimiter = "EOF"

func writeFile(path string, appendTo bool, write func(io.Writer) error) (err error) {
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if appendTo {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func status(v models.VerdictRecord) string {
	if v.Passed() {
		return "✅ PASS"
	}
	return "❌ FAIL"
}

func statusWord(v models.VerdictRecord) string {
	if v.Passed() {
		return "pass"
	}
	return "fail"
}

func mark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}
