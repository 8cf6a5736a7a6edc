package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tracker-tv/github-actions-auditor/internal/config"
	"github.com/tracker-tv/github-actions-auditor/internal/github"
	"github.com/tracker-tv/github-actions-auditor/internal/logging"
	"github.com/tracker-tv/github-actions-auditor/internal/orchestrator"
	"github.com/tracker-tv/github-actions-auditor/internal/policy"
	"github.com/tracker-tv/github-actions-auditor/internal/report"
	"github.com/tracker-tv/github-actions-auditor/internal/service"
	"github.com/tracker-tv/github-actions-auditor/internal/trust"
	"github.com/tracker-tv/github-actions-auditor/internal/workflow"
	"github.com/tracker-tv/github-actions-auditor/models"
)

var (
	flagWhitelist   string
	flagBlacklist   string
	flagRemote      string
	flagRef         string
	flagTrustSource string
	flagConcurrency int
	flagFormat      string
	flagReportFile  string

	exitCode int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "auditor [workflows-dir]",
		Short:         "Audit GitHub Actions references in workflow files",
		Long:          "Scans workflow files for external action references and checks each against the whitelist/blacklist, commit pinning and publisher verification.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runAudit,
	}

	rootCmd.Flags().StringVar(&flagWhitelist, "whitelist", "", "allowed action patterns (env: WHITELIST)")
	rootCmd.Flags().StringVar(&flagBlacklist, "blacklist", "", "denied action patterns (env: BLACKLIST)")
	rootCmd.Flags().StringVar(&flagRemote, "remote", "", "audit owner/repo through the GitHub API instead of a local directory (env: REMOTE_REPOSITORY)")
	rootCmd.Flags().StringVar(&flagRef, "ref", "", "git ref for --remote (env: REMOTE_REF)")
	rootCmd.Flags().StringVar(&flagTrustSource, "trust-source", "", "publisher trust source: marketplace or api (env: TRUST_SOURCE)")
	rootCmd.Flags().IntVar(&flagConcurrency, "concurrency", 0, "parallel publisher lookups (env: TRUST_CONCURRENCY)")
	rootCmd.Flags().StringVar(&flagFormat, "format", "", "report format: markdown or json (env: REPORT_FORMAT)")
	rootCmd.Flags().StringVar(&flagReportFile, "report-file", "", "write the report to this file (env: REPORT_FILE)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	os.Exit(exitCode)
}

func runAudit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, cfg, args)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rules := policy.NewRules(cfg.Whitelist, cfg.Blacklist)
	logger.Info("loaded action rules",
		zap.Strings("whitelist", rules.Allow),
		zap.Strings("blacklist", rules.Deny),
	)

	ghClient, err := github.New(cfg.GithubToken, cfg.ServerURL)
	if err != nil {
		return err
	}

	source, err := workflowSource(cfg, ghClient, logger)
	if err != nil {
		return err
	}

	verifier := trust.NewVerifier(trustSource(cfg, ghClient), trust.NewCache(), logger)
	auditSvc := service.NewAuditService(rules, verifier, cfg.TrustConcurrency)

	result, err := orchestrator.NewAuditor(source, auditSvc, logger).Run(ctx)
	if err != nil {
		return err
	}

	renderer := report.NewRenderer(cfg.WorkDir)
	format := report.Format(cfg.ReportFormat)

	if err := renderer.Render(cmd.OutOrStdout(), result, format); err != nil {
		return err
	}
	if format != report.FormatJSON {
		fmt.Fprintln(cmd.OutOrStdout())
	}

	if cfg.ReportFile != "" {
		if err := renderer.WriteFile(cfg.ReportFile, result, format, false); err != nil {
			return err
		}
		logger.Info("report written", zap.String("path", cfg.ReportFile))
	}
	if cfg.StepSummary != "" {
		if err := renderer.WriteFile(cfg.StepSummary, result, report.FormatMarkdown, true); err != nil {
			logger.Warn("could not write step summary", zap.Error(err))
		}
	}
	if cfg.GithubOutput != "" {
		if err := renderer.WriteOutputs(cfg.GithubOutput, result); err != nil {
			return err
		}
	}

	exitCode = result.ExitCode
	return nil
}

// applyFlags lets explicitly set flags override the environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config, args []string) {
	if len(args) == 1 {
		cfg.WorkflowsDir = args[0]
	}

	flags := cmd.Flags()
	if flags.Changed("whitelist") {
		cfg.Whitelist = flagWhitelist
	}
	if flags.Changed("blacklist") {
		cfg.Blacklist = flagBlacklist
	}
	if flags.Changed("remote") {
		cfg.RemoteRepository = flagRemote
	}
	if flags.Changed("ref") {
		cfg.RemoteRef = flagRef
	}
	if flags.Changed("trust-source") {
		cfg.TrustSource = flagTrustSource
	}
	if flags.Changed("concurrency") {
		cfg.TrustConcurrency = flagConcurrency
	}
	if flags.Changed("format") {
		cfg.ReportFormat = flagFormat
	}
	if flags.Changed("report-file") {
		cfg.ReportFile = flagReportFile
	}
}

func workflowSource(cfg *config.Config, ghClient github.Client, logger *zap.Logger) (orchestrator.WorkflowSource, error) {
	if cfg.RemoteRepository == "" {
		return workflow.NewLocalSource(cfg.WorkflowsDir, logger), nil
	}

	repo, err := models.ParseRepository(cfg.RemoteRepository)
	if err != nil {
		return nil, err
	}
	return service.NewWorkflowService(ghClient, repo, cfg.RemoteRef, logger), nil
}

func trustSource(cfg *config.Config, ghClient github.Client) trust.PublisherTrustSource {
	if cfg.TrustSource == config.TrustSourceAPI {
		return trust.NewOrganizationSource(ghClient)
	}

	return trust.NewMarketplaceSource(
		trust.WithBaseURL(cfg.ServerURL),
		trust.WithFetcher(trust.NewHTTPFetcher(http.DefaultClient, cfg.TrustTimeout)),
	)
}
