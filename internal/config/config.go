package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

var (
	ErrInvalidTrustSource  = errors.New("invalid trust source")
	ErrInvalidReportFormat = errors.New("invalid report format")
	ErrInvalidConcurrency  = errors.New("concurrency must be at least 1")
)

const (
	TrustSourceMarketplace = "marketplace"
	TrustSourceAPI         = "api"
)

type Config struct {
	GithubToken string `env:"GITHUB_TOKEN,required,notEmpty"`
	Whitelist   string `env:"WHITELIST"`
	Blacklist   string `env:"BLACKLIST"`

	WorkflowsDir     string `env:"WORKFLOWS_DIR" envDefault:".github/workflows"`
	RemoteRepository string `env:"REMOTE_REPOSITORY"`
	RemoteRef        string `env:"REMOTE_REF" envDefault:"HEAD"`

	TrustSource      string        `env:"TRUST_SOURCE" envDefault:"marketplace"`
	TrustTimeout     time.Duration `env:"TRUST_TIMEOUT" envDefault:"15s"`
	TrustConcurrency int           `env:"TRUST_CONCURRENCY" envDefault:"1"`
	ServerURL        string        `env:"GITHUB_SERVER_URL" envDefault:"https://github.com"`

	ReportFile   string `env:"REPORT_FILE" envDefault:"action-security-report.md"`
	StepSummary  string `env:"GITHUB_STEP_SUMMARY"`
	GithubOutput string `env:"GITHUB_OUTPUT"`
	ReportFormat string `env:"REPORT_FORMAT" envDefault:"markdown"`
	WorkDir      string `env:"GITHUB_WORKSPACE"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.TrustSource {
	case TrustSourceMarketplace, TrustSourceAPI:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTrustSource, c.TrustSource)
	}

	switch c.ReportFormat {
	case "markdown", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidReportFormat, c.ReportFormat)
	}

	if c.TrustConcurrency < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidConcurrency, c.TrustConcurrency)
	}
	return nil
}
