package api

import (
	"time"

	"github.com/emberfall/gazette/internal/dispatch"
)

type Config struct {
	HTTPAddr        string        `envconfig:"GAZETTE_HTTP_ADDR" default:"0.0.0.0:8080"`
	MetricsAddr     string        `envconfig:"GAZETTE_METRICS_ADDR" default:"0.0.0.0:9090"`
	LogLevel        string        `envconfig:"GAZETTE_LOG_LEVEL" default:"info"`
	ShutdownTimeout time.Duration `envconfig:"GAZETTE_SHUTDOWN_TIMEOUT" default:"30s"`
	ContentDir      string        `envconfig:"GAZETTE_CONTENT_DIR" default:"."`

	// Workflow-dispatch settings. Token/owner/repo have no defaults: their
	// absence is reported per request as a configuration error, not a
	// startup failure, so the content endpoints stay up regardless.
	GitHubToken   string `envconfig:"GAZETTE_GITHUB_TOKEN"`
	GitHubOwner   string `envconfig:"GAZETTE_GITHUB_OWNER"`
	GitHubRepo    string `envconfig:"GAZETTE_GITHUB_REPO"`
	WorkflowFile  string `envconfig:"GAZETTE_WORKFLOW_FILE" default:"audit.yml"`
	WorkflowRef   string `envconfig:"GAZETTE_WORKFLOW_REF" default:"main"`
	GitHubAPIBase string `envconfig:"GAZETTE_GITHUB_API_BASE" default:"https://api.github.com"`

	// Optional shared secret for the audit endpoint. Empty disables the
	// gate: the endpoint is open by default, a documented tradeoff.
	DevAuthSecret string `envconfig:"GAZETTE_DEV_AUTH"`
}

// DispatchConfig builds the sanitized dispatch config from the raw
// environment values.
func (c Config) DispatchConfig() dispatch.Config {
	return dispatch.Config{
		Token:    c.GitHubToken,
		Owner:    c.GitHubOwner,
		Repo:     c.GitHubRepo,
		Workflow: c.WorkflowFile,
		Ref:      c.WorkflowRef,
		APIBase:  c.GitHubAPIBase,
	}.Sanitized()
}
