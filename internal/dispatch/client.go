// Package dispatch relays audit requests to the GitHub workflow-dispatch
// REST API. One outbound call per inbound request: no retries, no backoff,
// no idempotency key. Repeated calls queue repeated workflow runs.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/emberfall/gazette/internal/observability"
)

// maxRawEcho bounds the upstream body echoed back in failure envelopes.
const maxRawEcho = 2000

// Inputs are the workflow_dispatch inputs forwarded upstream.
type Inputs struct {
	Date  string `json:"date"`
	Title string `json:"title"`
}

// Failure describes a dispatch that did not queue a workflow run. Status is
// the upstream HTTP status, or 0 when the call never completed.
type Failure struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Raw       string `json:"raw"`
}

type Client struct {
	cfg  Config
	http *http.Client
}

// New builds a client from an already-sanitized config. No timeout is set on
// the underlying http.Client; the request context is the only bound.
func New(cfg Config) *Client {
	return &Client{cfg: cfg, http: &http.Client{}}
}

func (c *Client) Config() Config {
	return c.cfg
}

// Dispatch issues the single workflow-dispatch call. A nil return means the
// upstream accepted the run (2xx).
func (c *Client) Dispatch(ctx context.Context, in Inputs) *Failure {
	start := time.Now()
	defer func() {
		observability.DispatchDuration.Observe(time.Since(start).Seconds())
	}()

	payload, _ := json.Marshal(map[string]interface{}{
		"ref":    c.cfg.Ref,
		"inputs": in,
	})

	url := fmt.Sprintf("%s/repos/%s/%s/actions/workflows/%s/dispatches",
		strings.TrimRight(c.cfg.APIBase, "/"), c.cfg.Owner, c.cfg.Repo, c.cfg.Workflow)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		observability.DispatchTotal.WithLabelValues("error").Inc()
		return &Failure{Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "gazette-audit-proxy")

	resp, err := c.http.Do(req)
	if err != nil {
		observability.DispatchTotal.WithLabelValues("error").Inc()
		return &Failure{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		observability.DispatchTotal.WithLabelValues("queued").Inc()
		return nil
	}

	observability.DispatchTotal.WithLabelValues("failed").Inc()
	return translateFailure(resp)
}

// translateFailure reads the upstream error response into a bounded
// diagnostic envelope. The body is parsed best-effort for a "message" field;
// the raw text is capped so a misbehaving upstream cannot be echoed
// unbounded.
func translateFailure(resp *http.Response) *Failure {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	raw := string(body)
	if len(raw) > maxRawEcho {
		// Cut on a rune boundary so the echo stays valid UTF-8.
		cut := maxRawEcho
		for cut > 0 && !utf8.RuneStart(raw[cut]) {
			cut--
		}
		raw = raw[:cut]
	}

	msg := strings.TrimSpace(raw)
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		msg = parsed.Message
	}

	return &Failure{
		Status:    resp.StatusCode,
		Message:   msg,
		RequestID: resp.Header.Get("X-GitHub-Request-Id"),
		Raw:       raw,
	}
}
