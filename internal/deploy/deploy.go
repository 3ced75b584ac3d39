package deploy

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/thesolution-at/alz-backend/internal/config"
	"github.com/thesolution-at/alz-backend/pkg/logger"
)

// Result of a redeploy trigger. A failed trigger is informational only
// and never fails the mutation that caused it.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Trigger fires the frontend redeploy webhook
type Trigger interface {
	Trigger(ctx context.Context) Result
}

// WebhookTrigger POSTs to a parameterless deploy hook URL
type WebhookTrigger struct {
	httpClient *http.Client
	hookURL    string
	log        zerolog.Logger
}

// NewWebhookTrigger creates a trigger from the deploy configuration
func NewWebhookTrigger(cfg config.DeployConfig) *WebhookTrigger {
	return &WebhookTrigger{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		hookURL:    cfg.HookURL,
		log:        logger.WithComponent("deploy"),
	}
}

// Trigger fires the hook. Failures are logged and reported in the
// result, never returned as errors.
func (t *WebhookTrigger) Trigger(ctx context.Context) Result {
	if t.hookURL == "" {
		t.log.Warn().Msg("deploy hook not configured")
		return Result{Success: false, Error: "deploy hook not configured"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.hookURL, nil)
	if err != nil {
		t.log.Error().Err(err).Msg("failed to build deploy request")
		return Result{Success: false, Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.log.Error().Err(err).Msg("failed to trigger deployment")
		return Result{Success: false, Error: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		t.log.Error().Int("status", resp.StatusCode).Msg("deploy hook rejected")
		return Result{Success: false, Error: resp.Status}
	}

	t.log.Info().Msg("deployment triggered")
	return Result{Success: true}
}
