package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/thesolution-at/alz-backend/internal/config"
	"github.com/thesolution-at/alz-backend/pkg/logger"
)

// Notifier sends formatted admin notifications. Sending is best-effort:
// a failed notification is logged and never surfaces to the caller.
type Notifier interface {
	Send(ctx context.Context, message string)
}

// TelegramNotifier posts messages to a Telegram chat via the bot API
type TelegramNotifier struct {
	httpClient *http.Client
	botToken   string
	chatID     string
	log        zerolog.Logger
}

// NewTelegramNotifier creates a notifier from the bot configuration
func NewTelegramNotifier(cfg config.TelegramConfig) *TelegramNotifier {
	return &TelegramNotifier{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		botToken:   cfg.BotToken,
		chatID:     cfg.ChatID,
		log:        logger.WithComponent("telegram"),
	}
}

// Send posts one HTML-formatted message. Unconfigured bots skip with a
// warning; errors are swallowed after logging.
func (n *TelegramNotifier) Send(ctx context.Context, message string) {
	if n.botToken == "" || n.chatID == "" {
		n.log.Warn().Msg("Telegram not configured, skipping notification")
		return
	}

	payload, err := json.Marshal(map[string]string{
		"chat_id":    n.chatID,
		"text":       message,
		"parse_mode": "HTML",
	})
	if err != nil {
		n.log.Error().Err(err).Msg("failed to encode Telegram message")
		return
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", n.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		n.log.Error().Err(err).Msg("failed to build Telegram request")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		n.log.Error().Err(err).Msg("failed to send Telegram message")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		n.log.Error().Int("status", resp.StatusCode).Msg("Telegram API error")
	}
}

// FormatNewsNotification builds the admin message for a published article
func FormatNewsNotification(title, excerpt, author string) string {
	msg := fmt.Sprintf(`📰 <b>Neue News veröffentlicht</b>

<b>Titel:</b> %s
<b>Autor:</b> %s

<i>%s</i>

👉 astrid-lindgren-zentrum.at/news`, title, author, excerpt)
	return strings.TrimSpace(msg)
}
