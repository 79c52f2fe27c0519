package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"game-shop/internal/model"

	"github.com/rs/zerolog"
)

// telegramNotifier implements Notifier against the Telegram bot sendMessage
// API. The bot token and chat id come from configuration at deploy time;
// they are never embedded in the binary or any client-served artifact.
type telegramNotifier struct {
	endpoint string
	token    string
	chatID   string
	client   *http.Client
	logger   zerolog.Logger
}

// NewTelegram creates a Telegram-backed notifier with a bounded request
// timeout.
func NewTelegram(endpoint, token, chatID string, timeout time.Duration, logger zerolog.Logger) Notifier {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &telegramNotifier{
		endpoint: endpoint,
		token:    token,
		chatID:   chatID,
		client:   &http.Client{Timeout: timeout},
		logger:   logger.With().Str("component", "telegram-notifier").Logger(),
	}
}

// message is the sendMessage request payload.
type message struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// OrderCreated posts a summary of the new order to the configured chat.
func (n *telegramNotifier) OrderCreated(ctx context.Context, order *model.Order) error {
	text := fmt.Sprintf(
		"New order %s\nCustomer: %s (%s)\nPhone: %s\nPayment: %s\nTotal: %d VND",
		order.ID,
		order.Customer.Name,
		order.Customer.Email,
		order.Customer.Phone,
		order.Payment.Method,
		order.Total,
	)

	body, err := json.Marshal(message{ChatID: n.chatID, Text: text})
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.endpoint, n.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Warn().Err(err).Str("order_id", order.ID).Msg("order notification failed")
		return fmt.Errorf("failed to send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		n.logger.Warn().
			Int("status", resp.StatusCode).
			Str("order_id", order.ID).
			Msg("order notification rejected")
		return fmt.Errorf("notification endpoint returned status %d", resp.StatusCode)
	}

	n.logger.Info().Str("order_id", order.ID).Msg("order notification sent")
	return nil
}
