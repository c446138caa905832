package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Telegram sends reports to one chat through the Bot API.
type Telegram struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger
}

// NewTelegram creates a Telegram notifier.
func NewTelegram(cfg Config, logger *zap.Logger) *Telegram {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	return &Telegram{
		cfg:    cfg,
		http:   &http.Client{Timeout: time.Duration(timeout) * time.Second},
		logger: logger,
	}
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Notify sends text as one or more messages, in order. It stops at the first failure.
func (t *Telegram) Notify(ctx context.Context, text string) error {
	chunks := SplitMessage(text, t.cfg.MaxMessageLength)
	for i, chunk := range chunks {
		if err := t.send(ctx, chunk); err != nil {
			return fmt.Errorf("failed to send message %d/%d: %w", i+1, len(chunks), err)
		}
	}
	t.logger.Info("Report sent", zap.Int("messages", len(chunks)))
	return nil
}

func (t *Telegram) send(ctx context.Context, text string) error {
	payload, err := json.Marshal(sendMessageRequest{
		ChatID:                t.cfg.ChatID,
		Text:                  text,
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
	})
	if err != nil {
		return err
	}

	endpoint := strings.TrimRight(t.cfg.BaseURL, "/") + "/bot" + t.cfg.Token + "/sendMessage"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var out apiResponse
	_ = json.Unmarshal(body, &out)

	if resp.StatusCode != http.StatusOK || !out.OK {
		if out.Description != "" {
			return fmt.Errorf("telegram api status %d: %s", resp.StatusCode, out.Description)
		}
		return fmt.Errorf("telegram api status %d", resp.StatusCode)
	}
	return nil
}
