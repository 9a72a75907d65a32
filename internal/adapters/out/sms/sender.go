// Package sms sends text messages through an Africa's Talking compatible
// bulk messaging API.
package sms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/logging"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	messagingPath  = "/version1/messaging"
	defaultTimeout = 10 * time.Second
)

// ErrRejected is returned when the provider accepted the request but refused the recipient.
var ErrRejected = errors.New("sms rejected by provider")

type Config struct {
	BaseURL  string
	Username string
	APIKey   string
	SenderID string
	Timeout  time.Duration
}

// Enabled reports whether enough is configured to reach the provider.
func (c Config) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != "" && strings.TrimSpace(c.BaseURL) != ""
}

type Sender struct {
	client   *resty.Client
	username string
	senderID string
	logger   *zap.Logger
}

// NewSender returns the HTTP sender, or a logging no-op when cfg has no API key.
func NewSender(cfg Config, logger *zap.Logger) ports.SMSSender {
	logger = logging.Component(logger, "sms")
	if !cfg.Enabled() {
		logger.Warn("sms is disabled, messages will only be logged")
		return disabled{logger: logger}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("apiKey", cfg.APIKey).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &Sender{client: client, username: cfg.Username, senderID: cfg.SenderID, logger: logger}
}

type recipient struct {
	Number     string `json:"number"`
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	MessageID  string `json:"messageId"`
	Cost       string `json:"cost"`
}

type messagingResponse struct {
	SMSMessageData struct {
		Message    string      `json:"Message"`
		Recipients []recipient `json:"Recipients"`
	} `json:"SMSMessageData"`
}

func (s *Sender) Send(ctx context.Context, to string, message string) error {
	form := map[string]string{
		"username": s.username,
		"to":       to,
		"message":  message,
	}
	if s.senderID != "" {
		form["from"] = s.senderID
	}

	var result messagingResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(form).
		SetResult(&result).
		Post(messagingPath)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("send sms: provider responded %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	for _, r := range result.SMSMessageData.Recipients {
		if !strings.EqualFold(r.Status, "Success") {
			return fmt.Errorf("%w: %s (%s)", ErrRejected, r.Number, r.Status)
		}
		s.logger.Debug("sms sent", zap.String("to", r.Number), zap.String("message_id", r.MessageID), zap.String("cost", r.Cost))
	}
	return nil
}

type disabled struct {
	logger *zap.Logger
}

func (d disabled) Send(_ context.Context, to string, message string) error {
	d.logger.Info("sms not sent, provider disabled", zap.String("to", to), zap.Int("length", len(message)))
	return nil
}
