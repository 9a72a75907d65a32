// Package email delivers transactional email over SMTP.
package email

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/logging"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

const (
	defaultPort    = 587
	defaultTimeout = 15 * time.Second
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

func (c Config) Enabled() bool {
	return strings.TrimSpace(c.Host) != ""
}

type Sender struct {
	client *mail.Client
	from   string
	logger *zap.Logger
}

// NewSender dials nothing up front; each Send opens its own SMTP session.
// Without a host it returns a sender that only logs.
func NewSender(cfg Config, logger *zap.Logger) (ports.EmailSender, error) {
	logger = logging.Component(logger, "email")
	if !cfg.Enabled() {
		logger.Warn("email is disabled, messages will only be logged")
		return disabled{logger: logger}, nil
	}

	port := cfg.Port
	if port <= 0 {
		port = defaultPort
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTimeout(timeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return &Sender{client: client, from: cfg.From, logger: logger}, nil
}

func (s *Sender) Send(ctx context.Context, email ports.Email) error {
	msg, err := buildMessage(s.from, email)
	if err != nil {
		return err
	}
	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send email to %s: %w", email.To, err)
	}
	s.logger.Debug("email sent", zap.String("to", email.To), zap.String("subject", email.Subject))
	return nil
}

func buildMessage(from string, email ports.Email) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid from address %q: %w", from, err)
	}
	if err := msg.To(email.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", email.To, err)
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(mail.TypeTextPlain, email.Body)

	for _, a := range email.Attachments {
		if err := msg.AttachReader(a.Filename, bytes.NewReader(a.Data),
			mail.WithFileContentType(mail.ContentType(a.ContentType))); err != nil {
			return nil, fmt.Errorf("attach %s: %w", a.Filename, err)
		}
	}
	return msg, nil
}

type disabled struct {
	logger *zap.Logger
}

func (d disabled) Send(_ context.Context, email ports.Email) error {
	d.logger.Info("email not sent, smtp disabled",
		zap.String("to", email.To),
		zap.String("subject", email.Subject),
		zap.Int("attachments", len(email.Attachments)))
	return nil
}
