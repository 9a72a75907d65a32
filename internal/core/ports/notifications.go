package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/quotation"
)

// EventPublisher hands order events to the notification pipeline.
// Publish must not block the caller and never reports failure.
type EventPublisher interface {
	Publish(event order.Event)
}

// SMSSender delivers a text message to a normalized "+<digits>" number.
type SMSSender interface {
	Send(ctx context.Context, to string, message string) error
}

type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Email struct {
	To          string
	Subject     string
	Body        string
	Attachments []Attachment
}

// EmailSender delivers one email.
type EmailSender interface {
	Send(ctx context.Context, email Email) error
}

// QuotationRenderer draws a quotation document as a PDF.
type QuotationRenderer interface {
	Render(doc quotation.Document) ([]byte, error)
}
