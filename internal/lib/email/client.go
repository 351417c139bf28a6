// Package email provides an email sending client.
//
// It uses Resend (resend-go) as the email provider and renders HTML bodies
// from templates embedded in the binary. Delivery and rendering sit behind
// the Transport and Renderer interfaces so callers can swap either.
package email

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/flats-api/internal/config"
)

// Message is a rendered email ready for delivery.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Client renders templates and hands the result to a Transport.
type Client struct {
	transport Transport
	renderer  Renderer
	cfg       config.MailConfig
	logger    *zerolog.Logger
}

// NewClient creates a Client that delivers through Resend using the API
// key from config.
func NewClient(cfg *config.Config, logger *zerolog.Logger) (*Client, error) {
	renderer, err := NewTemplateRenderer()
	if err != nil {
		return nil, err
	}
	return NewClientWith(cfg.Mail, NewResendTransport(cfg.Mail.ResendAPIKey), renderer, logger), nil
}

// NewClientWith creates a Client from explicit collaborators.
func NewClientWith(cfg config.MailConfig, transport Transport, renderer Renderer, logger *zerolog.Logger) *Client {
	return &Client{
		transport: transport,
		renderer:  renderer,
		cfg:       cfg,
		logger:    logger,
	}
}

// SendEmail renders templateName with data and sends it to a single
// recipient. It returns the number of messages the transport accepted.
func (c *Client) SendEmail(ctx context.Context, to, subject string, templateName Template, data any) (int, error) {
	body, err := c.renderer.Render(templateName, data)
	if err != nil {
		return 0, err
	}

	msg := &Message{
		From:    c.cfg.From,
		To:      []string{to},
		Subject: subject,
		HTML:    body,
	}

	sent, err := c.transport.Send(ctx, msg)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to send %s email", templateName)
	}

	c.logger.Debug().
		Str("template", string(templateName)).
		Int("sent", sent).
		Msg("email handed to transport")

	return sent, nil
}
