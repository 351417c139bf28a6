package email

import (
	"context"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
)

// Transport delivers a message and reports how many were accepted
// (0 means nothing was sent).
type Transport interface {
	Send(ctx context.Context, msg *Message) (int, error)
}

// ResendTransport sends mail through the Resend API.
type ResendTransport struct {
	client *resend.Client
}

// NewResendTransport creates a ResendTransport authenticated with apiKey.
func NewResendTransport(apiKey string) *ResendTransport {
	return &ResendTransport{client: resend.NewClient(apiKey)}
}

func (t *ResendTransport) Send(ctx context.Context, msg *Message) (int, error) {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	resp, err := t.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return 0, errors.Wrap(err, "resend")
	}
	if resp == nil || resp.Id == "" {
		return 0, nil
	}
	return 1, nil
}
