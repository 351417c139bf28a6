package email

import (
	"context"

	"github.com/deppfellow/flats-api/internal/model"
)

// NewFlatSubject is the subject line of the new-flat notification.
const NewFlatSubject = "Information about created Flat."

// NewFlatData is the context of the new-flat template.
type NewFlatData struct {
	Flat    *model.Flat
	Token   string
	BaseURL string
}

// SendNewFlatEmail tells the flat's contact that the listing was created.
func (c *Client) SendNewFlatEmail(ctx context.Context, flat *model.Flat) (int, error) {
	data := NewFlatData{
		Flat:    flat,
		Token:   c.cfg.Token,
		BaseURL: c.cfg.AppBaseURL,
	}

	return c.SendEmail(ctx, flat.Email, NewFlatSubject, TemplateNewFlat, data)
}
