package email

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/flats-api/internal/config"
	"github.com/deppfellow/flats-api/internal/model"
)

type recordingTransport struct {
	sent   []*Message
	result int
	err    error
}

func (t *recordingTransport) Send(_ context.Context, msg *Message) (int, error) {
	t.sent = append(t.sent, msg)
	return t.result, t.err
}

func newTestClient(t *testing.T, transport Transport) *Client {
	t.Helper()

	renderer, err := NewTemplateRenderer()
	require.NoError(t, err)

	logger := zerolog.Nop()
	cfg := config.MailConfig{
		From:       config.DefaultMailFrom,
		AppBaseURL: "https://flats.example.com",
		Token:      "secret",
	}
	return NewClientWith(cfg, transport, renderer, &logger)
}

func TestSendNewFlatEmail(t *testing.T) {
	transport := &recordingTransport{result: 1}
	client := newTestClient(t, transport)

	flat := PreviewData[TemplateNewFlat].(NewFlatData).Flat
	sent, err := client.SendNewFlatEmail(context.Background(), flat)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	require.Len(t, transport.sent, 1)
	msg := transport.sent[0]
	assert.Equal(t, "noreply@local.com", msg.From)
	assert.Equal(t, []string{flat.Email}, msg.To)
	assert.Equal(t, "Information about created Flat.", msg.Subject)
	assert.Contains(t, msg.HTML, "Main St 1")
	assert.Contains(t, msg.HTML, "2024-01-01")
	assert.Contains(t, msg.HTML, "https://flats.example.com/flats/42?token=secret")
}

func TestSendNewFlatEmailReportsTransportResult(t *testing.T) {
	flat := &model.Flat{ID: 1, Email: "a@b.com"}

	sent, err := newTestClient(t, &recordingTransport{result: 0}).SendNewFlatEmail(context.Background(), flat)
	require.NoError(t, err)
	assert.Zero(t, sent)

	_, err = newTestClient(t, &recordingTransport{err: errors.New("smtp down")}).SendNewFlatEmail(context.Background(), flat)
	assert.ErrorContains(t, err, "smtp down")
}

func TestEveryTemplateRendersItsPreview(t *testing.T) {
	renderer, err := NewTemplateRenderer()
	require.NoError(t, err)

	for name, data := range PreviewData {
		t.Run(string(name), func(t *testing.T) {
			body, err := renderer.Render(name, data)
			require.NoError(t, err)
			assert.NotEmpty(t, body)
		})
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	renderer, err := NewTemplateRenderer()
	require.NoError(t, err)

	_, err = renderer.Render("missing", nil)
	assert.Error(t, err)
}
