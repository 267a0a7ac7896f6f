package notify

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/flight-guardian/internal/config"
	"github.com/MKhiriev/flight-guardian/internal/logger"
	"github.com/MKhiriev/flight-guardian/internal/utils"
	"github.com/go-resty/resty/v2"
)

// apiMessage is the JSON document posted to the mail API.
type apiMessage struct {
	From        string          `json:"from"`
	To          []string        `json:"to"`
	Subject     string          `json:"subject"`
	HTML        string          `json:"html"`
	Attachments []apiAttachment `json:"attachments,omitempty"`
}

type apiAttachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType,omitempty"`
	Content     string `json:"content"` // base64
}

// httpSink delivers messages to a transactional mail API.
type httpSink struct {
	client   *utils.HTTPClient
	endpoint string
	from     string
	renderer *renderer
	logger   *logger.Logger
}

// NewHTTPSink constructs a [Sink] posting JSON to cfg.HTTPEndpoint with
// cfg.HTTPAPIKey as bearer token.
func NewHTTPSink(cfg config.Mail, log *logger.Logger) (Sink, error) {
	endpoint, err := normalizeEndpoint(cfg.HTTPEndpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid mail http endpoint: %w", err)
	}

	r, err := newRenderer()
	if err != nil {
		return nil, err
	}

	client := utils.NewHTTPClient(cfg.Timeout)
	if cfg.HTTPAPIKey != "" {
		client.SetAuthToken(cfg.HTTPAPIKey)
	}

	return &httpSink{
		client:   client,
		endpoint: endpoint,
		from:     cfg.From,
		renderer: r,
		logger:   log,
	}, nil
}

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}

// Send renders msg and posts it to the mail API.
func (s *httpSink) Send(ctx context.Context, msg Message) error {
	log := logger.FromContext(ctx)

	if err := msg.validate(); err != nil {
		return err
	}

	body, err := s.renderer.render(msg.Template, msg.Context)
	if err != nil {
		log.Err(err).Str("func", "*httpSink.Send").Str("template", msg.Template).Msg("error rendering template")
		return err
	}

	payload := apiMessage{
		From:    s.from,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    body,
	}
	for _, a := range msg.Attachments {
		payload.Attachments = append(payload.Attachments, apiAttachment{
			Filename:    a.Filename,
			ContentType: a.ContentType,
			Content:     base64.StdEncoding.EncodeToString(a.Data),
		})
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(s.endpoint)
	if err != nil {
		log.Err(err).Str("func", "*httpSink.Send").Strs("to", msg.To).Msg("mail api request failed")
		return fmt.Errorf("%w: %w", ErrSendingMail, err)
	}

	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*httpSink.Send").Strs("to", msg.To).Int("status", resp.StatusCode()).Msg("mail api returned an error")
		return err
	}
	log.Info().Str("func", "*httpSink.Send").Strs("to", msg.To).Msg("email sent successfully")

	return nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	if resp.StatusCode() < http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", ErrMailRejected, resp.StatusCode(), body)
	}
	return fmt.Errorf("%w: http %d: %s", ErrSendingMail, resp.StatusCode(), body)
}
