package notify

import (
	"context"

	"github.com/MKhiriev/flight-guardian/internal/logger"
)

// logSink writes messages to the log instead of delivering them. It is the
// default transport for local development.
type logSink struct {
	renderer *renderer
	logger   *logger.Logger
}

// NewLogSink constructs a [Sink] that only logs.
func NewLogSink(log *logger.Logger) (Sink, error) {
	r, err := newRenderer()
	if err != nil {
		return nil, err
	}
	return &logSink{renderer: r, logger: log}, nil
}

func (s *logSink) Send(ctx context.Context, msg Message) error {
	if err := msg.validate(); err != nil {
		return err
	}

	body, err := s.renderer.render(msg.Template, msg.Context)
	if err != nil {
		return err
	}

	attachments := make([]string, 0, len(msg.Attachments))
	for _, a := range msg.Attachments {
		attachments = append(attachments, a.Filename)
	}

	s.logger.Info().
		Str("func", "*logSink.Send").
		Strs("to", msg.To).
		Str("subject", msg.Subject).
		Str("template", msg.Template).
		Strs("attachments", attachments).
		Msg("email not delivered: log transport")
	s.logger.Debug().Str("func", "*logSink.Send").Str("body", body).Msg("rendered email body")

	return nil
}
