// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"bytes"
	"context"
	"fmt"

	"github.com/MKhiriev/flight-guardian/internal/config"
	"github.com/MKhiriev/flight-guardian/internal/logger"
	"github.com/wneessen/go-mail"
)

// implicitTLSPort is the submission port that speaks TLS from the first byte.
const implicitTLSPort = 465

// mailSender is the part of [mail.Client] used by [smtpSink].
type mailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// smtpSink delivers messages through an SMTP relay with go-mail.
type smtpSink struct {
	sender   mailSender
	from     string
	renderer *renderer
	logger   *logger.Logger
}

// NewSMTPSink constructs a [Sink] that authenticates against
// cfg.SMTPHost:cfg.SMTPPort. Port 465 uses implicit TLS, any other port
// requires STARTTLS.
func NewSMTPSink(cfg config.Mail, log *logger.Logger) (Sink, error) {
	r, err := newRenderer()
	if err != nil {
		return nil, err
	}

	opts := []mail.Option{mail.WithPort(cfg.SMTPPort)}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}
	if cfg.SMTPPort == implicitTLSPort {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	if cfg.SMTPUsername != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUsername),
			mail.WithPassword(cfg.SMTPPassword),
		)
	}

	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewSMTPSink").Msg("error creating smtp client")
		return nil, fmt.Errorf("error creating smtp client: %w", err)
	}

	return newSMTPSink(client, cfg.From, r, log), nil
}

func newSMTPSink(sender mailSender, from string, r *renderer, log *logger.Logger) *smtpSink {
	return &smtpSink{
		sender:   sender,
		from:     from,
		renderer: r,
		logger:   log,
	}
}

// Send renders msg and delivers it in a single SMTP session.
func (s *smtpSink) Send(ctx context.Context, msg Message) error {
	log := logger.FromContext(ctx)

	m, err := s.build(msg)
	if err != nil {
		log.Err(err).Str("func", "*smtpSink.Send").Strs("to", msg.To).Msg("error building message")
		return err
	}

	log.Debug().Str("func", "*smtpSink.Send").Strs("to", msg.To).Str("subject", msg.Subject).Msg("sending email")
	if err = s.sender.DialAndSendWithContext(ctx, m); err != nil {
		log.Err(err).Str("func", "*smtpSink.Send").Strs("to", msg.To).Msg("failed to send email")
		return fmt.Errorf("%w: %w", ErrSendingMail, err)
	}
	log.Info().Str("func", "*smtpSink.Send").Strs("to", msg.To).Msg("email sent successfully")

	return nil
}

func (s *smtpSink) build(msg Message) (*mail.Msg, error) {
	if err := msg.validate(); err != nil {
		return nil, err
	}

	body, err := s.renderer.render(msg.Template, msg.Context)
	if err != nil {
		return nil, err
	}

	m := mail.NewMsg()
	if err = m.From(s.from); err != nil {
		return nil, fmt.Errorf("%w: sender: %w", ErrBuildingMessage, err)
	}
	if err = m.To(msg.To...); err != nil {
		return nil, fmt.Errorf("%w: recipients: %w", ErrBuildingMessage, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, body)

	for _, a := range msg.Attachments {
		var opts []mail.FileOption
		if a.ContentType != "" {
			opts = append(opts, mail.WithFileContentType(mail.ContentType(a.ContentType)))
		}
		if err = m.AttachReader(a.Filename, bytes.NewReader(a.Data), opts...); err != nil {
			return nil, fmt.Errorf("%w: attachment %s: %w", ErrBuildingMessage, a.Filename, err)
		}
	}

	return m, nil
}
