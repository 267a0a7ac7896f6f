package notify

import (
	"fmt"

	"github.com/MKhiriev/flight-guardian/internal/config"
	"github.com/MKhiriev/flight-guardian/internal/logger"
)

// NewSink builds the transport selected by cfg.Transport.
func NewSink(cfg config.Mail, log *logger.Logger) (Sink, error) {
	switch cfg.Transport {
	case config.MailTransportSMTP:
		return NewSMTPSink(cfg, log)
	case config.MailTransportHTTP:
		return NewHTTPSink(cfg, log)
	case config.MailTransportLog, "":
		return NewLogSink(log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, cfg.Transport)
	}
}
