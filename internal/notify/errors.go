package notify

import "errors"

var (
	// ErrNoRecipients is returned when a message has no To address.
	ErrNoRecipients = errors.New("message has no recipients")

	// ErrUnknownTemplate is returned when the requested template is not embedded.
	ErrUnknownTemplate = errors.New("unknown mail template")

	// ErrRenderingTemplate is returned when a template fails to execute,
	// typically because the context lacks a referenced field.
	ErrRenderingTemplate = errors.New("error rendering mail template")

	// ErrBuildingMessage is returned when a message cannot be assembled,
	// e.g. an invalid sender or recipient address.
	ErrBuildingMessage = errors.New("error building mail message")

	// ErrSendingMail is returned when the transport fails to deliver.
	ErrSendingMail = errors.New("failed to send email")

	// ErrMailRejected is returned when the mail API answers with a 4xx status.
	ErrMailRejected = errors.New("mail api rejected the message")

	// ErrUnknownTransport is returned by [NewSink] for an unsupported transport.
	ErrUnknownTransport = errors.New("unknown mail transport")
)
