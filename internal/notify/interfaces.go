// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify delivers templated email notifications.
//
// A [Sink] renders one of the embedded HTML templates with the message
// context and hands the result to a transport: SMTP ([NewSMTPSink]), a JSON
// mail API over HTTP ([NewHTTPSink]) or the application log ([NewLogSink]).
// [NewSink] picks the transport configured in [config.Mail].
package notify

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/notify_mock.go -package=mock

// Sink sends a single message. Template-only and attachment-carrying
// messages go through the same call.
type Sink interface {
	Send(ctx context.Context, msg Message) error
}
