// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and request timeout are required", ErrInvalidServerConfigs)
	}

	if err := cfg.App.validate(); err != nil {
		return err
	}

	if err := cfg.Mail.validate(); err != nil {
		return err
	}

	if cfg.Workers.TokenSweepSchedule == "" {
		return fmt.Errorf("%w: empty token sweep schedule", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (app App) validate() error {
	if app.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}

	if app.TokenDuration <= 0 || app.ResetTokenTTL <= 0 {
		return fmt.Errorf("%w: token lifetimes must be positive", ErrInvalidAppConfigs)
	}

	if app.BcryptCost < bcrypt.MinCost || app.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAppConfigs, app.BcryptCost)
	}

	if app.MaxPageSize < 0 {
		return fmt.Errorf("%w: negative max page size", ErrInvalidAppConfigs)
	}

	u, err := url.Parse(app.AdminBaseURL)
	if app.AdminBaseURL == "" || err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: admin base url must be absolute", ErrInvalidAppConfigs)
	}

	return nil
}

func (m Mail) validate() error {
	switch m.Transport {
	case MailTransportLog:
		return nil
	case MailTransportSMTP:
		if m.SMTPHost == "" || m.SMTPPort <= 0 || m.From == "" {
			return fmt.Errorf("%w: smtp transport needs host, port and sender", ErrInvalidMailConfigs)
		}
	case MailTransportHTTP:
		if m.HTTPEndpoint == "" || m.From == "" {
			return fmt.Errorf("%w: http transport needs endpoint and sender", ErrInvalidMailConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown transport %q", ErrInvalidMailConfigs, m.Transport)
	}

	return nil
}
