package models

import "time"

// Credential holds the secret material of exactly one [Account].
// All secrets are stored as one-way hashes.
type Credential struct {
	// AccountID references the owning account; at most one credential exists
	// per account.
	AccountID string

	// PasswordHash is the bcrypt hash of the current password.
	PasswordHash string

	// ResetTokenHash is the bcrypt hash of the outstanding reset token.
	// Empty when no token was ever issued or after a sweep.
	ResetTokenHash string

	// TokenExpiry is the absolute expiry of the reset token in epoch milliseconds.
	TokenExpiry int64

	// Used is set once the reset token has authorized a password change.
	Used bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasResetToken reports whether a reset token hash is present.
func (c Credential) HasResetToken() bool {
	return c.ResetTokenHash != ""
}

// IsTokenExpired reports whether the reset token expiry lies before now.
func (c Credential) IsTokenExpired(now time.Time) bool {
	return now.UnixMilli() > c.TokenExpiry
}

// LoginRequest carries the credentials submitted to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetRequestPayload carries the email submitted to the forgot-password endpoint.
type ResetRequestPayload struct {
	Email string `json:"email"`
}

// PasswordResetRequest carries the data submitted to the reset-password endpoint.
type PasswordResetRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
	Token       string `json:"token"`
}
