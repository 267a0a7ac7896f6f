package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login when the credential is
	// missing or the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidResetToken is returned by ResetPassword for a mismatching,
	// used or expired token. The three cases are indistinguishable.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")

	// ErrTokenIsExpired is returned when a session token is past its expiry.
	ErrTokenIsExpired = errors.New("token has expired")

	// ErrTokenIsInvalid is returned for malformed tokens and bad signatures.
	ErrTokenIsInvalid = errors.New("invalid token")

	// ErrTokenValidation covers every other session token failure.
	ErrTokenValidation = errors.New("token validation error")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrHashingSecret         = errors.New("error hashing secret")
	ErrGeneratingSecret      = errors.New("error generating secret")
	ErrSendingNotification   = errors.New("error sending notification")
	ErrBuildingReport        = errors.New("error building report")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
