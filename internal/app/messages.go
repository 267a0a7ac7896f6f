// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// Flight Guardian HTTP handlers and middleware.
//
// All Msg* constants are human-readable strings written into the Message
// field of response envelopes. Admin frontends match on some of them, so
// their wording is part of the API.
package app

// Success messages.
const (
	// MsgSuccess is the generic message of entity reads and writes.
	MsgSuccess = "Success"

	MsgInviteSent       = "User invited successfully. Email sent."
	MsgLoginSuccessful  = "Login successful"
	MsgResetEmailSent   = "Password reset email sent."
	MsgPasswordReset    = "Password reset successfully"
	MsgReportSent       = "Report sent successfully"
	MsgUserRemoved      = "User and associated password removed successfully"
	MsgEmailAlreadyUsed = "Email already in use"
)

// Failure messages.
const (
	// MsgValidationError accompanies a payload listing every violated rule.
	MsgValidationError = "Validation Error"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidFilter accompanies the rejected filter in the payload.
	MsgInvalidFilter = "Invalid filter"

	MsgReferenceNotFound = "Referenced record not found"
	MsgDuplicateKey      = "Duplicate key error"

	MsgUserNotFound       = "User not found"
	MsgCredentialNotFound = "Password entry not found"
	MsgRecordNotFound     = "Record not found"
	MsgRouteNotFound      = "Not Found"

	MsgInvalidCredentials = "Invalid credentials"
	MsgInvalidResetToken  = "Invalid or expired reset token"

	MsgAuthHeaderMissing = "Authorization header is missing"
	MsgInvalidAuthHeader = "Invalid authorization header"
	MsgTokenMissing      = "Token is missing"
	MsgTokenInvalid      = "Invalid token"
	MsgTokenValidation   = "Token validation error"
	MsgTokenExpired      = "Token has expired"

	// MsgInternalServerError is returned for every failure the client
	// cannot resolve.
	MsgInternalServerError = "Internal Server Error"
)
