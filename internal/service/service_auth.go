package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/flight-guardian/internal/config"
	"github.com/MKhiriev/flight-guardian/internal/logger"
	"github.com/MKhiriev/flight-guardian/internal/notify"
	"github.com/MKhiriev/flight-guardian/internal/store"
	"github.com/MKhiriev/flight-guardian/internal/utils"
	"github.com/MKhiriev/flight-guardian/internal/validators"
	"github.com/MKhiriev/flight-guardian/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// temporaryPasswordBytes yields a 16 character hex password.
	temporaryPasswordBytes = 8

	// resetTokenBytes yields a 64 character hex token (256 bits).
	resetTokenBytes = 32

	inviteSubject        = "Welcome to Flight Guardian"
	passwordResetSubject = "Password Reset Request"

	changePasswordPath = "/auth/change-password"
)

// authService is the concrete implementation of AuthService.
// Accounts and credentials are persisted through the repositories; secrets
// are bcrypt hashed and session tokens are HMAC-SHA256 JWTs.
type authService struct {
	accounts    store.AccountRepository
	credentials store.CredentialRepository
	sink        notify.Sink
	validator   validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued session token remains valid.
	tokenDuration time.Duration

	// resetTokenTTL is the lifetime of invitation and reset tokens.
	resetTokenTTL time.Duration

	bcryptCost   int
	adminBaseURL string

	// now is the clock used for reset token expiry.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService over the account directory, the
// credential store and the notification sink, populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	accounts store.AccountRepository,
	credentials store.CredentialRepository,
	sink notify.Sink,
	cfg config.App,
	now func() time.Time,
	logger *logger.Logger,
) AuthService {
	return &authService{
		accounts:      accounts,
		credentials:   credentials,
		sink:          sink,
		validator:     validators.NewAuthValidator(),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		resetTokenTTL: cfg.ResetTokenTTL,
		bcryptCost:    cfg.BcryptCost,
		adminBaseURL:  strings.TrimRight(cfg.AdminBaseURL, "/"),
		now:           now,
		logger:        logger,
	}
}

// SendInvite onboards a new account.
//
// The account and its credential (a random temporary password) are written
// in one transaction, then a reset token is issued and the invitation is
// emailed. A delivery failure is returned but the account is kept.
//
// Returns:
//   - validators.ErrValidation for malformed invite data.
//   - store.ErrDuplicateKey if the email is already registered.
//   - ErrSendingNotification if the invitation could not be delivered.
func (a *authService) SendInvite(ctx context.Context, req models.InviteRequest) (models.EmailPayload, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.EmailPayload{}, err
	}

	password, err := utils.RandomHex(temporaryPasswordBytes)
	if err != nil {
		return models.EmailPayload{}, fmt.Errorf("%w: %w", ErrGeneratingSecret, err)
	}

	passwordHash, err := utils.HashSecret(password, a.bcryptCost)
	if err != nil {
		return models.EmailPayload{}, fmt.Errorf("%w: %w", ErrHashingSecret, err)
	}

	account, err := a.accounts.CreateWithCredential(ctx, req.Account(), passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*authService.SendInvite").Str("email", req.Email).Msg("account creation ended with error")
		return models.EmailPayload{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	token, err := a.generateAndStoreResetToken(ctx, account.ID)
	if err != nil {
		return models.EmailPayload{}, err
	}

	err = a.sink.Send(ctx, notify.Message{
		To:       []string{account.Email},
		Subject:  inviteSubject,
		Template: notify.TemplateInvite,
		Context: map[string]any{
			"firstName":         account.FirstName,
			"generatedPassword": password,
			"url":               a.changePasswordURL(token, account.Email),
		},
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.SendInvite").Str("account_id", account.ID).Msg("invitation was not delivered")
		return models.EmailPayload{}, fmt.Errorf("%w: %w", ErrSendingNotification, err)
	}

	return models.EmailPayload{Email: account.Email}, nil
}

// Login authenticates an account by email and password.
//
// Returns:
//   - store.ErrAccountNotFound if no account carries the email.
//   - ErrInvalidCredentials if the credential is missing or the password
//     does not match.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.LoginResult{}, err
	}

	account, err := a.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("email", req.Email).Msg("account search by email failed")
		return models.LoginResult{}, fmt.Errorf("account search by email failed: %w", err)
	}

	credential, err := a.credentials.GetByAccountID(ctx, account.ID)
	if errors.Is(err, store.ErrCredentialNotFound) {
		log.Warn().Str("func", "*authService.Login").Str("account_id", account.ID).Msg("account has no credential")
		return models.LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("credential search failed: %w", err)
	}

	if !utils.CompareSecret(credential.PasswordHash, req.Password) {
		log.Info().Str("func", "*authService.Login").Str("account_id", account.ID).Msg("wrong password")
		return models.LoginResult{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, account, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.LoginResult{
		User: models.SessionUser{Account: account, Token: token.String()},
	}, nil
}

// RequestPasswordReset issues a fresh reset token for the account and emails
// the reset link. Any previously issued token stops matching.
//
// Returns store.ErrAccountNotFound if no account carries the email.
func (a *authService) RequestPasswordReset(ctx context.Context, req models.ResetRequestPayload) (models.EmailPayload, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.EmailPayload{}, err
	}

	account, err := a.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("func", "*authService.RequestPasswordReset").Str("email", req.Email).Msg("account search by email failed")
		return models.EmailPayload{}, fmt.Errorf("account search by email failed: %w", err)
	}

	token, err := a.generateAndStoreResetToken(ctx, account.ID)
	if err != nil {
		return models.EmailPayload{}, err
	}

	err = a.sink.Send(ctx, notify.Message{
		To:       []string{account.Email},
		Subject:  passwordResetSubject,
		Template: notify.TemplatePasswordReset,
		Context: map[string]any{
			"firstName": strings.ToUpper(account.FirstName),
			"url":       a.changePasswordURL(token, account.Email),
		},
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.RequestPasswordReset").Str("account_id", account.ID).Msg("reset link was not delivered")
		return models.EmailPayload{}, fmt.Errorf("%w: %w", ErrSendingNotification, err)
	}

	return models.EmailPayload{Email: account.Email}, nil
}

// ResetPassword replaces the password of the account if the submitted token
// matches the stored hash, is unused and has not expired. The password hash
// and the used flag are written in one statement.
//
// Returns:
//   - store.ErrAccountNotFound if no account carries the email.
//   - store.ErrCredentialNotFound if the account has no credential.
//   - ErrInvalidResetToken for a mismatching, used or expired token.
func (a *authService) ResetPassword(ctx context.Context, req models.PasswordResetRequest) (models.EmailPayload, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.EmailPayload{}, err
	}

	account, err := a.accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("func", "*authService.ResetPassword").Str("email", req.Email).Msg("account search by email failed")
		return models.EmailPayload{}, fmt.Errorf("account search by email failed: %w", err)
	}

	credential, err := a.credentials.GetByAccountID(ctx, account.ID)
	if err != nil {
		log.Err(err).Str("func", "*authService.ResetPassword").Str("account_id", account.ID).Msg("credential search failed")
		return models.EmailPayload{}, fmt.Errorf("credential search failed: %w", err)
	}

	if !credential.HasResetToken() ||
		credential.Used ||
		credential.IsTokenExpired(a.now()) ||
		!utils.CompareSecret(credential.ResetTokenHash, req.Token) {
		log.Info().Str("func", "*authService.ResetPassword").Str("account_id", account.ID).Msg("reset token rejected")
		return models.EmailPayload{}, ErrInvalidResetToken
	}

	passwordHash, err := utils.HashSecret(req.NewPassword, a.bcryptCost)
	if err != nil {
		return models.EmailPayload{}, fmt.Errorf("%w: %w", ErrHashingSecret, err)
	}

	err = a.credentials.ConsumeResetToken(ctx, account.ID, credential.ResetTokenHash, passwordHash)
	if errors.Is(err, store.ErrResetTokenNotConsumable) {
		// a concurrent reset consumed or replaced the token first
		return models.EmailPayload{}, ErrInvalidResetToken
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.ResetPassword").Str("account_id", account.ID).Msg("password update failed")
		return models.EmailPayload{}, fmt.Errorf("password update failed: %w", err)
	}

	return models.EmailPayload{Email: account.Email}, nil
}

// ParseToken validates a raw session token and returns its claims.
//
// Returns:
//   - ErrTokenIsExpired if the token is past its expiry.
//   - ErrTokenIsInvalid if the token is malformed or its signature does not verify.
//   - ErrTokenValidation on any other failure (wrong issuer, missing claims).
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.SessionClaims, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	switch {
	case err == nil:
		return token.Claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.SessionClaims{}, ErrTokenIsExpired
	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return models.SessionClaims{}, ErrTokenIsInvalid
	default:
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.SessionClaims{}, ErrTokenValidation
	}
}

// generateAndStoreResetToken issues a random reset token, stores its hash
// with a fresh expiry and returns the plaintext.
func (a *authService) generateAndStoreResetToken(ctx context.Context, accountID string) (string, error) {
	token, err := utils.RandomHex(resetTokenBytes)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneratingSecret, err)
	}

	tokenHash, err := utils.HashSecret(token, a.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingSecret, err)
	}

	expiry := a.now().Add(a.resetTokenTTL).UnixMilli()
	if err = a.credentials.SetResetToken(ctx, accountID, tokenHash, expiry); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.generateAndStoreResetToken").Str("account_id", accountID).Msg("storing reset token failed")
		return "", fmt.Errorf("storing reset token failed: %w", err)
	}

	return token, nil
}

func (a *authService) changePasswordURL(token, email string) string {
	return a.adminBaseURL + changePasswordPath + "?token=" + url.QueryEscape(token) + "&email=" + url.QueryEscape(email)
}
