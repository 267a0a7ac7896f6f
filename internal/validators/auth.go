package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/flight-guardian/models"
)

// Field names shared by the auth and account rules.
const (
	FieldEmail       = "email"
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldPhoneNumber = "phoneNumber"
	FieldIDNumber    = "idNumber"
	FieldRole        = "role"
	FieldPassword    = "password"
	FieldNewPassword = "newPassword"
	FieldToken       = "token"
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// AuthValidator implements [Validator] for the credential lifecycle
// requests and for account profile updates.
type AuthValidator struct {
}

// NewAuthValidator constructs an AuthValidator.
func NewAuthValidator() Validator {
	return &AuthValidator{}
}

// Validate dispatches on the dynamic type of obj. Both values and pointers
// are accepted.
func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.InviteRequest:
		return evaluate(inviteRules(value), fields...)
	case *models.InviteRequest:
		return evaluate(inviteRules(*value), fields...)

	case models.LoginRequest:
		return evaluate(loginRules(value), fields...)
	case *models.LoginRequest:
		return evaluate(loginRules(*value), fields...)

	case models.ResetRequestPayload:
		return evaluate(resetRequestRules(value), fields...)
	case *models.ResetRequestPayload:
		return evaluate(resetRequestRules(*value), fields...)

	case models.PasswordResetRequest:
		return evaluate(passwordResetRules(value), fields...)
	case *models.PasswordResetRequest:
		return evaluate(passwordResetRules(*value), fields...)

	case models.Account:
		return evaluate(accountRules(value), fields...)
	case *models.Account:
		return evaluate(accountRules(*value), fields...)

	default:
		return ErrUnsupportedType
	}
}

func roleRule(role models.Role) rule {
	return rule{
		field: FieldRole,
		ok:    role.IsValid(),
		msg:   fmt.Sprintf("%s must be one of %s, %s, %s", FieldRole, models.RoleInspector, models.RoleSupervisor, models.RoleAdmin),
	}
}

func inviteRules(r models.InviteRequest) []rule {
	return []rule{
		isEmail(FieldEmail, r.Email),
		notEmpty(FieldFirstName, r.FirstName),
		notEmpty(FieldLastName, r.LastName),
		isPhone(FieldPhoneNumber, r.PhoneNumber),
		notEmpty(FieldIDNumber, r.IDNumber),
		roleRule(r.Role),
	}
}

func loginRules(r models.LoginRequest) []rule {
	return []rule{
		notEmpty(FieldEmail, r.Email),
		notEmpty(FieldPassword, r.Password),
	}
}

func resetRequestRules(r models.ResetRequestPayload) []rule {
	return []rule{
		isEmail(FieldEmail, r.Email),
	}
}

func passwordResetRules(r models.PasswordResetRequest) []rule {
	return []rule{
		isEmail(FieldEmail, r.Email),
		notEmpty(FieldNewPassword, r.NewPassword),
		maxBytes(FieldNewPassword, r.NewPassword, MaxPasswordBytes),
		notEmpty(FieldToken, r.Token),
	}
}

func accountRules(a models.Account) []rule {
	return []rule{
		isEmail(FieldEmail, a.Email),
		notEmpty(FieldFirstName, a.FirstName),
		notEmpty(FieldLastName, a.LastName),
		isPhone(FieldPhoneNumber, a.PhoneNumber),
		notEmpty(FieldIDNumber, a.IDNumber),
		roleRule(a.Role),
	}
}
