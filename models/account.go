// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the enumerated authority level carried by an account and embedded
// into every issued session token.
type Role string

const (
	// RoleInspector is assigned to field staff performing inspections.
	RoleInspector Role = "Inspector"

	// RoleSupervisor is assigned to staff overseeing inspectors.
	RoleSupervisor Role = "Supervisor"

	// RoleAdmin is assigned to operators managing the whole system.
	RoleAdmin Role = "Admin"
)

// Roles lists every accepted [Role] in a stable order.
var Roles = []Role{RoleInspector, RoleSupervisor, RoleAdmin}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Account represents a user identity record. It never carries credential
// material; passwords and reset tokens live in [Credential].
type Account struct {
	// ID is the server-assigned identifier (UUID v7 string).
	ID string `json:"id"`

	// Email is globally unique and matched exactly (case-sensitive) on lookups.
	Email string `json:"email"`

	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	IDNumber    string `json:"idNumber"`

	// Role is the authority level embedded into session tokens.
	Role Role `json:"role"`

	// IsActive defaults to true for invited accounts.
	IsActive bool `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// InviteRequest carries the identity attributes needed to onboard a new
// account by invitation.
type InviteRequest struct {
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	IDNumber    string `json:"idNumber"`
	Role        Role   `json:"role"`
}

// Account converts the invite into a fresh active [Account].
func (r InviteRequest) Account() Account {
	return Account{
		Email:       r.Email,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
		IDNumber:    r.IDNumber,
		Role:        r.Role,
		IsActive:    true,
	}
}

// EmailPayload is the response payload of invite and reset flows.
type EmailPayload struct {
	Email string `json:"email"`
}
