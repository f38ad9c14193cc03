// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a registered user of the marketplace.
// An account always carries at least one usable authentication factor:
// a password hash, an external identity binding, or both.
type Account struct {
	ID           uuid.UUID // The unique identifier for the account.
	Mobile       string    // The account's mobile number, globally unique, used as the login identifier.
	PasswordHash string    // The bcrypt-hashed password. Empty for identity-bound accounts that never set one.
	OpenID       string    // The external identity reference from the OAuth provider. Empty when unbound, globally unique when set.
	Name         string    // Display name. Defaults to a placeholder derived from the mobile number.
	Avatar       string    // Avatar URL from the OAuth profile. Empty when no identity is bound.
	LastActiveAt time.Time // Timestamp of the account's last successful authentication.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// HasPassword reports whether the account can authenticate with a password.
func (a *Account) HasPassword() bool {
	return a.PasswordHash != ""
}

// IsIdentityBound reports whether an external identity is attached.
func (a *Account) IsIdentityBound() bool {
	return a.OpenID != ""
}

// PlaceholderName derives the generated display name for a fresh
// password-registered account from the last four digits of the mobile number.
func PlaceholderName(mobile string) string {
	if len(mobile) < 4 {
		return "手机用户" + mobile
	}

	return "手机用户" + mobile[len(mobile)-4:]
}
