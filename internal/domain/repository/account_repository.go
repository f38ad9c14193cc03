// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bookswap/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence. The application layer
// handles these without depending on database-specific errors.
var (
	// ErrAccountNotFound is returned when no account matches the lookup key.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateMobile is returned when an insert or update collides with
	// the unique constraint on the mobile number. The uniqueness check is
	// atomic with the insert: of two concurrent registrations for the same
	// mobile, exactly one receives this error.
	ErrDuplicateMobile = errors.New("mobile number already registered")

	// ErrDuplicateOpenID is returned when an insert or update collides with
	// the unique constraint on the external identity reference.
	ErrDuplicateOpenID = errors.New("external identity already bound")
)

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByMobile retrieves a single account by its mobile number.
	FindByMobile(ctx context.Context, mobile string) (*entity.Account, error)

	// FindByOpenID retrieves a single account by its external identity reference.
	FindByOpenID(ctx context.Context, openID string) (*entity.Account, error)

	// Create persists a new account. Uniqueness violations on mobile or
	// open id surface as ErrDuplicateMobile / ErrDuplicateOpenID.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account.
	Update(ctx context.Context, account *entity.Account) error
}
