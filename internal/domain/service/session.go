package service

import (
	"context"

	"bookswap/internal/domain/entity"

	"github.com/google/uuid"
)

// Session is the per-client-session handle the passport flows operate on.
// It carries at most one authenticated principal and at most one pending
// external identity. Implementations persist state out of process; nothing
// here is shared in-process mutable state.
type Session interface {
	// ID returns the opaque session identifier.
	ID() string

	// Establish binds the account as the session's principal, replacing any
	// previous one. Durable sessions outlive the browser session.
	Establish(ctx context.Context, accountID uuid.UUID, durable bool) error

	// Destroy removes the principal. Destroying an anonymous session is a no-op.
	Destroy(ctx context.Context) error

	// CurrentPrincipal returns the authenticated principal, or nil when anonymous.
	CurrentPrincipal(ctx context.Context) (*entity.Principal, error)

	// PendingIdentity peeks at the session's verified-identity slot without
	// consuming it. Returns nil when the slot is empty.
	PendingIdentity(ctx context.Context) (*entity.PendingIdentity, error)

	// PutPendingIdentity records a verified identity assertion. Only the
	// OAuth edge writes this slot; passport flows treat it as read-only.
	PutPendingIdentity(ctx context.Context, identity *entity.PendingIdentity) error

	// IntendedDestination returns the route the client originally requested
	// before being sent to the login surface, or "" when none was recorded.
	IntendedDestination(ctx context.Context) (string, error)

	// SetIntendedDestination records the route to return to after login.
	SetIntendedDestination(ctx context.Context, route string) error
}

// SessionStore opens per-request session handles keyed by the session cookie.
type SessionStore interface {
	// Open returns the session for the given ID, creating it lazily on first write.
	Open(id string) Session

	// NewID mints a fresh opaque session identifier.
	NewID() string
}

// RememberTokenService issues and verifies the signed token behind durable
// ("remember me") logins. A valid token lets the edge re-establish a session
// after the session cookie itself has lapsed.
type RememberTokenService interface {
	Issue(accountID uuid.UUID) (string, error)
	Verify(token string) (uuid.UUID, error)
}
