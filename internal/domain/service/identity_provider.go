package service

import (
	"context"

	"bookswap/internal/domain/entity"
)

// IdentityProvider is the OAuth edge boundary. The handshake itself (token
// exchange, profile fetch) happens outside this subsystem; implementations
// only turn an already-signed session artifact into a verified identity.
type IdentityProvider interface {
	// VerifyArtifact validates a signed identity artifact and returns the
	// asserted identity, or an error when the artifact cannot be trusted.
	VerifyArtifact(ctx context.Context, artifact string) (*entity.PendingIdentity, error)
}
