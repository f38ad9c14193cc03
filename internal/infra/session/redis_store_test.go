package session

import (
	"context"
	"testing"
	"time"

	"bookswap/config"
	"bookswap/internal/domain/entity"
	"bookswap/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionStore(t *testing.T) (*miniredis.Miniredis, service.SessionStore) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisSessionStore(client, &config.Config{
		Auth: &config.AuthConfig{
			SessionTTL:  2 * time.Hour,
			RememberTTL: 14 * 24 * time.Hour,
		},
	})

	return mr, store
}

func TestRedisSessionStore_NewIDIsUnique(t *testing.T) {
	_, store := newTestSessionStore(t)

	assert.NotEqual(t, store.NewID(), store.NewID())
}

func TestRedisSession_EstablishAndReadPrincipal(t *testing.T) {
	_, store := newTestSessionStore(t)
	ctx := context.Background()

	sess := store.Open(store.NewID())
	accountID := uuid.New()

	principal, err := sess.CurrentPrincipal(ctx)
	require.NoError(t, err)
	assert.Nil(t, principal)

	require.NoError(t, sess.Establish(ctx, accountID, false))

	principal, err = sess.CurrentPrincipal(ctx)
	require.NoError(t, err)
	require.NotNil(t, principal)
	assert.Equal(t, accountID, principal.AccountID)
	assert.False(t, principal.Durable)
	assert.WithinDuration(t, time.Now(), principal.CreatedAt, time.Minute)
}

func TestRedisSession_EstablishReplacesPrincipal(t *testing.T) {
	_, store := newTestSessionStore(t)
	ctx := context.Background()

	sess := store.Open(store.NewID())
	first := uuid.New()
	second := uuid.New()

	require.NoError(t, sess.Establish(ctx, first, false))
	require.NoError(t, sess.Establish(ctx, second, true))

	principal, err := sess.CurrentPrincipal(ctx)
	require.NoError(t, err)
	require.NotNil(t, principal)
	assert.Equal(t, second, principal.AccountID)
	assert.True(t, principal.Durable)
}

func TestRedisSession_DurableLoginStretchesLifetime(t *testing.T) {
	mr, store := newTestSessionStore(t)
	ctx := context.Background()

	sess := store.Open(store.NewID())
	require.NoError(t, sess.Establish(ctx, uuid.New(), true))

	// A session-only TTL would have lapsed by now.
	mr.FastForward(3 * time.Hour)

	principal, err := sess.CurrentPrincipal(ctx)
	require.NoError(t, err)
	assert.NotNil(t, principal)
}

func TestRedisSession_SessionOnlyLoginExpires(t *testing.T) {
	mr, store := newTestSessionStore(t)
	ctx := context.Background()

	sess := store.Open(store.NewID())
	require.NoError(t, sess.Establish(ctx, uuid.New(), false))

	mr.FastForward(3 * time.Hour)

	principal, err := sess.CurrentPrincipal(ctx)
	require.NoError(t, err)
	assert.Nil(t, principal)
}

func TestRedisSession_DestroyKeepsPendingIdentity(t *testing.T) {
	_, store := newTestSessionStore(t)
	ctx := context.Background()

	sess := store.Open(store.NewID())
	identity := &entity.PendingIdentity{OpenID: "wx-openid-1", Name: "微信昵称"}

	require.NoError(t, sess.PutPendingIdentity(ctx, identity))
	require.NoError(t, sess.Establish(ctx, uuid.New(), false))
	require.NoError(t, sess.Destroy(ctx))

	principal, err := sess.CurrentPrincipal(ctx)
	require.NoError(t, err)
	assert.Nil(t, principal)

	pending, err := sess.PendingIdentity(ctx)
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Equal(t, "wx-openid-1", pending.OpenID)
}

func TestRedisSession_DestroyAnonymousSessionIsNoop(t *testing.T) {
	_, store := newTestSessionStore(t)
	ctx := context.Background()

	sess := store.Open(store.NewID())
	require.NoError(t, sess.Destroy(ctx))
	require.NoError(t, sess.Destroy(ctx))
}

func TestRedisSession_PendingIdentityRoundTrip(t *testing.T) {
	_, store := newTestSessionStore(t)
	ctx := context.Background()

	sess := store.Open(store.NewID())

	pending, err := sess.PendingIdentity(ctx)
	require.NoError(t, err)
	assert.Nil(t, pending)

	identity := &entity.PendingIdentity{
		OpenID: "wx-openid-1",
		Name:   "微信昵称",
		Avatar: "https://example.com/avatar.png",
	}
	require.NoError(t, sess.PutPendingIdentity(ctx, identity))

	pending, err = sess.PendingIdentity(ctx)
	require.NoError(t, err)
	assert.Equal(t, identity, pending)

	// Peeking does not consume the slot.
	pending, err = sess.PendingIdentity(ctx)
	require.NoError(t, err)
	assert.Equal(t, identity, pending)
}

func TestRedisSession_PutPendingIdentityRejectsEmpty(t *testing.T) {
	_, store := newTestSessionStore(t)

	sess := store.Open(store.NewID())
	assert.Error(t, sess.PutPendingIdentity(context.Background(), nil))
	assert.Error(t, sess.PutPendingIdentity(context.Background(), &entity.PendingIdentity{}))
}

func TestRedisSession_IntendedDestinationRoundTrip(t *testing.T) {
	_, store := newTestSessionStore(t)
	ctx := context.Background()

	sess := store.Open(store.NewID())

	dest, err := sess.IntendedDestination(ctx)
	require.NoError(t, err)
	assert.Empty(t, dest)

	require.NoError(t, sess.SetIntendedDestination(ctx, "/passport/forgot"))

	dest, err = sess.IntendedDestination(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/passport/forgot", dest)
}

func TestRedisSession_SessionsAreIsolated(t *testing.T) {
	_, store := newTestSessionStore(t)
	ctx := context.Background()

	first := store.Open(store.NewID())
	second := store.Open(store.NewID())

	require.NoError(t, first.Establish(ctx, uuid.New(), false))

	principal, err := second.CurrentPrincipal(ctx)
	require.NoError(t, err)
	assert.Nil(t, principal)
}
