// Package session implements the per-client session state on Redis.
package session

import (
	"context"
	"time"

	"bookswap/config"
	"bookswap/internal/domain/entity"
	"bookswap/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "sess:"

// Hash fields within one session key. The principal fields are removed on
// logout; the pending-identity slot and intended destination live for the
// session's whole lifetime.
const (
	fieldAccountID     = "account_id"
	fieldDurable       = "durable"
	fieldEstablishedAt = "established_at"
	fieldPendingOpenID = "pending_openid"
	fieldPendingName   = "pending_name"
	fieldPendingAvatar = "pending_avatar"
	fieldIntended      = "intended"
)

// redisSessionStore opens session handles backed by one Redis hash each.
type redisSessionStore struct {
	client      *redis.Client
	sessionTTL  time.Duration
	rememberTTL time.Duration
}

// NewRedisSessionStore is the constructor for redisSessionStore.
func NewRedisSessionStore(client *redis.Client, cfg *config.Config) service.SessionStore {
	sessionTTL := 2 * time.Hour
	rememberTTL := 14 * 24 * time.Hour
	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.SessionTTL > 0 {
			sessionTTL = cfg.Auth.SessionTTL
		}
		if cfg.Auth.RememberTTL > 0 {
			rememberTTL = cfg.Auth.RememberTTL
		}
	}

	return &redisSessionStore{
		client:      client,
		sessionTTL:  sessionTTL,
		rememberTTL: rememberTTL,
	}
}

// Open returns a handle for the session ID. The underlying hash is created
// lazily on first write.
func (s *redisSessionStore) Open(id string) service.Session {
	return &redisSession{store: s, id: id}
}

// NewID mints a fresh opaque session identifier.
func (s *redisSessionStore) NewID() string {
	return uuid.NewString()
}

// redisSession is one client session bound to a Redis hash.
type redisSession struct {
	store *redisSessionStore
	id    string
}

func (sess *redisSession) ID() string {
	return sess.id
}

func (sess *redisSession) key() string {
	return sessionKeyPrefix + sess.id
}

// Establish binds the account as the session principal, replacing any
// previous one, and stretches the session lifetime for durable logins.
func (sess *redisSession) Establish(ctx context.Context, accountID uuid.UUID, durable bool) error {
	durableFlag := "0"
	ttl := sess.store.sessionTTL
	if durable {
		durableFlag = "1"
		ttl = sess.store.rememberTTL
	}

	pipe := sess.store.client.TxPipeline()
	pipe.HSet(ctx, sess.key(),
		fieldAccountID, accountID.String(),
		fieldDurable, durableFlag,
		fieldEstablishedAt, time.Now().UTC().Format(time.RFC3339),
	)
	pipe.Expire(ctx, sess.key(), ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to establish session")
	}

	return nil
}

// Destroy removes the principal only. The session hash itself, including the
// pending-identity slot, stays until the session expires.
func (sess *redisSession) Destroy(ctx context.Context) error {
	err := sess.store.client.HDel(ctx, sess.key(), fieldAccountID, fieldDurable, fieldEstablishedAt).Err()
	if err != nil {
		return errors.Wrap(err, "failed to destroy session")
	}

	return nil
}

// CurrentPrincipal returns the authenticated principal, or nil when anonymous.
func (sess *redisSession) CurrentPrincipal(ctx context.Context) (*entity.Principal, error) {
	values, err := sess.store.client.HMGet(ctx, sess.key(), fieldAccountID, fieldDurable, fieldEstablishedAt).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session principal")
	}

	rawID, _ := values[0].(string)
	if rawID == "" {
		return nil, nil
	}

	accountID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, errors.Wrap(err, "corrupt account id in session")
	}

	principal := &entity.Principal{AccountID: accountID}
	if durable, _ := values[1].(string); durable == "1" {
		principal.Durable = true
	}
	if raw, _ := values[2].(string); raw != "" {
		if createdAt, parseErr := time.Parse(time.RFC3339, raw); parseErr == nil {
			principal.CreatedAt = createdAt
		}
	}

	return principal, nil
}

// PendingIdentity peeks at the verified-identity slot without consuming it.
func (sess *redisSession) PendingIdentity(ctx context.Context) (*entity.PendingIdentity, error) {
	values, err := sess.store.client.HMGet(ctx, sess.key(), fieldPendingOpenID, fieldPendingName, fieldPendingAvatar).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load pending identity")
	}

	openID, _ := values[0].(string)
	if openID == "" {
		return nil, nil
	}

	name, _ := values[1].(string)
	avatar, _ := values[2].(string)

	return &entity.PendingIdentity{OpenID: openID, Name: name, Avatar: avatar}, nil
}

// PutPendingIdentity records a verified identity assertion, replacing any
// earlier one.
func (sess *redisSession) PutPendingIdentity(ctx context.Context, identity *entity.PendingIdentity) error {
	if identity.IsEmpty() {
		return errors.New("refusing to store empty pending identity")
	}

	pipe := sess.store.client.TxPipeline()
	pipe.HSet(ctx, sess.key(),
		fieldPendingOpenID, identity.OpenID,
		fieldPendingName, identity.Name,
		fieldPendingAvatar, identity.Avatar,
	)
	// Only stamp a lifetime on fresh anonymous sessions; an established
	// session keeps the TTL Establish chose.
	pipe.ExpireNX(ctx, sess.key(), sess.store.sessionTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to store pending identity")
	}

	return nil
}

// IntendedDestination returns the recorded post-login route, or "".
func (sess *redisSession) IntendedDestination(ctx context.Context) (string, error) {
	dest, err := sess.store.client.HGet(ctx, sess.key(), fieldIntended).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to load intended destination")
	}

	return dest, nil
}

// SetIntendedDestination records the route to return to after login.
func (sess *redisSession) SetIntendedDestination(ctx context.Context, route string) error {
	pipe := sess.store.client.TxPipeline()
	pipe.HSet(ctx, sess.key(), fieldIntended, route)
	pipe.ExpireNX(ctx, sess.key(), sess.store.sessionTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to store intended destination")
	}

	return nil
}
