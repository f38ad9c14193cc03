// Package otp implements the one-time-code collaborator on Redis.
package otp

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"math/big"
	"strings"
	"time"

	"bookswap/config"
	"bookswap/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const codeKeyPrefix = "otp:code:"

// redisCodeStore keeps one active code per mobile number with a TTL.
// Reissuing replaces the previous code; expiry is handled by Redis.
type redisCodeStore struct {
	client     *redis.Client
	codeLength int
	ttl        time.Duration
}

// NewRedisCodeStore is the constructor for redisCodeStore.
func NewRedisCodeStore(client *redis.Client, cfg *config.Config) service.CodeService {
	length := 6
	ttl := 10 * time.Minute
	if cfg != nil && cfg.Sms != nil {
		if cfg.Sms.CodeLength > 0 {
			length = cfg.Sms.CodeLength
		}
		if cfg.Sms.CodeTTL > 0 {
			ttl = cfg.Sms.CodeTTL
		}
	}

	return &redisCodeStore{
		client:     client,
		codeLength: length,
		ttl:        ttl,
	}
}

func (s *redisCodeStore) key(mobile string) string {
	return codeKeyPrefix + mobile
}

// Issue generates a fresh numeric code and stores it under the mobile number,
// replacing any previous one. The stored key doubles as the issuance record
// consulted by WasIssuedFor.
func (s *redisCodeStore) Issue(ctx context.Context, mobile string) (string, error) {
	code, err := generateNumericCode(s.codeLength)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate code")
	}

	if err := s.client.Set(ctx, s.key(mobile), code, s.ttl).Err(); err != nil {
		return "", errors.Wrap(err, "failed to store code")
	}

	return code, nil
}

// IsValid reports whether the code matches the one currently stored for the
// mobile number. Comparison is constant time; an expired or missing code is
// simply invalid, not an error.
func (s *redisCodeStore) IsValid(ctx context.Context, mobile, code string) (bool, error) {
	stored, err := s.client.Get(ctx, s.key(mobile)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to load code")
	}

	return subtle.ConstantTimeCompare([]byte(stored), []byte(code)) == 1, nil
}

// WasIssuedFor reports whether an unexpired code exists for the mobile number.
func (s *redisCodeStore) WasIssuedFor(ctx context.Context, mobile string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(mobile)).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to check code issuance")
	}

	return n > 0, nil
}

// generateNumericCode draws length decimal digits from crypto/rand.
func generateNumericCode(length int) (string, error) {
	var sb strings.Builder
	sb.Grow(length)

	for range length {
		digit, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		sb.WriteByte(byte('0' + digit.Int64()))
	}

	return sb.String(), nil
}
