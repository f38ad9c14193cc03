package auth

import (
	"testing"
	"time"

	"bookswap/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRememberConfig(secret string, ttl time.Duration) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			RememberSecret: secret,
			RememberTTL:    ttl,
		},
	}
}

func TestRememberTokenService_IssueAndVerify(t *testing.T) {
	svc, err := NewRememberTokenService(newTestRememberConfig("test-secret", time.Hour))
	require.NoError(t, err)

	accountID := uuid.New()
	token, err := svc.Issue(accountID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, got)
}

func TestRememberTokenService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewRememberTokenService(newTestRememberConfig("test-secret", -time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestRememberTokenService_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewRememberTokenService(newTestRememberConfig("secret-a", time.Hour))
	require.NoError(t, err)
	verifier, err := NewRememberTokenService(newTestRememberConfig("secret-b", time.Hour))
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestRememberTokenService_RejectsGarbage(t *testing.T) {
	svc, err := NewRememberTokenService(newTestRememberConfig("test-secret", time.Hour))
	require.NoError(t, err)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.Verify(token)
		assert.Error(t, err)
	}
}

func TestNewRememberTokenService_RequiresSecret(t *testing.T) {
	_, err := NewRememberTokenService(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)
}
