// Package wechat adapts the WeChat OAuth edge into the identity-provider boundary.
// The OAuth handshake itself happens upstream; this package only turns the
// signed session artifact the edge forwards into a verified identity.
package wechat

import (
	"context"
	"time"

	"bookswap/config"
	"bookswap/internal/domain/entity"
	"bookswap/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// identityProvider verifies HMAC-signed identity artifacts minted by the
// OAuth callback edge after a successful handshake.
type identityProvider struct {
	secret []byte
}

// NewIdentityProvider is the constructor for identityProvider.
func NewIdentityProvider(cfg *config.Config) (service.IdentityProvider, error) {
	if cfg.Wechat == nil || cfg.Wechat.AppSecret == "" {
		return nil, errors.New("wechat app secret must be provided")
	}

	return &identityProvider{secret: []byte(cfg.Wechat.AppSecret)}, nil
}

// VerifyArtifact validates the signed artifact and extracts the asserted
// identity. Nothing here grants authorization; the result only seeds the
// session's pending-identity slot.
func (p *identityProvider) VerifyArtifact(_ context.Context, artifact string) (*entity.PendingIdentity, error) {
	token, err := jwt.Parse(artifact, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return p.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "invalid identity artifact")
	}
	if !token.Valid {
		return nil, errors.New("invalid identity artifact")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected identity artifact claims")
	}

	openID, _ := claims["openid"].(string)
	if openID == "" {
		return nil, errors.New("identity artifact missing openid")
	}

	name, _ := claims["nickname"].(string)
	avatar, _ := claims["headimgurl"].(string)

	return &entity.PendingIdentity{OpenID: openID, Name: name, Avatar: avatar}, nil
}

// SignArtifact mints a signed artifact for a verified profile. The OAuth
// callback edge uses it after the handshake; tests and the trusted-local
// simulation use it to fabricate identities.
func SignArtifact(secret string, identity *entity.PendingIdentity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"openid":     identity.OpenID,
		"nickname":   identity.Name,
		"headimgurl": identity.Avatar,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	}

	artifact, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign identity artifact")
	}

	return artifact, nil
}
