package auth

import (
	"time"

	"bookswap/config"
	"bookswap/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// rememberTokenService signs and verifies the remember token behind durable
// logins using HMAC JWTs. The token only names the account; the edge still
// establishes a regular session from it.
type rememberTokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewRememberTokenService is the constructor for rememberTokenService.
func NewRememberTokenService(cfg *config.Config) (service.RememberTokenService, error) {
	if cfg.Auth == nil || cfg.Auth.RememberSecret == "" {
		return nil, errors.New("remember token secret must be provided")
	}

	return &rememberTokenService{
		secret: []byte(cfg.Auth.RememberSecret),
		ttl:    cfg.Auth.RememberTTL,
	}, nil
}

// Issue creates a signed remember token for the account.
func (s *rememberTokenService) Issue(accountID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  accountID.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
		"type": "remember",
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign remember token")
	}

	return token, nil
}

// Verify validates a remember token and returns the account it names.
func (s *rememberTokenService) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "invalid remember token")
	}
	if !token.Valid {
		return uuid.Nil, errors.New("invalid remember token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("unexpected remember token claims")
	}
	if tokenType, _ := claims["type"].(string); tokenType != "remember" {
		return uuid.Nil, errors.New("not a remember token")
	}

	sub, _ := claims["sub"].(string)
	accountID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "invalid account id in remember token")
	}

	return accountID, nil
}
