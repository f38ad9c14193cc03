package middleware

import (
	"log/slog"

	"bookswap/config"
	deliverycontext "bookswap/internal/delivery/context"
	"bookswap/internal/domain/entity"
	"bookswap/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Query parameter carrying the signed identity artifact from the OAuth edge.
const artifactParam = "wx_ticket"

// WechatMiddleware turns a verified OAuth artifact on the request into the
// session's pending identity. The passport flows then only ever see session
// state, never raw OAuth material.
type WechatMiddleware struct {
	provider service.IdentityProvider
	logger   *slog.Logger
	simulate bool
}

// NewWechatMiddleware creates a new wechat identity middleware
func NewWechatMiddleware(provider service.IdentityProvider, logger *slog.Logger, cfg *config.Config) *WechatMiddleware {
	simulate := cfg.Wechat != nil && cfg.Wechat.Simulate

	return &WechatMiddleware{
		provider: provider,
		logger:   logger,
		simulate: simulate,
	}
}

// Handle verifies an identity artifact if one rode in on the request and
// stashes the asserted identity in the session. A missing or bad artifact
// never blocks the request; the surfaces simply render without pre-fill.
func (m *WechatMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := m.resolveIdentity(c)
		if identity == nil {
			return next(c)
		}

		sess := deliverycontext.GetSession(c)
		if sess == nil {
			return next(c)
		}

		if err := sess.PutPendingIdentity(c.Request().Context(), identity); err != nil {
			m.logger.Warn("failed to store pending identity",
				slog.String("session_id", sess.ID()),
				slog.Any("error", err),
			)
		}

		return next(c)
	}
}

func (m *WechatMiddleware) resolveIdentity(c echo.Context) *entity.PendingIdentity {
	// Local development accepts unsigned identity parameters.
	if m.simulate {
		if openid := c.QueryParam("openid"); openid != "" {
			return &entity.PendingIdentity{
				OpenID: openid,
				Name:   c.QueryParam("nickname"),
				Avatar: c.QueryParam("headimgurl"),
			}
		}
	}

	artifact := c.QueryParam(artifactParam)
	if artifact == "" {
		return nil
	}

	identity, err := m.provider.VerifyArtifact(c.Request().Context(), artifact)
	if err != nil {
		m.logger.Warn("rejected identity artifact",
			slog.String("remote_ip", c.RealIP()),
			slog.Any("error", err),
		)

		return nil
	}

	return identity
}
