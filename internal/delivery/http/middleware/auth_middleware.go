package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "bookswap/internal/delivery/context"
	"bookswap/internal/delivery/http/response"
	domainerrors "bookswap/internal/domain/errors"
	"bookswap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware guards routes on the session principal.
type AuthMiddleware struct {
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{logger: logger}
}

// RequireAuthenticated rejects anonymous requests. The originally requested
// path is recorded so a later login can return the client to it.
func (m *AuthMiddleware) RequireAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := deliverycontext.GetSession(c)
		if sess == nil {
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		ctx := c.Request().Context()

		principal, err := sess.CurrentPrincipal(ctx)
		if err != nil {
			return err
		}
		if principal == nil {
			if c.Request().Method == http.MethodGet {
				if err := sess.SetIntendedDestination(ctx, c.Request().URL.Path); err != nil {
					m.logger.Warn("failed to record intended destination",
						slog.String("session_id", sess.ID()),
						slog.Any("error", err),
					)
				}
			}

			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		return next(c)
	}
}

// RequireGuest bounces already-authenticated clients back home, mirroring
// how the login and registration surfaces behave for logged-in users.
func (m *AuthMiddleware) RequireGuest(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := deliverycontext.GetSession(c)
		if sess == nil {
			return next(c)
		}

		principal, err := sess.CurrentPrincipal(c.Request().Context())
		if err != nil {
			return err
		}
		if principal != nil {
			return response.Success(c, http.StatusOK, response.RedirectPayload{
				Redirect: response.ResolveRoute(usecase.RouteHome),
			}, "")
		}

		return next(c)
	}
}
