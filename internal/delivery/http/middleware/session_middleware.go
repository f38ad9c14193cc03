package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"bookswap/config"
	deliverycontext "bookswap/internal/delivery/context"
	"bookswap/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Cookie names used by the session edge.
const (
	SessionCookieName  = "bookswap_session"
	RememberCookieName = "bookswap_remember"
)

// SessionMiddleware attaches a session handle to every request and keeps
// the session and remember cookies in sync with the session's principal.
type SessionMiddleware struct {
	store     service.SessionStore
	remember  service.RememberTokenService
	logger    *slog.Logger
	secure    bool
	sessTTL   time.Duration
	rememberT time.Duration
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(
	store service.SessionStore,
	remember service.RememberTokenService,
	logger *slog.Logger,
	cfg *config.Config,
) *SessionMiddleware {
	sessTTL := 2 * time.Hour
	rememberTTL := 14 * 24 * time.Hour
	if cfg.Auth != nil {
		if cfg.Auth.SessionTTL > 0 {
			sessTTL = cfg.Auth.SessionTTL
		}
		if cfg.Auth.RememberTTL > 0 {
			rememberTTL = cfg.Auth.RememberTTL
		}
	}

	return &SessionMiddleware{
		store:     store,
		remember:  remember,
		logger:    logger,
		secure:    cfg.Env.Env == "prod",
		sessTTL:   sessTTL,
		rememberT: rememberTTL,
	}
}

// Handle resolves the session cookie (minting a fresh session when absent),
// restores lapsed durable logins from the remember cookie, and after the
// handler runs reconciles the remember cookie with the principal state.
func (m *SessionMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := m.openSession(c)
		deliverycontext.SetSession(c, sess)

		ctx := c.Request().Context()

		principal, err := sess.CurrentPrincipal(ctx)
		if err != nil {
			return err
		}

		hadPrincipal := principal != nil
		if principal == nil {
			hadPrincipal = m.restoreFromRememberCookie(c, sess)
		}

		if err := next(c); err != nil {
			return err
		}

		m.reconcileRememberCookie(c, sess, hadPrincipal)

		return nil
	}
}

func (m *SessionMiddleware) openSession(c echo.Context) service.Session {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return m.store.Open(cookie.Value)
	}

	id := m.store.NewID()
	m.setCookie(c, SessionCookieName, id, m.sessTTL)

	return m.store.Open(id)
}

// restoreFromRememberCookie re-establishes a durable login when a valid
// remember token is presented without a live principal. Reports whether a
// principal now exists.
func (m *SessionMiddleware) restoreFromRememberCookie(c echo.Context, sess service.Session) bool {
	cookie, err := c.Cookie(RememberCookieName)
	if err != nil || cookie.Value == "" {
		return false
	}

	accountID, err := m.remember.Verify(cookie.Value)
	if err != nil {
		// Stale or forged token. Drop it and continue anonymously.
		m.clearCookie(c, RememberCookieName)

		return false
	}

	if err := sess.Establish(c.Request().Context(), accountID, true); err != nil {
		m.logger.Warn("failed to restore remembered login",
			slog.String("session_id", sess.ID()),
			slog.Any("error", err),
		)

		return false
	}

	return true
}

// reconcileRememberCookie issues the remember cookie after a fresh durable
// login and clears it after logout.
func (m *SessionMiddleware) reconcileRememberCookie(c echo.Context, sess service.Session, hadPrincipal bool) {
	principal, err := sess.CurrentPrincipal(c.Request().Context())
	if err != nil {
		return
	}

	if principal == nil {
		if hadPrincipal {
			m.clearCookie(c, RememberCookieName)
		}

		return
	}

	if !principal.Durable || hadPrincipal {
		return
	}

	token, err := m.remember.Issue(principal.AccountID)
	if err != nil {
		m.logger.Warn("failed to issue remember token",
			slog.String("session_id", sess.ID()),
			slog.Any("error", err),
		)

		return
	}

	m.setCookie(c, RememberCookieName, token, m.rememberT)
}

func (m *SessionMiddleware) setCookie(c echo.Context, name, value string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *SessionMiddleware) clearCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
