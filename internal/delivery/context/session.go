package context

import (
	"bookswap/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// GetSession extracts the request session from echo.Context.
// Returns nil when no session middleware ran.
func GetSession(c echo.Context) service.Session {
	if sess, ok := c.Get(string(KeySession)).(service.Session); ok {
		return sess
	}

	return nil
}

// SetSession stores the request session in echo.Context.
func SetSession(c echo.Context, sess service.Session) {
	c.Set(string(KeySession), sess)
}
