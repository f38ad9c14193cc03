package entity

import (
	"time"

	"github.com/google/uuid"
)

// Principal is the authenticated account bound to a client session.
// At most one principal exists per session; its absence means anonymous.
type Principal struct {
	AccountID uuid.UUID // The account this session is authenticated as.
	Durable   bool      // Whether the session should survive the browser session ("remember me").
	CreatedAt time.Time // When the session was established.
}
