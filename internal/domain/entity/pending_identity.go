package entity

// PendingIdentity is a session-scoped assertion that an external identity was
// verified by the OAuth provider during the current browser session. It is
// written by the OAuth edge, read by the passport flows, and never trusted
// for authorization on its own. It only seeds which account to log into or
// which profile to bind at registration.
type PendingIdentity struct {
	OpenID string // The provider-issued identity reference.
	Name   string // Display name from the provider profile.
	Avatar string // Avatar URL from the provider profile.
}

// IsEmpty reports whether the slot carries no verified identity.
func (p *PendingIdentity) IsEmpty() bool {
	return p == nil || p.OpenID == ""
}
