// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bookswap/internal/domain/entity"
	"bookswap/internal/domain/service"
)

// LoginMode is the closed set of client-chosen login modes.
type LoginMode string

const (
	// LoginModePassword authenticates with mobile number and password.
	LoginModePassword LoginMode = "password"
	// LoginModeCode authenticates with mobile number and a one-time code.
	LoginModeCode LoginMode = "code"
)

// --- Input DTOs ---

// RegisterInput carries the raw registration form fields.
type RegisterInput struct {
	Mobile   string `json:"mobile" form:"mobile"`
	Code     string `json:"code" form:"code"`
	Password string `json:"password" form:"password"`
}

// LoginInput carries the raw login form fields plus the mode discriminator.
type LoginInput struct {
	Mode     string `json:"loginMode" form:"loginMode"`
	Mobile   string `json:"mobile" form:"mobile"`
	Password string `json:"password" form:"password"`
	Code     string `json:"code" form:"code"`
}

// ResetPasswordInput carries the forgot-password form fields.
type ResetPasswordInput struct {
	Mobile               string `json:"mobile" form:"mobile"`
	Code                 string `json:"code" form:"code"`
	Password             string `json:"password" form:"password"`
	PasswordConfirmation string `json:"passwordConfirmation" form:"passwordConfirmation"`
}

// RequestCodeInput asks for a one-time code to be issued and delivered.
type RequestCodeInput struct {
	Mobile string `json:"mobile" form:"mobile"`
}

// --- Outcomes ---

// OutcomeKind discriminates what the surface should do next.
type OutcomeKind string

const (
	// OutcomeRedirect sends the client to another route with a flash notice.
	OutcomeRedirect OutcomeKind = "redirect"
	// OutcomeRedisplay re-renders the submitted form with field errors.
	OutcomeRedisplay OutcomeKind = "redisplay"
	// OutcomeRender shows a surface with no prior submission.
	OutcomeRender OutcomeKind = "render"
)

// Outcome is the result every passport operation maps to: either a
// redirect-with-notice or a redisplay-with-field-errors. Collaborator
// failures travel separately as ordinary errors.
type Outcome struct {
	Kind OutcomeKind

	// Redirect target and flash notice. Location is a route name, resolved
	// by the delivery layer.
	Location string
	Notice   string

	// Redisplay payload. Mobile is the only submitted value preserved;
	// passwords and codes are never echoed back.
	FieldErrors map[string]string
	Mobile      string

	// PreselectMode pre-selects a login mode on the login surface.
	PreselectMode LoginMode

	// Pending is the identity assertion a render of the registration
	// surface should show (name/avatar pre-fill).
	Pending *entity.PendingIdentity
}

// Well-known route names understood by the delivery layer.
const (
	RouteHome     = "home"
	RouteLogin    = "passport.login"
	RouteRegister = "passport.register"
)

// Redirect builds a redirect outcome with a flash notice.
func Redirect(location, notice string) *Outcome {
	return &Outcome{Kind: OutcomeRedirect, Location: location, Notice: notice}
}

// Redisplay builds a redisplay outcome preserving only the mobile number.
func Redisplay(mobile string, fieldErrors map[string]string) *Outcome {
	return &Outcome{Kind: OutcomeRedisplay, FieldErrors: fieldErrors, Mobile: mobile}
}

// PassportUsecase drives the identity-resolution and authentication flows.
// The session handle and the pending identity are threaded in explicitly so
// the orchestration stays deterministic under test.
type PassportUsecase interface {
	// ShowLogin renders the login surface. When a pending identity is
	// present it resolves it against existing accounts first: a bound
	// account logs in directly, an unbound identity is forwarded to
	// registration.
	ShowLogin(ctx context.Context, sess service.Session, pending *entity.PendingIdentity) (*Outcome, error)

	// ShowRegister renders the registration surface with any pending
	// identity attached for pre-fill.
	ShowRegister(ctx context.Context, pending *entity.PendingIdentity) (*Outcome, error)

	// Register creates an account from the registration form, binding the
	// pending identity when one is present, and logs the account in.
	Register(ctx context.Context, sess service.Session, pending *entity.PendingIdentity, input *RegisterInput) (*Outcome, error)

	// Login dispatches on the client-chosen mode. An unrecognized mode is a
	// hard client error.
	Login(ctx context.Context, sess service.Session, input *LoginInput) (*Outcome, error)

	// RequestCode issues a one-time code for the mobile number and hands it
	// to the SMS collaborator.
	RequestCode(ctx context.Context, input *RequestCodeInput) (*Outcome, error)

	// ShowForgot renders the password-reset surface for the authenticated
	// account, optionally issuing and delivering a code to its mobile number
	// up front.
	ShowForgot(ctx context.Context, sess service.Session, autoSend bool) (*Outcome, error)

	// ResetPassword changes the authenticated account's password after code
	// verification, then forces a re-login.
	ResetPassword(ctx context.Context, sess service.Session, input *ResetPasswordInput) (*Outcome, error)

	// Logout destroys the session principal. Idempotent.
	Logout(ctx context.Context, sess service.Session) (*Outcome, error)
}
