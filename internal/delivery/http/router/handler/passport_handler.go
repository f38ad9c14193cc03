// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "bookswap/internal/delivery/context"
	"bookswap/internal/delivery/http/response"
	"bookswap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PassportHandler holds dependencies for the authentication handlers.
type PassportHandler struct {
	uc     usecase.PassportUsecase
	logger *slog.Logger
}

// NewPassportHandler is the constructor for PassportHandler, injected by Fx.
func NewPassportHandler(uc usecase.PassportUsecase, logger *slog.Logger) *PassportHandler {
	return &PassportHandler{
		uc:     uc,
		logger: logger,
	}
}

// ShowLogin renders the login surface. When the session carries a pending
// identity the usecase may instead log the client straight in or forward
// them to registration.
func (h *PassportHandler) ShowLogin(c echo.Context) error {
	ctx := c.Request().Context()
	sess := deliverycontext.GetSession(c)

	pending, err := sess.PendingIdentity(ctx)
	if err != nil {
		return err
	}

	out, err := h.uc.ShowLogin(ctx, sess, pending)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.FromOutcome(c, out)
}

// ShowRegister renders the registration surface.
func (h *PassportHandler) ShowRegister(c echo.Context) error {
	ctx := c.Request().Context()
	sess := deliverycontext.GetSession(c)

	pending, err := sess.PendingIdentity(ctx)
	if err != nil {
		return err
	}

	out, err := h.uc.ShowRegister(ctx, pending)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.FromOutcome(c, out)
}

// Register handles the registration form submission.
func (h *PassportHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "无法解析注册表单")
	}

	ctx := c.Request().Context()
	sess := deliverycontext.GetSession(c)

	pending, err := sess.PendingIdentity(ctx)
	if err != nil {
		return err
	}

	out, err := h.uc.Register(ctx, sess, pending, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.FromOutcome(c, out)
}

// Login handles the login form submission for both login modes.
func (h *PassportHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "无法解析登录表单")
	}

	out, err := h.uc.Login(c.Request().Context(), deliverycontext.GetSession(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.FromOutcome(c, out)
}

// RequestCode issues a one-time code and hands it to the SMS channel.
func (h *PassportHandler) RequestCode(c echo.Context) error {
	var input usecase.RequestCodeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "无法解析验证码请求")
	}

	out, err := h.uc.RequestCode(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.FromOutcome(c, out)
}

// ShowForgot renders the password-reset surface. The autoSend query flag
// fires a code to the logged-in account's mobile before rendering.
func (h *PassportHandler) ShowForgot(c echo.Context) error {
	autoSend := c.QueryParam("autoSend") != ""

	out, err := h.uc.ShowForgot(c.Request().Context(), deliverycontext.GetSession(c), autoSend)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.FromOutcome(c, out)
}

// ResetPassword handles the password-reset form submission.
func (h *PassportHandler) ResetPassword(c echo.Context) error {
	var input usecase.ResetPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "无法解析重置密码表单")
	}

	out, err := h.uc.ResetPassword(c.Request().Context(), deliverycontext.GetSession(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.FromOutcome(c, out)
}

// Logout ends the current login. Safe to call when not logged in.
func (h *PassportHandler) Logout(c echo.Context) error {
	out, err := h.uc.Logout(c.Request().Context(), deliverycontext.GetSession(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.FromOutcome(c, out)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
