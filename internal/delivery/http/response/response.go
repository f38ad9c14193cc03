// Package response defines the unified JSON envelope and the mapping from
// passport outcomes onto it.
package response

import (
	"net/http"
	"strings"

	"bookswap/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "ACCOUNT_NOT_FOUND"
	Details string `json:"details"` // Detailed error description
}

// RedirectPayload tells the client where to navigate next.
type RedirectPayload struct {
	Redirect  string `json:"redirect"`
	Notice    string `json:"notice,omitempty"`
	LoginMode string `json:"loginMode,omitempty"`
}

// FormPayload re-presents a rejected form. Only the mobile number is
// echoed back, never passwords or codes.
type FormPayload struct {
	Fields map[string]string `json:"fields"`
	Mobile string            `json:"mobile,omitempty"`
}

// RenderPayload carries the state a surface needs to draw itself.
type RenderPayload struct {
	Notice    string       `json:"notice,omitempty"`
	LoginMode string       `json:"loginMode,omitempty"`
	Mobile    string       `json:"mobile,omitempty"`
	Pending   *PendingView `json:"pending,omitempty"`
}

// PendingView is the client-visible slice of a pending identity. The
// provider identifier itself stays server-side.
type PendingView struct {
	Name   string `json:"name,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// routePaths resolves the usecase layer's route names to URL paths.
var routePaths = map[string]string{
	usecase.RouteHome:     "/",
	usecase.RouteLogin:    "/passport/login",
	usecase.RouteRegister: "/passport/register",
}

// ResolveRoute maps a route name to its path. Intended destinations are
// recorded as paths already and pass through; unknown names fall back home.
func ResolveRoute(name string) string {
	if path, ok := routePaths[name]; ok {
		return path
	}
	if strings.HasPrefix(name, "/") {
		return name
	}

	return routePaths[usecase.RouteHome]
}

// FromOutcome writes the JSON rendition of a passport outcome.
func FromOutcome(c echo.Context, out *usecase.Outcome) error {
	switch out.Kind {
	case usecase.OutcomeRedirect:
		payload := RedirectPayload{
			Redirect:  ResolveRoute(out.Location),
			Notice:    out.Notice,
			LoginMode: string(out.PreselectMode),
		}

		return Success(c, http.StatusOK, payload, out.Notice)
	case usecase.OutcomeRedisplay:
		return c.JSON(http.StatusUnprocessableEntity, Response{
			Success: false,
			Code:    http.StatusUnprocessableEntity,
			Message: "提交的数据未通过校验",
			Data: FormPayload{
				Fields: out.FieldErrors,
				Mobile: out.Mobile,
			},
			Error: &ErrorInfo{
				Code: "VALIDATION_FAILED",
			},
		})
	default:
		payload := RenderPayload{
			Notice:    out.Notice,
			LoginMode: string(out.PreselectMode),
			Mobile:    out.Mobile,
		}
		if !out.Pending.IsEmpty() {
			payload.Pending = &PendingView{
				Name:   out.Pending.Name,
				Avatar: out.Pending.Avatar,
			}
		}

		return Success(c, http.StatusOK, payload, out.Notice)
	}
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}
