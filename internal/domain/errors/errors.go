package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Account-related errors
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"找不到该用户",
		"",
	)

	ErrMobileAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"MOBILE_ALREADY_REGISTERED",
		"该手机号已被注册",
		"",
	)

	ErrOpenIDAlreadyBound = NewBaseError(
		http.StatusConflict,
		"OPENID_ALREADY_BOUND",
		"该微信账号已绑定其他用户",
		"",
	)

	ErrAccountCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ACCOUNT_CREATION_FAILED",
		"创建用户失败",
		"",
	)

	ErrAccountUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"ACCOUNT_UPDATE_FAILED",
		"更新用户失败",
		"",
	)

	// Authentication-related errors
	ErrLoginFailed = NewBaseError(
		http.StatusUnauthorized,
		"LOGIN_FAILED",
		"登录失败",
		"",
	)

	ErrUnrecognizedLoginMode = NewBaseError(
		http.StatusUnauthorized,
		"UNRECOGNIZED_LOGIN_MODE",
		"不支持的登录方式",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"请先登录",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"密码处理错误",
		"",
	)

	// One-time-code errors
	ErrCodeIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"CODE_ISSUE_FAILED",
		"验证码发送失败",
		"",
	)

	// Session-related errors
	ErrSessionWriteFailed = NewBaseError(
		http.StatusInternalServerError,
		"SESSION_WRITE_FAILED",
		"会话保存失败",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系统内部错误",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"访问被拒绝",
		"",
	)
)

// ValidationError is a field-scoped, recoverable error. It carries one
// message per offending form field so the surface can be redisplayed with
// errors attached, never destroying state.
type ValidationError struct {
	*BaseError
	fields map[string]string
}

// NewValidationError creates a validation error from a field -> message map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{
		BaseError: NewBaseError(
			http.StatusUnprocessableEntity,
			"VALIDATION_FAILED",
			"提交的数据未通过校验",
			"",
		),
		fields: fields,
	}
}

// Fields returns the per-field error messages.
func (e *ValidationError) Fields() map[string]string {
	return e.fields
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "数据库执行失败"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
