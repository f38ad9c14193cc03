package impl

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Mainland mobile numbers: 11 digits, leading 1, second digit 3-9.
var mobilePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

// Form shapes checked structurally before any collaborator is consulted.
// Semantic rules (number already registered, code mismatch, issuance binding)
// are layered on by the orchestrator.
type registerForm struct {
	Mobile   string `validate:"required,zh_mobile"`
	Code     string `validate:"required"`
	Password string `validate:"required,min=6"`
}

type passwordLoginForm struct {
	Mobile   string `validate:"required,zh_mobile"`
	Password string `validate:"required"`
}

type codeLoginForm struct {
	Mobile string `validate:"required,zh_mobile"`
	Code   string `validate:"required"`
}

type resetPasswordForm struct {
	Mobile               string `validate:"required,zh_mobile"`
	Code                 string `validate:"required"`
	Password             string `validate:"required,min=6,eqfield=PasswordConfirmation"`
	PasswordConfirmation string `validate:"required"`
}

type requestCodeForm struct {
	Mobile string `validate:"required,zh_mobile"`
}

// User-facing messages per form field and violated rule.
var fieldMessages = map[string]map[string]string{
	"Mobile": {
		"required":  "请输入手机号",
		"zh_mobile": "手机号格式不正确",
	},
	"Code": {
		"required": "请输入验证码",
	},
	"Password": {
		"required": "请输入密码",
		"min":      "密码长度不能少于6位",
		"eqfield":  "两次输入的密码不一致",
	},
	"PasswordConfirmation": {
		"required": "请再次输入密码",
	},
}

// Messages for semantic rules the orchestrator checks itself.
const (
	msgMobileTaken        = "该手机号已被注册"
	msgMobileNotFound     = "手机号尚未注册"
	msgMobileChanged      = "手机号与获取验证码的手机号不一致"
	msgCodeInvalid        = "验证码错误或已过期"
	msgOpenIDTaken        = "该微信账号已绑定其他用户"
	msgLoginFailed        = "登录失败"
	msgRegistered         = "注册成功并已自动登录~"
	msgWelcomeBack        = "欢迎回来！"
	msgOAuthLoginOK       = "微信授权登录成功"
	msgOAuthNeedsRegister = "微信授权成功，请继续完成注册"
	msgLoggedOut          = "您已成功退出"
	msgPasswordChanged    = "密码修改成功！请重新登录"
	msgCodeSent           = "一条短信已经发送到您的手机"
)

// Form keys used in redisplay outcomes. JSON-facing, lower-case.
const (
	fieldMobile   = "mobile"
	fieldCode     = "code"
	fieldPassword = "password"
	fieldLogin    = "login"
)

var fieldKeys = map[string]string{
	"Mobile":               fieldMobile,
	"Code":                 fieldCode,
	"Password":             fieldPassword,
	"PasswordConfirmation": fieldPassword,
}

// newFormValidator builds the validator instance shared by the orchestrator.
func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails for non-function rules, which none of ours are.
	_ = v.RegisterValidation("zh_mobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})

	return v
}

// collectFieldErrors runs structural validation and maps every violation to
// its user-facing message, first violation per field wins.
func collectFieldErrors(v *validator.Validate, form any) map[string]string {
	err := v.Struct(form)
	if err == nil {
		return map[string]string{}
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{fieldLogin: msgLoginFailed}
	}

	fieldErrs := make(map[string]string, len(violations))
	for _, violation := range violations {
		key, known := fieldKeys[violation.Field()]
		if !known {
			key = violation.Field()
		}
		if _, seen := fieldErrs[key]; seen {
			continue
		}

		message := fieldMessages[violation.Field()][violation.Tag()]
		if message == "" {
			message = "输入不合法"
		}
		fieldErrs[key] = message
	}

	return fieldErrs
}
