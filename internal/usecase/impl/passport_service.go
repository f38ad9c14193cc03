// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"bookswap/config"
	"bookswap/internal/domain/entity"
	domainerrors "bookswap/internal/domain/errors"
	"bookswap/internal/domain/repository"
	"bookswap/internal/domain/service"
	"bookswap/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// passportService implements the PassportUsecase interface. Each request is
// handled statelessly; the session handle and pending identity arrive as
// explicit parameters and all durable state lives behind the collaborators.
type passportService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	codes        service.CodeService
	sms          service.SmsSender
	validate     *validator.Validate
	trustedLocal bool
	codeTTL      time.Duration
	logger       *slog.Logger
}

// PassportServiceParams holds dependencies for passportService, injected by Fx.
type PassportServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Codes       service.CodeService
	Sms         service.SmsSender
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPassportService is the constructor for passportService.
func NewPassportService(params PassportServiceParams) usecase.PassportUsecase {
	trustedLocal := false
	if params.Config != nil && params.Config.Wechat != nil {
		trustedLocal = params.Config.Wechat.Simulate
	}
	codeTTL := 10 * time.Minute
	if params.Config != nil && params.Config.Sms != nil && params.Config.Sms.CodeTTL > 0 {
		codeTTL = params.Config.Sms.CodeTTL
	}

	return &passportService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		codes:        params.Codes,
		sms:          params.Sms,
		validate:     newFormValidator(),
		trustedLocal: trustedLocal,
		codeTTL:      codeTTL,
		logger:       params.Logger,
	}
}

// ShowLogin renders the login surface, first reconciling any verified
// identity already attached to the session: a known identity logs in
// directly, an unknown one is sent on to registration. Trusted-local mode
// suppresses the auto-binding so the plain surface stays reachable in tests.
func (srv *passportService) ShowLogin(ctx context.Context, sess service.Session, pending *entity.PendingIdentity) (*usecase.Outcome, error) {
	if pending.IsEmpty() || srv.trustedLocal {
		return &usecase.Outcome{Kind: usecase.OutcomeRender}, nil
	}

	account, err := srv.accountRepo.FindByOpenID(ctx, pending.OpenID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		// Verified identity with no local account yet: do not create one
		// here, carry the identity forward for registration to consume.
		srv.logger.Info("OAuth identity has no account, forwarding to registration", slog.String("openID", pending.OpenID))

		return usecase.Redirect(usecase.RouteRegister, msgOAuthNeedsRegister), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account by open id")
	}

	if err := srv.commitLogin(ctx, sess, account, true); err != nil {
		return nil, err
	}
	srv.logger.Info("OAuth identity login succeeded", slog.Any("accountID", account.ID))

	return usecase.Redirect(srv.intendedOrHome(ctx, sess), msgOAuthLoginOK), nil
}

// ShowRegister renders the registration surface with any pending identity
// attached for pre-fill.
func (srv *passportService) ShowRegister(_ context.Context, pending *entity.PendingIdentity) (*usecase.Outcome, error) {
	outcome := &usecase.Outcome{Kind: usecase.OutcomeRender}
	if !pending.IsEmpty() {
		outcome.Pending = pending
	}

	return outcome, nil
}

// Register validates the registration form, creates the account and logs it
// in. A pending identity overrides the generated placeholder profile.
func (srv *passportService) Register(ctx context.Context, sess service.Session, pending *entity.PendingIdentity, input *usecase.RegisterInput) (*usecase.Outcome, error) {
	form := registerForm{Mobile: input.Mobile, Code: input.Code, Password: input.Password}

	fieldErrs := collectFieldErrors(srv.validate, form)
	if err := srv.checkMobileUnbound(ctx, input.Mobile, fieldErrs); err != nil {
		return nil, err
	}
	if err := srv.checkCode(ctx, input.Mobile, input.Code, fieldErrs); err != nil {
		return nil, err
	}
	if len(fieldErrs) > 0 {
		return usecase.Redisplay(input.Mobile, fieldErrs), nil
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	account := &entity.Account{
		Mobile:       input.Mobile,
		PasswordHash: hash,
		Name:         entity.PlaceholderName(input.Mobile),
		LastActiveAt: time.Now(),
	}
	if !pending.IsEmpty() {
		// Identity-bound registration: the verified third-party profile
		// wins over the generated placeholder.
		account.OpenID = pending.OpenID
		account.Name = pending.Name
		account.Avatar = pending.Avatar
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		// The store's uniqueness check is atomic with the insert, so a
		// racing duplicate surfaces here as a field error, not a 500.
		if errors.Is(err, repository.ErrDuplicateMobile) {
			return usecase.Redisplay(input.Mobile, map[string]string{fieldMobile: msgMobileTaken}), nil
		}
		if errors.Is(err, repository.ErrDuplicateOpenID) {
			return usecase.Redisplay(input.Mobile, map[string]string{fieldMobile: msgOpenIDTaken}), nil
		}

		return nil, errors.Wrap(err, "failed to create account during registration")
	}

	if err := sess.Establish(ctx, account.ID, false); err != nil {
		return nil, errors.Wrap(err, "failed to establish session after registration")
	}
	srv.logger.Info("Account registered", slog.Any("accountID", account.ID), slog.Bool("identityBound", account.IsIdentityBound()))

	return usecase.Redirect(usecase.RouteHome, msgRegistered), nil
}

// Login dispatches on the client-chosen mode. Absence or any other value is
// a hard client error with no partial state change.
func (srv *passportService) Login(ctx context.Context, sess service.Session, input *usecase.LoginInput) (*usecase.Outcome, error) {
	switch usecase.LoginMode(input.Mode) {
	case usecase.LoginModePassword:
		return srv.loginByPassword(ctx, sess, input)
	case usecase.LoginModeCode:
		return srv.loginByCode(ctx, sess, input)
	default:
		return nil, errors.WithStack(domainerrors.ErrUnrecognizedLoginMode)
	}
}

// loginByPassword matches mobile plus password against the credential store.
// The failure outcome never reveals whether the mobile number exists.
func (srv *passportService) loginByPassword(ctx context.Context, sess service.Session, input *usecase.LoginInput) (*usecase.Outcome, error) {
	form := passwordLoginForm{Mobile: input.Mobile, Password: input.Password}
	if fieldErrs := collectFieldErrors(srv.validate, form); len(fieldErrs) > 0 {
		return usecase.Redisplay(input.Mobile, fieldErrs), nil
	}

	account, err := srv.accountRepo.FindByMobile(ctx, input.Mobile)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return srv.passwordLoginFailed(input.Mobile), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account by mobile")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		return srv.passwordLoginFailed(input.Mobile), nil
	}

	if err := srv.commitLogin(ctx, sess, account, true); err != nil {
		return nil, err
	}

	return usecase.Redirect(srv.intendedOrHome(ctx, sess), msgWelcomeBack), nil
}

// passwordLoginFailed is the one shape every password-login failure takes,
// whether the account is missing or the password wrong.
func (srv *passportService) passwordLoginFailed(mobile string) *usecase.Outcome {
	srv.logger.Warn("Password login failed", slog.String("mobile", mobile))

	return usecase.Redisplay(mobile, map[string]string{fieldLogin: msgLoginFailed})
}

// loginByCode authenticates with a one-time code. The code is the factor; no
// password check is performed. It never registers a missing account.
func (srv *passportService) loginByCode(ctx context.Context, sess service.Session, input *usecase.LoginInput) (*usecase.Outcome, error) {
	form := codeLoginForm{Mobile: input.Mobile, Code: input.Code}
	fieldErrs := collectFieldErrors(srv.validate, form)

	var account *entity.Account
	if _, ok := fieldErrs[fieldMobile]; !ok {
		issued, err := srv.codes.WasIssuedFor(ctx, input.Mobile)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check code issuance")
		}
		if !issued {
			fieldErrs[fieldMobile] = msgMobileChanged
		} else {
			account, err = srv.accountRepo.FindByMobile(ctx, input.Mobile)
			if errors.Is(err, repository.ErrAccountNotFound) {
				fieldErrs[fieldMobile] = msgMobileNotFound
			} else if err != nil {
				return nil, errors.Wrap(err, "failed to find account by mobile")
			}
		}
	}
	if err := srv.checkCode(ctx, input.Mobile, input.Code, fieldErrs); err != nil {
		return nil, err
	}
	if len(fieldErrs) > 0 {
		return usecase.Redisplay(input.Mobile, fieldErrs), nil
	}

	if err := srv.commitLogin(ctx, sess, account, true); err != nil {
		return nil, err
	}

	return usecase.Redirect(srv.intendedOrHome(ctx, sess), msgWelcomeBack), nil
}

// RequestCode issues a one-time code and hands it to the SMS collaborator.
func (srv *passportService) RequestCode(ctx context.Context, input *usecase.RequestCodeInput) (*usecase.Outcome, error) {
	form := requestCodeForm{Mobile: input.Mobile}
	if fieldErrs := collectFieldErrors(srv.validate, form); len(fieldErrs) > 0 {
		return usecase.Redisplay(input.Mobile, fieldErrs), nil
	}

	if err := srv.issueAndSendCode(ctx, input.Mobile); err != nil {
		return nil, err
	}

	return &usecase.Outcome{Kind: usecase.OutcomeRender, Notice: msgCodeSent}, nil
}

// ShowForgot renders the password-reset surface for the authenticated account.
// With autoSend set, a code is issued and delivered to the account's own
// mobile number before the surface renders.
func (srv *passportService) ShowForgot(ctx context.Context, sess service.Session, autoSend bool) (*usecase.Outcome, error) {
	principal, err := sess.CurrentPrincipal(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session principal")
	}
	if principal == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	account, err := srv.accountRepo.FindByID(ctx, principal.AccountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account for password reset")
	}

	outcome := &usecase.Outcome{Kind: usecase.OutcomeRender, Mobile: account.Mobile}
	if !autoSend {
		return outcome, nil
	}

	if err := srv.issueAndSendCode(ctx, account.Mobile); err != nil {
		return nil, err
	}
	outcome.Notice = msgCodeSent

	return outcome, nil
}

func (srv *passportService) issueAndSendCode(ctx context.Context, mobile string) error {
	code, err := srv.codes.Issue(ctx, mobile)
	if err != nil {
		return errors.Wrap(domainerrors.ErrCodeIssueFailed, err.Error())
	}

	minutes := int(srv.codeTTL.Minutes())
	if err := srv.sms.Send(ctx, mobile, "您的验证码是 "+code+"，"+strconv.Itoa(minutes)+"分钟内有效。"); err != nil {
		return errors.Wrap(err, "failed to send verification code")
	}
	srv.logger.Info("Verification code issued", slog.String("mobile", mobile))

	return nil
}

// ResetPassword changes the authenticated account's password after the
// one-time code validates, then destroys the session to force a re-login.
func (srv *passportService) ResetPassword(ctx context.Context, sess service.Session, input *usecase.ResetPasswordInput) (*usecase.Outcome, error) {
	principal, err := sess.CurrentPrincipal(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session principal")
	}
	if principal == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	form := resetPasswordForm{
		Mobile:               input.Mobile,
		Code:                 input.Code,
		Password:             input.Password,
		PasswordConfirmation: input.PasswordConfirmation,
	}
	fieldErrs := collectFieldErrors(srv.validate, form)
	if err := srv.checkMobileBound(ctx, input.Mobile, fieldErrs); err != nil {
		return nil, err
	}
	if err := srv.checkCode(ctx, input.Mobile, input.Code, fieldErrs); err != nil {
		return nil, err
	}
	if len(fieldErrs) > 0 {
		return usecase.Redisplay(input.Mobile, fieldErrs), nil
	}

	account, err := srv.accountRepo.FindByID(ctx, principal.AccountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account for password reset")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}
	account.PasswordHash = hash

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to persist new password")
	}

	if err := sess.Destroy(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to destroy session after password reset")
	}
	srv.logger.Info("Password reset, session destroyed", slog.Any("accountID", account.ID))

	outcome := usecase.Redirect(usecase.RouteLogin, msgPasswordChanged)
	outcome.PreselectMode = usecase.LoginModePassword

	return outcome, nil
}

// Logout unconditionally destroys the session principal. Logging out an
// anonymous session is a no-op that still reports success.
func (srv *passportService) Logout(ctx context.Context, sess service.Session) (*usecase.Outcome, error) {
	if err := sess.Destroy(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to destroy session")
	}

	return usecase.Redirect(usecase.RouteHome, msgLoggedOut), nil
}

// commitLogin touches the account's activity timestamp, then establishes the
// principal. Ordered so a failure never leaves a half-established session.
func (srv *passportService) commitLogin(ctx context.Context, sess service.Session, account *entity.Account, durable bool) error {
	account.LastActiveAt = time.Now()
	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return errors.Wrap(err, "failed to touch account activity")
	}

	if err := sess.Establish(ctx, account.ID, durable); err != nil {
		return errors.Wrap(err, "failed to establish session")
	}

	return nil
}

// intendedOrHome resolves the post-login destination. A session read failure
// here only costs the redirect target, not the login itself.
func (srv *passportService) intendedOrHome(ctx context.Context, sess service.Session) string {
	dest, err := sess.IntendedDestination(ctx)
	if err != nil {
		srv.logger.Warn("Failed to read intended destination", slog.Any("error", err))

		return usecase.RouteHome
	}
	if dest == "" {
		return usecase.RouteHome
	}

	return dest
}

// checkMobileUnbound adds a field error when the mobile number was never
// issued a code or already belongs to an account. Used by registration.
func (srv *passportService) checkMobileUnbound(ctx context.Context, mobile string, fieldErrs map[string]string) error {
	if _, taken := fieldErrs[fieldMobile]; taken {
		return nil
	}

	issued, err := srv.codes.WasIssuedFor(ctx, mobile)
	if err != nil {
		return errors.Wrap(err, "failed to check code issuance")
	}
	if !issued {
		fieldErrs[fieldMobile] = msgMobileChanged

		return nil
	}

	_, err = srv.accountRepo.FindByMobile(ctx, mobile)
	if err == nil {
		fieldErrs[fieldMobile] = msgMobileTaken

		return nil
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(err, "failed to find account by mobile")
	}

	return nil
}

// checkMobileBound adds a field error when the mobile number was never issued
// a code or resolves to no account. Used by reset, mirroring code login.
func (srv *passportService) checkMobileBound(ctx context.Context, mobile string, fieldErrs map[string]string) error {
	if _, taken := fieldErrs[fieldMobile]; taken {
		return nil
	}

	issued, err := srv.codes.WasIssuedFor(ctx, mobile)
	if err != nil {
		return errors.Wrap(err, "failed to check code issuance")
	}
	if !issued {
		fieldErrs[fieldMobile] = msgMobileChanged

		return nil
	}

	_, err = srv.accountRepo.FindByMobile(ctx, mobile)
	if errors.Is(err, repository.ErrAccountNotFound) {
		fieldErrs[fieldMobile] = msgMobileNotFound

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find account by mobile")
	}

	return nil
}

// checkCode validates the submitted code against the one-time-code service,
// skipping when the mobile or code field already failed.
func (srv *passportService) checkCode(ctx context.Context, mobile, code string, fieldErrs map[string]string) error {
	if _, bad := fieldErrs[fieldMobile]; bad {
		return nil
	}

	return srv.checkCodeValid(ctx, mobile, code, fieldErrs)
}

func (srv *passportService) checkCodeValid(ctx context.Context, mobile, code string, fieldErrs map[string]string) error {
	if _, bad := fieldErrs[fieldCode]; bad {
		return nil
	}
	if code == "" || mobile == "" {
		return nil
	}

	valid, err := srv.codes.IsValid(ctx, mobile, code)
	if err != nil {
		return errors.Wrap(err, "failed to verify code")
	}
	if !valid {
		fieldErrs[fieldCode] = msgCodeInvalid
	}

	return nil
}
