package impl

import (
	"context"
	"testing"
	"time"

	"bookswap/config"
	"bookswap/internal/domain/entity"
	domainerrors "bookswap/internal/domain/errors"
	"bookswap/internal/domain/repository"
	mockRepo "bookswap/internal/mocks/repository"
	mockService "bookswap/internal/mocks/service"
	"bookswap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// passportServiceFixtures holds all test dependencies for passport service tests.
type passportServiceFixtures struct {
	service     usecase.PassportUsecase
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockService.MockPasswordHasher
	codes       *mockService.MockCodeService
	sms         *mockService.MockSmsSender
	session     *mockService.MockSession
}

func createTestPassportService(t *testing.T) passportServiceFixtures {
	return createTestPassportServiceWithConfig(t, false)
}

func createTestPassportServiceWithConfig(t *testing.T, simulate bool) passportServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	codes := mockService.NewMockCodeService(t)
	sms := mockService.NewMockSmsSender(t)
	session := mockService.NewMockSession(t)

	service := NewPassportService(PassportServiceParams{
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Codes:       codes,
		Sms:         sms,
		Config:      newTestConfig(simulate),
		Logger:      newDiscardLogger(),
	})

	return passportServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
		hasher:      hasher,
		codes:       codes,
		sms:         sms,
		session:     session,
	}
}

func testAccount(mobile string) *entity.Account {
	return &entity.Account{
		ID:           uuid.New(),
		Mobile:       mobile,
		PasswordHash: "$2a$12$stored-hash",
		Name:         entity.PlaceholderName(mobile),
		LastActiveAt: time.Now().Add(-time.Hour),
	}
}

func TestPassportService_Register_Success(t *testing.T) {
	fx := createTestPassportService(t)

	ctx := context.Background()
	mobile := "13812345678"

	fx.codes.EXPECT().WasIssuedFor(ctx, mobile).Return(true, nil)
	fx.accountRepo.EXPECT().FindByMobile(ctx, mobile).Return(nil, repository.ErrAccountNotFound)
	fx.codes.EXPECT().IsValid(ctx, mobile, "654321").Return(true, nil)
	fx.hasher.EXPECT().Hash("secret123").Return("hashed-password", nil)

	var created *entity.Account
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) {
			account.ID = uuid.New()
			created = account
		}).
		Return(nil)

	fx.session.EXPECT().Establish(ctx, mock.AnythingOfType("uuid.UUID"), false).Return(nil)

	out, err := fx.service.Register(ctx, fx.session, nil, &usecase.RegisterInput{
		Mobile:   mobile,
		Code:     "654321",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, usecase.OutcomeRedirect, out.Kind)
	assert.Equal(t, usecase.RouteHome, out.Location)
	assert.Equal(t, msgRegistered, out.Notice)

	require.NotNil(t, created)
	assert.Equal(t, mobile, created.Mobile)
	assert.Equal(t, "hashed-password", created.PasswordHash)
	assert.Equal(t, "手机用户5678", created.Name)
	assert.Empty(t, created.OpenID)
}

func TestPassportService_Register_BindsPendingIdentity(t *testing.T) {
	fx := createTestPassportService(t)

	ctx := context.Background()
	mobile := "13812345678"
	pending := &entity.PendingIdentity{
		OpenID: "wx-openid-1",
		Name:   "微信昵称",
		Avatar: "https://example.com/avatar.png",
	}

	fx.codes.EXPECT().WasIssuedFor(ctx, mobile).Return(true, nil)
	fx.accountRepo.EXPECT().FindByMobile(ctx, mobile).Return(nil, repository.ErrAccountNotFound)
	fx.codes.EXPECT().IsValid(ctx, mobile, "654321").Return(true, nil)
	fx.hasher.EXPECT().Hash("secret123").Return("hashed-password", nil)

	var created *entity.Account
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) {
			account.ID = uuid.New()
			created = account
		}).
		Return(nil)

	fx.session.EXPECT().Establish(ctx, mock.AnythingOfType("uuid.UUID"), false).Return(nil)

	out, err := fx.service.Register(ctx, fx.session, pending, &usecase.RegisterInput{
		Mobile:   mobile,
		Code:     "654321",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeRedirect, out.Kind)

	// Verified identity profile wins over the generated placeholder.
	require.NotNil(t, created)
	assert.Equal(t, "wx-openid-1", created.OpenID)
	assert.Equal(t, "微信昵称", created.Name)
	assert.Equal(t, "https://example.com/avatar.png", created.Avatar)
	assert.True(t, created.IsIdentityBound())
}

func TestPassportService_Register_MobileAlreadyTaken(t *testing.T) {
	fx := createTestPassportService(t)

	ctx := context.Background()
	mobile := "13812345678"

	fx.codes.EXPECT().WasIssuedFor(ctx, mobile).Return(true, nil)
	fx.accountRepo.EXPECT().FindByMobile(ctx, mobile).Return(testAccount(mobile), nil)

	out, err := fx.service.Register(ctx, fx.session, nil, &usecase.RegisterInput{
		Mobile:   mobile,
		Code:     "654321",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeRedisplay, out.Kind)
	assert.Equal(t, mobile, out.Mobile)
	assert.Equal(t, msgMobileTaken, out.FieldErrors[fieldMobile])
}

func TestPassportService_Register_DuplicateMobileRace(t *testing.T) {
	fx := createTestPassportService(t)

	ctx := context.Background()
	mobile := "13812345678"

	fx.codes.EXPECT().WasIssuedFor(ctx, mobile).Return(true, nil)
	fx.accountRepo.EXPECT().FindByMobile(ctx, mobile).Return(nil, repository.ErrAccountNotFound)
	fx.codes.EXPECT().IsValid(ctx, mobile, "654321").Return(true, nil)
	fx.hasher.EXPECT().Hash("secret123").Return("hashed-password", nil)

	// A concurrent registration won the insert. The conflict surfaces as a
	// field error, not a failure, and no session is established.
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(repository.ErrDuplicateMobile)

	out, err := fx.service.Register(ctx, fx.session, nil, &usecase.RegisterInput{
		Mobile:   mobile,
		Code:     "654321",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeRedisplay, out.Kind)
	assert.Equal(t, msgMobileTaken, out.FieldErrors[fieldMobile])
	fx.session.AssertNotCalled(t, "Establish", mock.Anything, mock.Anything, mock.Anything)
}

func TestPassportService_Register_InvalidForm(t *testing.T) {
	fx := createTestPassportService(t)

	ctx := context.Background()

	// Malformed mobile short-circuits every collaborator lookup.
	out, err := fx.service.Register(ctx, fx.session, nil, &usecase.RegisterInput{
		Mobile:   "12345",
		Code:     "",
		Password: "short",
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeRedisplay, out.Kind)
	assert.Equal(t, "12345", out.Mobile)
	assert.Equal(t, "手机号格式不正确", out.FieldErrors[fieldMobile])
	assert.Equal(t, "请输入验证码", out.FieldErrors[fieldCode])
	assert.Equal(t, "密码长度不能少于6位", out.FieldErrors[fieldPassword])
	fx.accountRepo.AssertNotCalled(t, "FindByMobile", mock.Anything, mock.Anything)
	fx.codes.AssertNotCalled(t, "WasIssuedFor", mock.Anything, mock.Anything)
}

func TestPassportService_Register_CodeIssuedForOtherNumber(t *testing.T) {
	fx := createTestPassportService(t)

	ctx := context.Background()
	mobile := "13812345678"

	fx.codes.EXPECT().WasIssuedFor(ctx, mobile).Return(false, nil)

	out, err := fx.service.Register(ctx, fx.session, nil, &usecase.RegisterInput{
		Mobile:   mobile,
		Code:     "654321",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeRedisplay, out.Kind)
	assert.Equal(t, msgMobileChanged, out.FieldErrors[fieldMobile])
}

func TestPassportService_Login_UnrecognizedMode(t *testing.T) {
	fx := createTestPassportService(t)

	ctx := context.Background()

	for _, mode := range []string{"", "sms", "oauth", "PASSWORD"} {
		out, err := fx.service.Login(ctx, fx.session, &usecase.LoginInput{
			Mode:     mode,
			Mobile:   "13812345678",
			Password: "secret123",
		})
		require.Error(t, err)
		assert.Nil(t, out)
		assert.True(t, errors.Is(err, domainerrors.ErrUnrecognizedLoginMode))
	}
}

func TestPassportService_Login_PasswordSuccess(t *testing.T) {
	fx := createTestPassportService(t)

	ctx := context.Background()
	mobile := "13812345678"
	account := testAccount(mobile)
	before := account.LastActiveAt

	fx.accountRepo.EXPECT().FindByMobile(ctx, mobile).Return(account, nil)
	fx.hasher.EXPECT().Check("secret123", account.PasswordHash).Return(true)
	fx.accountRepo.EXPECT().Update(ctx, account).Return(nil)
	fx.session.EXPECT().Establish(ctx, account.ID, true).Return(nil)
	fx.session.EXPECT().IntendedDestination(ctx).Return("", nil)

	out, err := fx.service.Login(ctx, fx.session, &usecase.LoginInput{
		Mode:     string(usecase.LoginModePassword),
		Mobile:   mobile,
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeRedirect, out.Kind)
	assert.Equal(t, usecase.RouteHome, out.Location)
	assert.Equal(t, msgWelcomeBack, out.Notice)
	assert.True(t, account.LastActiveAt.After(before))
}

func TestPassportService_Login_PasswordReturnsToIntendedDestination(t *testing.T) {
	fx := createTestPassportService(t)

	ctx := context.Background()
	mobile := "13812345678"
	account := testAccount(mobile)

	fx.accountRepo.EXPECT().FindByMobile(ctx, mobile).Return(account, nil)
	fx.hasher.EXPECT().Check("secret123", account.PasswordHash).Return(true)
	fx.accountRepo.EXPECT().Update(ctx, account).Return(nil)
	fx.session.EXPECT().Establish(ctx, account.ID, true).Return(nil)
	fx.session.EXPECT().IntendedDestination(ctx).Return("/passport/forgot", nil)

	out, err := fx.service.Login(ctx, fx.session, &usecase.LoginInput{
		Mode:     string(usecase.LoginModePassword),
		Mobile:   mobile,
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "/passport/forgot", out.Location)
}

func TestPassportService_Login_PasswordFailureIsNotEnumerable(t *testing.T) {
	ctx := context.Background()
	unknownMobile := "13800000000"
	knownMobile := "13811111111"

	// Unknown account.
	fxMissing := createTestPassportService(t)
	fxMissing.accountRepo.EXPECT().
		FindByMobile(ctx, unknownMobile).
		Return(nil, repository.ErrAccountNotFound)

	missingOut, err := fxMissing.service.Login(ctx, fxMissing.session, &usecase.LoginInput{
		Mode:     string(usecase.LoginModePassword),
		Mobile:   unknownMobile,
		Password: "secret123",
	})
	require.NoError(t, err)

	// Known account, wrong password.
	fxWrong := createTestPassportService(t)
	account := testAccount(knownMobile)
	fxWrong.accountRepo.EXPECT().FindByMobile(ctx, knownMobile).Return(account, nil)
	fxWrong.hasher.EXPECT().Check("wrong-pass", account.PasswordHash).Return(false)

	wrongOut, err := fxWrong.service.Login(ctx, fxWrong.session, &usecase.LoginInput{
		Mode:     string(usecase.LoginModePassword),
		Mobile:   knownMobile,
		Password: "wrong-pass",
	})
	require.NoError(t, err)

	// Same outcome shape either way; only the echoed mobile differs.
	assert.Equal(t, usecase.OutcomeRedisplay, missingOut.Kind)
	assert.Equal(t, usecase.OutcomeRedisplay, wrongOut.Kind)
	assert.Equal(t, missingOut.FieldErrors, wrongOut.FieldErrors)
	assert.Equal(t, msgLoginFailed, missingOut.FieldErrors[fieldLogin])

	fxMissing.session.AssertNotCalled(t, "Establish", mock.Anything, mock.Anything, mock.Anything)
	fxWrong.session.AssertNotCalled(t, "Establish", mock.Anything, mock.Anything, mock.Anything)
}

func TestPassportService_Login_CodeSuccess(t *testing.T) {
	fx := createTestPassportService(t)

	ctx := context.Background()
	mobile := "13812345678"
	account := testAccount(mobile)

	fx.codes.EXPECT().WasIssuedFor(ctx, mobile).Return(true, nil)
	fx.accountRepo.EXPECT().FindByMobile(ctx, mobile).Return(account, nil)
	fx.codes.EXPECT().IsValid(ctx, mobile, "654321").Return(true, nil)
	fx.accountRepo.EXPECT().Update(ctx, account).Return(nil)
	fx.session.EXPECT().Establish(ctx, account.ID, true).Return(nil)
	fx.session.EXPECT().IntendedDestination(ctx).Return("", nil)

	out, err := fx.service.Login(ctx, fx.session, &usecase.LoginInput{
		Mode:   string(usecase.LoginModeCode),
		Mobile: mobile,
		Code:   "654321",
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeRedirect, out.Kind)
	assert.Equal(t, msgWelcomeBack, out.Notice)
}

func TestPassportService_Login_CodeNeverRegisters(t *testing.T) {
	fx := createTestPassportService(t)

	ctx := context.Background()
	mobile := "13812345678"

	fx.codes.EXPECT().WasIssuedFor(ctx, mobile).Return(true, nil)
	fx.accountRepo.EXPECT().FindByMobile(ctx, mobile).Return(nil, repository.ErrAccountNotFound)

	out, err := fx.service.Login(ctx, fx.session, &usecase.LoginInput{
		Mode:   string(usecase.LoginModeCode),
		Mobile: mobile,
		Code:   "654321",
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeRedisplay, out.Kind)
	assert.Equal(t, msgMobileNotFound, out.FieldErrors[fieldMobile])
	fx.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.session.AssertNotCalled(t, "Establish", mock.Anything, mock.Anything, mock.Anything)
}

func TestPassportService_Login_CodeInvalid(t *testing.T) {
	fx := createTestPassportService(t)

	ctx := context.Background()
	mobile := "13812345678"
	account := testAccount(mobile)

	fx.codes.EXPECT().WasIssuedFor(ctx, mobile).Return(true, nil)
	fx.accountRepo.EXPECT().FindByMobile(ctx, mobile).Return(account, nil)
	fx.codes.EXPECT().IsValid(ctx, mobile, "000000").Return(false, nil)

	out, err := fx.service.Login(ctx, fx.session, &usecase.LoginInput{
		Mode:   string(usecase.LoginModeCode),
		Mobile: mobile,
		Code:   "000000",
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeRedisplay, out.Kind)
	assert.Equal(t, msgCodeInvalid, out.FieldErrors[fieldCode])
}

func TestPassportService_RequestCode_Success(t *testing.T) {
	fx := createTestPassportService(t)

	ctx := context.Background()
	mobile := "13812345678"

	fx.codes.EXPECT().Issue(ctx, mobile).Return("246813", nil)
	fx.sms.EXPECT().Send(ctx, mobile, "您的验证码是 246813，10分钟内有效。").Return(nil)

	out, err := fx.service.RequestCode(ctx, &usecase.RequestCodeInput{Mobile: mobile})
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeRender, out.Kind)
	assert.Equal(t, msgCodeSent, out.Notice)
}

func TestPassportService_RequestCode_SmsTextFollowsConfiguredTTL(t *testing.T) {
	codes := mockService.NewMockCodeService(t)
	sms := mockService.NewMockSmsSender(t)

	cfg := newTestConfig(false)
	cfg.Sms = &config.SmsConfig{CodeTTL: 5 * time.Minute}
	service := NewPassportService(PassportServiceParams{
		AccountRepo: mockRepo.NewMockAccountRepository(t),
		Hasher:      mockService.NewMockPasswordHasher(t),
		Codes:       codes,
		Sms:         sms,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})

	ctx := context.Background()
	mobile := "13812345678"
	codes.EXPECT().Issue(ctx, mobile).Return("246813", nil)
	sms.EXPECT().Send(ctx, mobile, "您的验证码是 246813，5分钟内有效。").Return(nil)

	out, err := service.RequestCode(ctx, &usecase.RequestCodeInput{Mobile: mobile})
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeRender, out.Kind)
}

func TestPassportService_RequestCode_InvalidMobile(t *testing.T) {
	fx := createTestPassportService(t)

	out, err := fx.service.RequestCode(context.Background(), &usecase.RequestCodeInput{Mobile: "not-a-number"})
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeRedisplay, out.Kind)
	assert.Equal(t, "手机号格式不正确", out.FieldErrors[fieldMobile])
	fx.codes.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestPassportService_RequestCode_IssueFailure(t *testing.T) {
	fx := createTestPassportService(t)

	ctx := context.Background()
	mobile := "13812345678"

	fx.codes.EXPECT().Issue(ctx, mobile).Return("", errors.New("redis down"))

	out, err := fx.service.RequestCode(ctx, &usecase.RequestCodeInput{Mobile: mobile})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrCodeIssueFailed))
	fx.sms.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestPassportService_ResetPassword_RequiresPrincipal(t *testing.T) {
	fx := createTestPassportService(t)

	ctx := context.Background()
	fx.session.EXPECT().CurrentPrincipal(ctx).Return(nil, nil)

	out, err := fx.service.ResetPassword(ctx, fx.session, &usecase.ResetPasswordInput{
		Mobile:               "13812345678",
		Code:                 "654321",
		Password:             "newsecret",
		PasswordConfirmation: "newsecret",
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestPassportService_ResetPassword_Success(t *testing.T) {
	fx := createTestPassportService(t)

	ctx := context.Background()
	mobile := "13812345678"
	account := testAccount(mobile)
	principal := &entity.Principal{AccountID: account.ID, Durable: true}

	fx.session.EXPECT().CurrentPrincipal(ctx).Return(principal, nil)
	fx.codes.EXPECT().WasIssuedFor(ctx, mobile).Return(true, nil)
	fx.accountRepo.EXPECT().FindByMobile(ctx, mobile).Return(account, nil)
	fx.codes.EXPECT().IsValid(ctx, mobile, "654321").Return(true, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.hasher.EXPECT().Hash("newsecret").Return("new-hash", nil)
	fx.accountRepo.EXPECT().Update(ctx, account).Return(nil)
	fx.session.EXPECT().Destroy(ctx).Return(nil)

	out, err := fx.service.ResetPassword(ctx, fx.session, &usecase.ResetPasswordInput{
		Mobile:               mobile,
		Code:                 "654321",
		Password:             "newsecret",
		PasswordConfirmation: "newsecret",
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeRedirect, out.Kind)
	assert.Equal(t, usecase.RouteLogin, out.Location)
	assert.Equal(t, msgPasswordChanged, out.Notice)
	assert.Equal(t, usecase.LoginModePassword, out.PreselectMode)
	assert.Equal(t, "new-hash", account.PasswordHash)
}

func TestPassportService_ResetPassword_ConfirmationMismatch(t *testing.T) {
	fx := createTestPassportService(t)

	ctx := context.Background()
	mobile := "13812345678"
	account := testAccount(mobile)
	principal := &entity.Principal{AccountID: account.ID}

	fx.session.EXPECT().CurrentPrincipal(ctx).Return(principal, nil)
	fx.codes.EXPECT().WasIssuedFor(ctx, mobile).Return(true, nil)
	fx.accountRepo.EXPECT().FindByMobile(ctx, mobile).Return(account, nil)
	fx.codes.EXPECT().IsValid(ctx, mobile, "654321").Return(true, nil)

	out, err := fx.service.ResetPassword(ctx, fx.session, &usecase.ResetPasswordInput{
		Mobile:               mobile,
		Code:                 "654321",
		Password:             "newsecret",
		PasswordConfirmation: "different",
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeRedisplay, out.Kind)
	assert.Equal(t, "两次输入的密码不一致", out.FieldErrors[fieldPassword])
	fx.session.AssertNotCalled(t, "Destroy", mock.Anything)
}

func TestPassportService_ShowForgot_RequiresPrincipal(t *testing.T) {
	fx := createTestPassportService(t)

	ctx := context.Background()
	fx.session.EXPECT().CurrentPrincipal(ctx).Return(nil, nil)

	out, err := fx.service.ShowForgot(ctx, fx.session, true)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestPassportService_ShowForgot_PrefillsOwnMobile(t *testing.T) {
	fx := createTestPassportService(t)

	ctx := context.Background()
	account := testAccount("13812345678")
	principal := &entity.Principal{AccountID: account.ID, Durable: true}

	fx.session.EXPECT().CurrentPrincipal(ctx).Return(principal, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	out, err := fx.service.ShowForgot(ctx, fx.session, false)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeRender, out.Kind)
	assert.Equal(t, "13812345678", out.Mobile)
	assert.Empty(t, out.Notice)
	fx.codes.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
	fx.sms.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestPassportService_ShowForgot_AutoSendsCode(t *testing.T) {
	fx := createTestPassportService(t)

	ctx := context.Background()
	account := testAccount("13812345678")
	principal := &entity.Principal{AccountID: account.ID, Durable: true}

	fx.session.EXPECT().CurrentPrincipal(ctx).Return(principal, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.codes.EXPECT().Issue(ctx, account.Mobile).Return("246813", nil)
	fx.sms.EXPECT().Send(ctx, account.Mobile, "您的验证码是 246813，10分钟内有效。").Return(nil)

	out, err := fx.service.ShowForgot(ctx, fx.session, true)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeRender, out.Kind)
	assert.Equal(t, account.Mobile, out.Mobile)
	assert.Equal(t, msgCodeSent, out.Notice)
}

func TestPassportService_Logout_DestroysSession(t *testing.T) {
	fx := createTestPassportService(t)

	ctx := context.Background()
	fx.session.EXPECT().Destroy(ctx).Return(nil)

	out, err := fx.service.Logout(ctx, fx.session)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeRedirect, out.Kind)
	assert.Equal(t, usecase.RouteHome, out.Location)
	assert.Equal(t, msgLoggedOut, out.Notice)
}

func TestPassportService_Logout_Idempotent(t *testing.T) {
	fx := createTestPassportService(t)

	ctx := context.Background()
	fx.session.EXPECT().Destroy(ctx).Return(nil).Times(2)

	first, err := fx.service.Logout(ctx, fx.session)
	require.NoError(t, err)
	second, err := fx.service.Logout(ctx, fx.session)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPassportService_ShowLogin_NoPendingIdentity(t *testing.T) {
	fx := createTestPassportService(t)

	out, err := fx.service.ShowLogin(context.Background(), fx.session, nil)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeRender, out.Kind)
	fx.accountRepo.AssertNotCalled(t, "FindByOpenID", mock.Anything, mock.Anything)
}

func TestPassportService_ShowLogin_PendingIdentityLogsIn(t *testing.T) {
	fx := createTestPassportService(t)

	ctx := context.Background()
	account := testAccount("13812345678")
	pending := &entity.PendingIdentity{OpenID: "wx-openid-1", Name: "微信昵称"}

	fx.accountRepo.EXPECT().FindByOpenID(ctx, "wx-openid-1").Return(account, nil)
	fx.accountRepo.EXPECT().Update(ctx, account).Return(nil)
	fx.session.EXPECT().Establish(ctx, account.ID, true).Return(nil)
	fx.session.EXPECT().IntendedDestination(ctx).Return("", nil)

	out, err := fx.service.ShowLogin(ctx, fx.session, pending)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeRedirect, out.Kind)
	assert.Equal(t, usecase.RouteHome, out.Location)
	assert.Equal(t, msgOAuthLoginOK, out.Notice)
}

func TestPassportService_ShowLogin_UnknownIdentityForwardsToRegister(t *testing.T) {
	fx := createTestPassportService(t)

	ctx := context.Background()
	pending := &entity.PendingIdentity{OpenID: "wx-openid-unbound"}

	fx.accountRepo.EXPECT().
		FindByOpenID(ctx, "wx-openid-unbound").
		Return(nil, repository.ErrAccountNotFound)

	out, err := fx.service.ShowLogin(ctx, fx.session, pending)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeRedirect, out.Kind)
	assert.Equal(t, usecase.RouteRegister, out.Location)
	assert.Equal(t, msgOAuthNeedsRegister, out.Notice)
	fx.session.AssertNotCalled(t, "Establish", mock.Anything, mock.Anything, mock.Anything)
}

func TestPassportService_ShowLogin_TrustedLocalSkipsAutoBind(t *testing.T) {
	fx := createTestPassportServiceWithConfig(t, true)

	pending := &entity.PendingIdentity{OpenID: "wx-openid-1"}

	out, err := fx.service.ShowLogin(context.Background(), fx.session, pending)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeRender, out.Kind)
	fx.accountRepo.AssertNotCalled(t, "FindByOpenID", mock.Anything, mock.Anything)
}

func TestPassportService_ShowRegister_CarriesPendingIdentity(t *testing.T) {
	fx := createTestPassportService(t)

	pending := &entity.PendingIdentity{OpenID: "wx-openid-1", Name: "微信昵称"}

	out, err := fx.service.ShowRegister(context.Background(), pending)
	require.NoError(t, err)
	assert.Equal(t, usecase.OutcomeRender, out.Kind)
	assert.Equal(t, pending, out.Pending)

	plain, err := fx.service.ShowRegister(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, plain.Pending)
}
