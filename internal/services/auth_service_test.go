package services

import (
	"testing"
	"time"

	"fpempleo_backend/internal/auth"
	"fpempleo_backend/internal/config"
	"fpempleo_backend/internal/models"
	"fpempleo_backend/internal/services/dto"
	"fpempleo_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Scheduler.RefreshTokenTTL = 24
	config.AppConfig = cfg
}

func validRegisterRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:           "ana@example.com",
		Password:        "correct-horse",
		Role:            "alumnus",
		ConsentAccepted: true,
		Name:            "Ana García",
	}
}

func TestRegisterRequiresConsent(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), &fakeEmailProvider{})

	req := validRegisterRequest()
	req.ConsentAccepted = false

	_, err := svc.Register(req)
	assert.ErrorIs(t, err, apperrors.ErrConsentRequired)
}

func TestRegisterCreatesUnverifiedAccount(t *testing.T) {
	userRepo := newFakeUserRepo()
	mailer := &fakeEmailProvider{}
	svc := NewAuthService(userRepo, mailer)

	resp, err := svc.Register(validRegisterRequest())
	require.NoError(t, err)
	assert.False(t, resp.IsVerified)

	user, err := userRepo.FindByEmail("ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAlumnus, user.Role)
	assert.True(t, user.ConsentAccepted)
	require.NotNil(t, user.ConsentAt)
	assert.NotEmpty(t, user.VerificationToken)
	require.NotNil(t, user.AlumnusProfile)
	assert.Equal(t, "Ana García", user.AlumnusProfile.FullName)

	assert.Equal(t, []string{"ana@example.com"}, mailer.sentTo("verification"))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), &fakeEmailProvider{})

	_, err := svc.Register(validRegisterRequest())
	require.NoError(t, err)

	_, err = svc.Register(validRegisterRequest())
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestVerifyEmailActivatesAccount(t *testing.T) {
	userRepo := newFakeUserRepo()
	mailer := &fakeEmailProvider{}
	svc := NewAuthService(userRepo, mailer)

	_, err := svc.Register(validRegisterRequest())
	require.NoError(t, err)
	user, _ := userRepo.FindByEmail("ana@example.com")

	require.NoError(t, svc.VerifyEmail(user.VerificationToken))
	assert.True(t, user.IsVerified)
	assert.Equal(t, []string{"ana@example.com"}, mailer.sentTo("welcome"))

	assert.ErrorIs(t, svc.VerifyEmail("bogus"), apperrors.ErrInvalidToken)
}

func TestLoginFlow(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, &fakeEmailProvider{})

	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	userRepo.add(&models.User{
		BaseModel:    models.BaseModel{ID: "alumnus-1"},
		Email:        "ana@example.com",
		PasswordHash: hash,
		Role:         models.UserRoleAlumnus,
		IsVerified:   true,
	})

	resp, err := svc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	claims, err := auth.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alumnus-1", claims.UserID)
	assert.Equal(t, models.UserRoleAlumnus, claims.Role)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, &fakeEmailProvider{})

	hash, _ := auth.HashPassword("correct-horse")
	userRepo.add(&models.User{
		BaseModel:    models.BaseModel{ID: "alumnus-1"},
		Email:        "ana@example.com",
		PasswordHash: hash,
		Role:         models.UserRoleAlumnus,
		IsVerified:   true,
	})

	_, err := svc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginRejectsUnverifiedAccount(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, &fakeEmailProvider{})

	hash, _ := auth.HashPassword("correct-horse")
	userRepo.add(&models.User{
		BaseModel:    models.BaseModel{ID: "alumnus-1"},
		Email:        "ana@example.com",
		PasswordHash: hash,
		Role:         models.UserRoleAlumnus,
	})

	_, err := svc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotVerified)
}

func TestLoginRequiresSecondFactorWhenEnabled(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, &fakeEmailProvider{})

	hash, _ := auth.HashPassword("correct-horse")
	userRepo.add(&models.User{
		BaseModel:    models.BaseModel{ID: "alumnus-1"},
		Email:        "ana@example.com",
		PasswordHash: hash,
		Role:         models.UserRoleAlumnus,
		IsVerified:   true,
		TOTPEnabled:  true,
		TOTPSecret:   "JBSWY3DPEHPK3PXP",
	})

	_, err := svc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, apperrors.ErrTOTPRequired)

	_, err = svc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "correct-horse", TOTPCode: "000000"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidTOTPCode)
}

func TestForgotPasswordDoesNotLeakAccounts(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), &fakeEmailProvider{})

	// Unknown address: still no error.
	assert.NoError(t, svc.ForgotPassword(dto.ForgotPasswordRequest{Email: "nobody@example.com"}))
}

func TestResetPasswordInvalidToken(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), &fakeEmailProvider{})

	err := svc.ResetPassword(dto.ResetPasswordRequest{Token: "bogus", NewPassword: "new-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestResetPasswordUpdatesHash(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, &fakeEmailProvider{})

	hash, _ := auth.HashPassword("old-password")
	exp := time.Now().Add(time.Hour)
	userRepo.add(&models.User{
		BaseModel:     models.BaseModel{ID: "alumnus-1"},
		Email:         "ana@example.com",
		PasswordHash:  hash,
		Role:          models.UserRoleAlumnus,
		IsVerified:    true,
		ResetToken:    "reset-token",
		ResetTokenExp: &exp,
	})

	require.NoError(t, svc.ResetPassword(dto.ResetPasswordRequest{Token: "reset-token", NewPassword: "new-password"}))

	user, _ := userRepo.FindByID("alumnus-1")
	assert.True(t, auth.CheckPasswordHash("new-password", user.PasswordHash))
	assert.Empty(t, user.ResetToken)
}

func TestTOTPEnrollAndDisable(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, &fakeEmailProvider{})

	hash, _ := auth.HashPassword("correct-horse")
	userRepo.add(&models.User{
		BaseModel:    models.BaseModel{ID: "alumnus-1"},
		Email:        "ana@example.com",
		PasswordHash: hash,
		Role:         models.UserRoleAlumnus,
		IsVerified:   true,
	})

	resp, err := svc.EnrollTOTP("alumnus-1")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Secret)
	assert.Contains(t, resp.OTPAuthURL, "otpauth://")

	// Enrollment alone does not enable the factor.
	user, _ := userRepo.FindByID("alumnus-1")
	assert.False(t, user.TOTPEnabled)

	// Confirming with a wrong code fails.
	err = svc.ConfirmTOTP("alumnus-1", dto.ConfirmTOTPRequest{Code: "000000"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidTOTPCode)

	// Disabling requires the password.
	user.TOTPEnabled = true
	err = svc.DisableTOTP("alumnus-1", dto.DisableTOTPRequest{Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	require.NoError(t, svc.DisableTOTP("alumnus-1", dto.DisableTOTPRequest{Password: "correct-horse"}))
	user, _ = userRepo.FindByID("alumnus-1")
	assert.False(t, user.TOTPEnabled)
	assert.Empty(t, user.TOTPSecret)
}
