package services

import (
	"errors"
	"time"

	"fpempleo_backend/internal/auth"
	"fpempleo_backend/internal/config"
	"fpempleo_backend/internal/email"
	"fpempleo_backend/internal/logger"
	"fpempleo_backend/internal/models"
	"fpempleo_backend/internal/repositories"
	"fpempleo_backend/internal/services/dto"
	"fpempleo_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type AuthService struct {
	userRepo repositories.UserRepository
	email    email.Provider
}

func NewAuthService(userRepo repositories.UserRepository, emailProvider email.Provider) *AuthService {
	return &AuthService{userRepo: userRepo, email: emailProvider}
}

func (s *AuthService) Register(req dto.RegisterRequest) (*dto.UserResponse, error) {
	if !req.ConsentAccepted {
		return nil, apperrors.ErrConsentRequired
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()
	user := &models.User{
		Email:             req.Email,
		PasswordHash:      hash,
		Role:              models.UserRole(req.Role),
		Status:            models.UserStatusPending,
		VerificationToken: uuid.NewString(),
		ConsentAccepted:   true,
		ConsentAt:         &now,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	switch user.Role {
	case models.UserRoleAlumnus:
		err = s.userRepo.SaveAlumnusProfile(&models.AlumnusProfile{
			UserID:   user.ID,
			FullName: req.Name,
		})
	case models.UserRoleCompany:
		err = s.userRepo.SaveCompanyProfile(&models.CompanyProfile{
			UserID: user.ID,
			Name:   req.Name,
		})
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.email.SendVerification(user.Email, user.VerificationToken); err != nil {
		logger.WithError(err).Warn("failed to send verification email", "user_id", user.ID)
	}

	resp := newUserResponse(user)
	return &resp, nil
}

func (s *AuthService) VerifyEmail(token string) error {
	user, err := s.userRepo.FindByVerificationToken(token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.VerifyUser(user.ID); err != nil {
		return apperrors.InternalError(err)
	}

	name := user.Email
	if user.AlumnusProfile != nil {
		name = user.AlumnusProfile.FullName
	} else if user.CompanyProfile != nil {
		name = user.CompanyProfile.Name
	}
	if err := s.email.SendWelcome(user.Email, name, string(user.Role)); err != nil {
		logger.WithError(err).Warn("failed to send welcome email", "user_id", user.ID)
	}

	return nil
}

func (s *AuthService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, apperrors.ErrUserNotVerified
	}

	if user.TOTPEnabled {
		if req.TOTPCode == "" {
			return nil, apperrors.ErrTOTPRequired
		}
		if !auth.ValidateTOTPCode(req.TOTPCode, user.TOTPSecret) {
			return nil, apperrors.ErrInvalidTOTPCode
		}
	}

	return s.issueTokens(user)
}

func (s *AuthService) Refresh(req dto.RefreshRequest) (*dto.AuthResponse, error) {
	token, err := s.userRepo.FindRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if time.Now().After(token.ExpiresAt) {
		_ = s.userRepo.DeleteRefreshToken(token.Token)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(token.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	// Rotate: one refresh token yields exactly one successor.
	if err := s.userRepo.DeleteRefreshToken(token.Token); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(user)
}

func (s *AuthService) Logout(req dto.LogoutRequest) error {
	if err := s.userRepo.DeleteRefreshToken(req.RefreshToken); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// ForgotPassword always succeeds from the caller's point of view so the
// endpoint cannot be used to enumerate accounts.
func (s *AuthService) ForgotPassword(req dto.ForgotPasswordRequest) error {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	exp := time.Now().Add(1 * time.Hour)
	user.ResetToken = uuid.NewString()
	user.ResetTokenExp = &exp
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.email.SendPasswordReset(user.Email, user.ResetToken); err != nil {
		logger.WithError(err).Warn("failed to send password reset email", "user_id", user.ID)
	}
	return nil
}

func (s *AuthService) ResetPassword(req dto.ResetPasswordRequest) error {
	user, err := s.userRepo.FindByResetToken(req.Token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return err
	}
	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hash
	user.ResetToken = ""
	user.ResetTokenExp = nil
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	// Invalidate all sessions after a password change.
	if err := s.userRepo.DeleteUserRefreshTokens(user.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthService) ChangePassword(userID string, req dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}
	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}
	user.PasswordHash = hash
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

// Second factor enrollment

func (s *AuthService) EnrollTOTP(userID string) (*dto.TOTPEnrollResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	secret, url, err := auth.GenerateTOTPSecret(user.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Stored but not enabled until the first code is confirmed.
	user.TOTPSecret = secret
	user.TOTPEnabled = false
	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TOTPEnrollResponse{Secret: secret, OTPAuthURL: url}, nil
}

func (s *AuthService) ConfirmTOTP(userID string, req dto.ConfirmTOTPRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}
	if user.TOTPSecret == "" {
		return apperrors.NewBadRequestError("No pending second factor enrollment")
	}
	if !auth.ValidateTOTPCode(req.Code, user.TOTPSecret) {
		return apperrors.ErrInvalidTOTPCode
	}

	user.TOTPEnabled = true
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthService) DisableTOTP(userID string, req dto.DisableTOTPRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}
	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	user.TOTPSecret = ""
	user.TOTPEnabled = false
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthService) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	cfg := config.GetConfig()
	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(time.Duration(cfg.Scheduler.RefreshTokenTTL) * time.Hour),
	}
	if err := s.userRepo.CreateRefreshToken(refresh); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refresh.Token,
		User:         newUserResponse(user),
	}, nil
}

func newUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Role:          string(user.Role),
		IsVerified:    user.IsVerified,
		ProfilePublic: user.ProfilePublic,
		TOTPEnabled:   user.TOTPEnabled,
	}
}
