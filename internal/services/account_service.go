package services

import (
	"errors"

	"fpempleo_backend/internal/logger"
	"fpempleo_backend/internal/models"
	"fpempleo_backend/internal/repositories"
	"fpempleo_backend/pkg/apperrors"
)

type AccountService struct {
	userRepo repositories.UserRepository
}

func NewAccountService(userRepo repositories.UserRepository) *AccountService {
	return &AccountService{userRepo: userRepo}
}

// EraseOwnAccount removes the caller's account and every dependent record.
// Administrators cannot erase themselves through this path.
func (s *AccountService) EraseOwnAccount(userID string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}
	if user.Role == models.UserRoleAdmin {
		return apperrors.ErrCannotEraseSelf
	}

	if err := s.userRepo.EraseUser(userID); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("account erased", "user_id", userID, "role", string(user.Role))
	return nil
}

// AdminEraseUser removes any non-admin account on behalf of an
// administrator.
func (s *AccountService) AdminEraseUser(adminID, targetID string) error {
	if adminID == targetID {
		return apperrors.ErrCannotEraseSelf
	}

	target, err := s.userRepo.FindByID(targetID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if target.Role == models.UserRoleAdmin {
		return apperrors.ErrCannotEraseAdmin
	}

	if err := s.userRepo.EraseUser(targetID); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("account erased by admin", "user_id", targetID, "admin_id", adminID)
	return nil
}
