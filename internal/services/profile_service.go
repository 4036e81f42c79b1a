package services

import (
	"encoding/json"
	"errors"
	"time"

	"fpempleo_backend/internal/models"
	"fpempleo_backend/internal/repositories"
	"fpempleo_backend/internal/services/dto"
	"fpempleo_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type ProfileService struct {
	userRepo repositories.UserRepository
}

func NewProfileService(userRepo repositories.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

func (s *ProfileService) GetOwnProfile(userID string) (*dto.OwnerView, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	view := dto.NewOwnerView(user)
	return &view, nil
}

func (s *ProfileService) UpdateAlumnusProfile(userID string, req dto.UpdateAlumnusProfileRequest) (*dto.OwnerView, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if user.Role != models.UserRoleAlumnus {
		return nil, apperrors.NewForbiddenError("Only alumni can edit an alumnus profile")
	}

	profile := &models.AlumnusProfile{
		UserID:         userID,
		FullName:       req.FullName,
		Phone:          req.Phone,
		City:           req.City,
		FamilyID:       req.FamilyID,
		CycleID:        req.CycleID,
		CenterID:       req.CenterID,
		GraduationYear: req.GraduationYear,
		Skills:         datatypes.JSON(req.Skills),
		Bio:            req.Bio,
	}
	if err := s.userRepo.SaveAlumnusProfile(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.GetOwnProfile(userID)
}

func (s *ProfileService) UpdateCompanyProfile(userID string, req dto.UpdateCompanyProfileRequest) (*dto.OwnerView, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if user.Role != models.UserRoleCompany {
		return nil, apperrors.NewForbiddenError("Only companies can edit a company profile")
	}

	profile := &models.CompanyProfile{
		UserID:       userID,
		Name:         req.Name,
		Sector:       req.Sector,
		Location:     req.Location,
		Website:      req.Website,
		Description:  req.Description,
		ContactPhone: req.ContactPhone,
	}
	if err := s.userRepo.SaveCompanyProfile(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.GetOwnProfile(userID)
}

func (s *ProfileService) GetCV(userID string) (*dto.CVResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if user.Role != models.UserRoleAlumnus {
		return nil, apperrors.NewForbiddenError("Only alumni have a CV")
	}

	return &dto.CVResponse{
		CV:          json.RawMessage(user.CV),
		CVUpdatedAt: user.CVUpdatedAt,
	}, nil
}

func (s *ProfileService) UpdateCV(userID string, req dto.UpdateCVRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}
	if user.Role != models.UserRoleAlumnus {
		return apperrors.NewForbiddenError("Only alumni have a CV")
	}

	if err := s.userRepo.UpdateCV(userID, datatypes.JSON(req.CV), time.Now()); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ProfileService) UpdatePrivacy(userID string, req dto.UpdatePrivacyRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}

	user.ProfilePublic = req.ProfilePublic
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Public directories list only verified accounts that opted in.

func (s *ProfileService) ListPublicAlumni(p dto.Pagination) (*dto.PagedResponse, error) {
	return s.listPublic(models.UserRoleAlumnus, p)
}

func (s *ProfileService) ListPublicCompanies(p dto.Pagination) (*dto.PagedResponse, error) {
	return s.listPublic(models.UserRoleCompany, p)
}

func (s *ProfileService) listPublic(role models.UserRole, p dto.Pagination) (*dto.PagedResponse, error) {
	p.Normalize()
	users, total, err := s.userRepo.FindPublicByRole(role, p.PageSize, (p.Page-1)*p.PageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.PublicDirectoryView, 0, len(users))
	for i := range users {
		views = append(views, dto.NewPublicDirectoryView(&users[i]))
	}

	return &dto.PagedResponse{
		Items:    views,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}

func (s *ProfileService) GetPublicProfile(userID string) (*dto.PublicDirectoryView, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !user.ProfilePublic || !user.IsVerified {
		return nil, apperrors.ErrProfileNotPublic
	}

	view := dto.NewPublicDirectoryView(user)
	return &view, nil
}
