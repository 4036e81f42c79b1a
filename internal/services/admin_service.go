package services

import (
	"fpempleo_backend/internal/models"
	"fpempleo_backend/internal/repositories"
	"fpempleo_backend/internal/services/dto"
	"fpempleo_backend/pkg/apperrors"
)

type AdminService struct {
	userRepo     repositories.UserRepository
	jobRepo      repositories.JobRepository
	appRepo      repositories.ApplicationRepository
	settingsRepo repositories.SettingsRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	appRepo repositories.ApplicationRepository,
	settingsRepo repositories.SettingsRepository,
) *AdminService {
	return &AdminService{
		userRepo:     userRepo,
		jobRepo:      jobRepo,
		appRepo:      appRepo,
		settingsRepo: settingsRepo,
	}
}

func (s *AdminService) ListUsers(query dto.AdminUserQuery) (*dto.PagedResponse, error) {
	query.Normalize()
	users, total, err := s.userRepo.FindWithFilter(repositories.UserFilter{
		Role:       models.UserRole(query.Role),
		Status:     models.UserStatus(query.Status),
		IsVerified: query.Verified,
		Search:     query.Search,
		Page:       query.Page,
		PageSize:   query.PageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.OwnerView, 0, len(users))
	for i := range users {
		views = append(views, dto.NewOwnerView(&users[i]))
	}

	return &dto.PagedResponse{
		Items:    views,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}

func (s *AdminService) ListJobs(query dto.JobSearchQuery) (*dto.PagedResponse, error) {
	query.Normalize()
	jobs, total, err := s.jobRepo.FindWithFilter(repositories.JobSearchCriteria{
		Query:    query.Query,
		Location: query.Location,
		JobType:  models.JobType(query.JobType),
		FamilyID: query.FamilyID,
		CycleID:  query.CycleID,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pagedJobs(jobs, total, query.Pagination), nil
}

func (s *AdminService) Stats() (*dto.AdminStatsResponse, error) {
	alumni, err := s.userRepo.CountByRole(models.UserRoleAlumnus)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	companies, err := s.userRepo.CountByRole(models.UserRoleCompany)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	totalJobs, err := s.jobRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	activeJobs, err := s.jobRepo.CountActive()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	totalApps, err := s.appRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	byStatus, err := s.appRepo.CountByStatus()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	statuses := make(map[string]int64, len(byStatus))
	for status, count := range byStatus {
		statuses[string(status)] = count
	}

	return &dto.AdminStatsResponse{
		TotalAlumni:         alumni,
		TotalCompanies:      companies,
		TotalJobs:           totalJobs,
		ActiveJobs:          activeJobs,
		TotalApplications:   totalApps,
		ApplicationsByState: statuses,
	}, nil
}

func (s *AdminService) GetSMTPSettings() (*models.SMTPSettings, error) {
	settings, err := s.settingsRepo.GetSMTPSettings()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return settings, nil
}

func (s *AdminService) UpdateSMTPSettings(req dto.UpdateSMTPSettingsRequest) (*models.SMTPSettings, error) {
	settings := &models.SMTPSettings{
		Host:     req.Host,
		Port:     req.Port,
		Username: req.Username,
		Password: req.Password,
		From:     req.From,
		UseTLS:   req.UseTLS,
	}
	if err := s.settingsRepo.SaveSMTPSettings(settings); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return settings, nil
}
