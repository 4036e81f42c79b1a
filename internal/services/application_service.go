package services

import (
	"errors"
	"time"

	"fpempleo_backend/internal/email"
	"fpempleo_backend/internal/logger"
	"fpempleo_backend/internal/models"
	"fpempleo_backend/internal/repositories"
	"fpempleo_backend/internal/services/dto"
	"fpempleo_backend/pkg/apperrors"
)

type ApplicationService struct {
	appRepo repositories.ApplicationRepository
	jobRepo repositories.JobRepository
	email   email.Provider
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	emailProvider email.Provider,
) *ApplicationService {
	return &ApplicationService{appRepo: appRepo, jobRepo: jobRepo, email: emailProvider}
}

// Submit creates an application. The posting must be active and not
// expired. One application per (job, alumnus) pair; the database index is
// the final authority on duplicates, the existence check only shortcuts
// the common case.
func (s *ApplicationService) Submit(alumnusID, jobID string, req dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !job.Active || !job.ExpiresAt.After(time.Now()) {
		return nil, apperrors.ErrJobUnavailable
	}

	exists, err := s.appRepo.ExistsForPair(jobID, alumnusID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateApplication
	}

	application := &models.Application{
		JobID:       jobID,
		AlumnusID:   alumnusID,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusPending,
	}
	if err := s.appRepo.Create(application); err != nil {
		if errors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrDuplicateApplication
		}
		return nil, apperrors.InternalError(err)
	}

	application.Job = job
	resp := dto.NewApplicationResponse(application)
	return &resp, nil
}

// ListForJob returns the applicants of a posting, with contact details and
// CV, to the posting's owner or an administrator.
func (s *ApplicationService) ListForJob(jobID, actorID string, role models.UserRole) ([]dto.ApplicantResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if role != models.UserRoleAdmin && job.CompanyID != actorID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	applications, err := s.appRepo.ListByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.ApplicantResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, dto.NewApplicantResponse(&applications[i]))
	}
	return responses, nil
}

func (s *ApplicationService) MyApplications(alumnusID string) ([]dto.ApplicationResponse, error) {
	applications, err := s.appRepo.ListByAlumnus(alumnusID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, dto.NewApplicationResponse(&applications[i]))
	}
	return responses, nil
}

// SetStatus moves an application to a new state and notifies the alumnus.
// Any transition is allowed, including out of a terminal state; every
// change stamps StatusUpdatedAt.
func (s *ApplicationService) SetStatus(applicationID, actorID string, role models.UserRole, req dto.SetApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	status := models.ApplicationStatus(req.Status)
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus("application", "Unknown application status")
	}

	application, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if role != models.UserRoleAdmin && (application.Job == nil || application.Job.CompanyID != actorID) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	now := time.Now()
	if err := s.appRepo.UpdateStatus(applicationID, status, now); err != nil {
		return nil, apperrors.InternalError(err)
	}

	application.Status = status
	application.StatusUpdatedAt = &now

	if application.Alumnus != nil && application.Job != nil {
		name := application.Alumnus.Email
		if application.Alumnus.AlumnusProfile != nil {
			name = application.Alumnus.AlumnusProfile.FullName
		}
		if err := s.email.SendApplicationStatus(application.Alumnus.Email, name, application.Job.Title, string(status)); err != nil {
			logger.WithError(err).Warn("failed to send application status email", "application_id", applicationID)
		}
	}

	resp := dto.NewApplicationResponse(application)
	return &resp, nil
}
