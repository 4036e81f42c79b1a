package services

import (
	"errors"
	"time"

	"fpempleo_backend/internal/models"
	"fpempleo_backend/internal/repositories"
	"fpempleo_backend/internal/services/dto"
	"fpempleo_backend/pkg/apperrors"
)

type JobService struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) *JobService {
	return &JobService{jobRepo: jobRepo}
}

func (s *JobService) Create(companyID string, req dto.CreateJobRequest) (*dto.JobResponse, error) {
	if !req.ExpiresAt.After(time.Now()) {
		return nil, apperrors.ErrInvalidDate("job", "Expiry date must be in the future")
	}
	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMin > *req.SalaryMax {
		return nil, apperrors.NewBadRequestError("Minimum salary exceeds maximum salary")
	}

	job := &models.JobPosting{
		CompanyID:    companyID,
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		JobType:      models.JobType(req.JobType),
		Requirements: req.Requirements,
		FamilyID:     req.FamilyID,
		CycleID:      req.CycleID,
		Active:       true,
		ExpiresAt:    req.ExpiresAt,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewJobResponse(job)
	return &resp, nil
}

// Get returns a posting. Inactive or expired postings are visible only to
// their owner and administrators.
func (s *JobService) Get(jobID, actorID string, role models.UserRole) (*dto.JobResponse, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}

	listed := job.Active && job.ExpiresAt.After(time.Now())
	if !listed && !s.canManage(job, actorID, role) {
		return nil, apperrors.ErrNotFound(repositories.ErrJobNotFound)
	}

	resp := dto.NewJobResponse(job)
	return &resp, nil
}

// Update edits the descriptive fields only. Activation state and expiry
// move through their own operations.
func (s *JobService) Update(jobID, actorID string, role models.UserRole, req dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}
	if !s.canManage(job, actorID, role) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMin > *req.SalaryMax {
		return nil, apperrors.NewBadRequestError("Minimum salary exceeds maximum salary")
	}

	job.Title = req.Title
	job.Description = req.Description
	job.Location = req.Location
	job.SalaryMin = req.SalaryMin
	job.SalaryMax = req.SalaryMax
	job.JobType = models.JobType(req.JobType)
	job.Requirements = req.Requirements
	job.FamilyID = req.FamilyID
	job.CycleID = req.CycleID

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewJobResponse(job)
	return &resp, nil
}

// ExtendExpiry moves the deadline forward. The new date must be strictly
// in the future; the pending expiry reminder is cleared so a fresh warning
// is sent for the new deadline. Extending never reactivates the posting.
func (s *JobService) ExtendExpiry(jobID, actorID string, role models.UserRole, req dto.ExtendExpiryRequest) (*dto.JobResponse, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}
	if !s.canManage(job, actorID, role) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if !req.ExpiresAt.After(time.Now()) {
		return nil, apperrors.ErrInvalidDate("job", "Expiry date must be in the future")
	}

	if err := s.jobRepo.SetExpiry(jobID, req.ExpiresAt); err != nil {
		return nil, apperrors.InternalError(err)
	}

	job.ExpiresAt = req.ExpiresAt
	job.ExpiryReminderSentAt = nil
	resp := dto.NewJobResponse(job)
	return &resp, nil
}

func (s *JobService) SetActive(jobID, actorID string, role models.UserRole, req dto.SetActiveRequest) (*dto.JobResponse, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}
	if !s.canManage(job, actorID, role) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	// An expired posting cannot be reactivated; the deadline has to be
	// extended first.
	if req.Active && !job.ExpiresAt.After(time.Now()) {
		return nil, apperrors.ErrJobUnavailable
	}

	if err := s.jobRepo.SetActive(jobID, req.Active); err != nil {
		return nil, apperrors.InternalError(err)
	}

	job.Active = req.Active
	resp := dto.NewJobResponse(job)
	return &resp, nil
}

// Delete removes a posting and all its applications.
func (s *JobService) Delete(jobID, actorID string, role models.UserRole) error {
	job, err := s.findJob(jobID)
	if err != nil {
		return err
	}
	if !s.canManage(job, actorID, role) {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.jobRepo.Delete(jobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobService) Search(query dto.JobSearchQuery) (*dto.PagedResponse, error) {
	query.Normalize()
	jobs, total, err := s.jobRepo.SearchActive(repositories.JobSearchCriteria{
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

func (s *JobService) MyJobs(companyID string) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindByCompany(companyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, dto.NewJobResponse(&jobs[i]))
	}
	return responses, nil
}

func (s *JobService) findJob(jobID string) (*models.JobPosting, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobService) canManage(job *models.JobPosting, actorID string, role models.UserRole) bool {
	return role == models.UserRoleAdmin || job.CompanyID == actorID
}

func pagedJobs(jobs []models.JobPosting, total int64, p dto.Pagination) *dto.PagedResponse {
	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, dto.NewJobResponse(&jobs[i]))
	}
	return &dto.PagedResponse{
		Items:    responses,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}
}
