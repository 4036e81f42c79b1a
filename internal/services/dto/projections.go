package dto

import (
	"encoding/json"
	"time"

	"fpempleo_backend/internal/models"
)

// Profile data leaves the service layer through exactly three shapes.
// OwnerView is everything the account holder may see about themselves.
// PublicDirectoryView is the reduced shape shown in open directories.
// CompanyApplicantView adds contact details and the CV, and is produced
// only for companies reading applications to their own postings.

type OwnerView struct {
	ID              string          `json:"id"`
	Email           string          `json:"email"`
	Role            string          `json:"role"`
	IsVerified      bool            `json:"is_verified"`
	ProfilePublic   bool            `json:"profile_public"`
	ConsentAccepted bool            `json:"consent_accepted"`
	ConsentAt       *time.Time      `json:"consent_at,omitempty"`
	TOTPEnabled     bool            `json:"totp_enabled"`
	CV              json.RawMessage `json:"cv,omitempty"`
	CVUpdatedAt     *time.Time      `json:"cv_updated_at,omitempty"`

	AlumnusProfile *models.AlumnusProfile `json:"alumnus_profile,omitempty"`
	CompanyProfile *models.CompanyProfile `json:"company_profile,omitempty"`
}

type PublicDirectoryView struct {
	ID             string          `json:"id"`
	Role           string          `json:"role"`
	FullName       string          `json:"full_name,omitempty"`
	City           string          `json:"city,omitempty"`
	FamilyID       *string         `json:"family_id,omitempty"`
	CycleID        *string         `json:"cycle_id,omitempty"`
	GraduationYear *int            `json:"graduation_year,omitempty"`
	Skills         json.RawMessage `json:"skills,omitempty"`
	Bio            string          `json:"bio,omitempty"`

	CompanyName string `json:"company_name,omitempty"`
	Sector      string `json:"sector,omitempty"`
	Location    string `json:"location,omitempty"`
	Website     string `json:"website,omitempty"`
	Description string `json:"description,omitempty"`
}

type CompanyApplicantView struct {
	UserID         string          `json:"user_id"`
	Email          string          `json:"email"`
	FullName       string          `json:"full_name"`
	Phone          string          `json:"phone,omitempty"`
	City           string          `json:"city,omitempty"`
	GraduationYear *int            `json:"graduation_year,omitempty"`
	Skills         json.RawMessage `json:"skills,omitempty"`
	Bio            string          `json:"bio,omitempty"`
	CV             json.RawMessage `json:"cv,omitempty"`
	CVUpdatedAt    *time.Time      `json:"cv_updated_at,omitempty"`
}

func NewOwnerView(user *models.User) OwnerView {
	return OwnerView{
		ID:              user.ID,
		Email:           user.Email,
		Role:            string(user.Role),
		IsVerified:      user.IsVerified,
		ProfilePublic:   user.ProfilePublic,
		ConsentAccepted: user.ConsentAccepted,
		ConsentAt:       user.ConsentAt,
		TOTPEnabled:     user.TOTPEnabled,
		CV:              json.RawMessage(user.CV),
		CVUpdatedAt:     user.CVUpdatedAt,
		AlumnusProfile:  user.AlumnusProfile,
		CompanyProfile:  user.CompanyProfile,
	}
}

func NewPublicDirectoryView(user *models.User) PublicDirectoryView {
	view := PublicDirectoryView{
		ID:   user.ID,
		Role: string(user.Role),
	}
	if p := user.AlumnusProfile; p != nil {
		view.FullName = p.FullName
		view.City = p.City
		view.FamilyID = p.FamilyID
		view.CycleID = p.CycleID
		view.GraduationYear = p.GraduationYear
		view.Skills = json.RawMessage(p.Skills)
		view.Bio = p.Bio
	}
	if p := user.CompanyProfile; p != nil {
		view.CompanyName = p.Name
		view.Sector = p.Sector
		view.Location = p.Location
		view.Website = p.Website
		view.Description = p.Description
	}
	return view
}

func NewCompanyApplicantView(user *models.User) CompanyApplicantView {
	view := CompanyApplicantView{
		UserID:      user.ID,
		Email:       user.Email,
		CV:          json.RawMessage(user.CV),
		CVUpdatedAt: user.CVUpdatedAt,
	}
	if p := user.AlumnusProfile; p != nil {
		view.FullName = p.FullName
		view.Phone = p.Phone
		view.City = p.City
		view.GraduationYear = p.GraduationYear
		view.Skills = json.RawMessage(p.Skills)
		view.Bio = p.Bio
	}
	return view
}

// Job and application response shapes.

type JobResponse struct {
	ID           string     `json:"id"`
	CompanyID    string     `json:"company_id"`
	CompanyName  string     `json:"company_name,omitempty"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Location     string     `json:"location"`
	SalaryMin    *int       `json:"salary_min,omitempty"`
	SalaryMax    *int       `json:"salary_max,omitempty"`
	JobType      string     `json:"job_type"`
	Requirements string     `json:"requirements,omitempty"`
	FamilyID     *string    `json:"family_id,omitempty"`
	CycleID      *string    `json:"cycle_id,omitempty"`
	Active       bool       `json:"active"`
	ExpiresAt    time.Time  `json:"expires_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

func NewJobResponse(job *models.JobPosting) JobResponse {
	resp := JobResponse{
		ID:           job.ID,
		CompanyID:    job.CompanyID,
		Title:        job.Title,
		Description:  job.Description,
		Location:     job.Location,
		SalaryMin:    job.SalaryMin,
		SalaryMax:    job.SalaryMax,
		JobType:      string(job.JobType),
		Requirements: job.Requirements,
		FamilyID:     job.FamilyID,
		CycleID:      job.CycleID,
		Active:       job.Active,
		ExpiresAt:    job.ExpiresAt,
		CreatedAt:    job.CreatedAt,
	}
	if job.Company != nil && job.Company.CompanyProfile != nil {
		resp.CompanyName = job.Company.CompanyProfile.Name
	}
	return resp
}

type ApplicationResponse struct {
	ID              string       `json:"id"`
	JobID           string       `json:"job_id"`
	AlumnusID       string       `json:"alumnus_id"`
	CoverLetter     string       `json:"cover_letter,omitempty"`
	Status          string       `json:"status"`
	StatusUpdatedAt *time.Time   `json:"status_updated_at,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	Job             *JobResponse `json:"job,omitempty"`
}

func NewApplicationResponse(application *models.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:              application.ID,
		JobID:           application.JobID,
		AlumnusID:       application.AlumnusID,
		CoverLetter:     application.CoverLetter,
		Status:          string(application.Status),
		StatusUpdatedAt: application.StatusUpdatedAt,
		CreatedAt:       application.CreatedAt,
	}
	if application.Job != nil {
		job := NewJobResponse(application.Job)
		resp.Job = &job
	}
	return resp
}

// ApplicantResponse is what a company sees per application to its posting.
type ApplicantResponse struct {
	ID              string               `json:"id"`
	Status          string               `json:"status"`
	StatusUpdatedAt *time.Time           `json:"status_updated_at,omitempty"`
	CoverLetter     string               `json:"cover_letter,omitempty"`
	SubmittedAt     time.Time            `json:"submitted_at"`
	Applicant       CompanyApplicantView `json:"applicant"`
}

func NewApplicantResponse(application *models.Application) ApplicantResponse {
	resp := ApplicantResponse{
		ID:              application.ID,
		Status:          string(application.Status),
		StatusUpdatedAt: application.StatusUpdatedAt,
		CoverLetter:     application.CoverLetter,
		SubmittedAt:     application.CreatedAt,
	}
	if application.Alumnus != nil {
		resp.Applicant = NewCompanyApplicantView(application.Alumnus)
	}
	return resp
}
