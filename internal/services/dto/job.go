package dto

import "time"

type CreateJobRequest struct {
	Title        string    `json:"title" validate:"required,min=3,max=200"`
	Description  string    `json:"description" validate:"required,min=10"`
	Location     string    `json:"location" validate:"required,max=100"`
	SalaryMin    *int      `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax    *int      `json:"salary_max" validate:"omitempty,min=0"`
	JobType      string    `json:"job_type" validate:"required,oneof=full_time part_time internship temporary"`
	Requirements string    `json:"requirements" validate:"omitempty,max=5000"`
	FamilyID     *string   `json:"family_id" validate:"omitempty,uuid"`
	CycleID      *string   `json:"cycle_id" validate:"omitempty,uuid"`
	ExpiresAt    time.Time `json:"expires_at" validate:"required"`
}

type UpdateJobRequest struct {
	Title        string  `json:"title" validate:"required,min=3,max=200"`
	Description  string  `json:"description" validate:"required,min=10"`
	Location     string  `json:"location" validate:"required,max=100"`
	SalaryMin    *int    `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax    *int    `json:"salary_max" validate:"omitempty,min=0"`
	JobType      string  `json:"job_type" validate:"required,oneof=full_time part_time internship temporary"`
	Requirements string  `json:"requirements" validate:"omitempty,max=5000"`
	FamilyID     *string `json:"family_id" validate:"omitempty,uuid"`
	CycleID      *string `json:"cycle_id" validate:"omitempty,uuid"`
}

type ExtendExpiryRequest struct {
	ExpiresAt time.Time `json:"expires_at" validate:"required"`
}

type SetActiveRequest struct {
	Active bool `json:"active"`
}

type JobSearchQuery struct {
	Pagination
	Query    string `form:"q" json:"q"`
	Location string `form:"location" json:"location"`
	JobType  string `form:"job_type" json:"job_type" validate:"omitempty,oneof=full_time part_time internship temporary"`
	FamilyID string `form:"family_id" json:"family_id" validate:"omitempty,uuid"`
	CycleID  string `form:"cycle_id" json:"cycle_id" validate:"omitempty,uuid"`
}
