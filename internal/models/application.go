package models

import (
	"time"
)

// Application links one alumnus to one job posting. The database enforces
// at most one application per (job, alumnus) pair; see database.Migrate.
type Application struct {
	BaseModel
	JobID           string            `gorm:"type:uuid;not null;index:idx_applications_job_alumnus,unique" json:"job_id"`
	AlumnusID       string            `gorm:"type:uuid;not null;index:idx_applications_job_alumnus,unique" json:"alumnus_id"`
	CoverLetter     string            `json:"cover_letter"`
	Status          ApplicationStatus `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	StatusUpdatedAt *time.Time        `json:"status_updated_at,omitempty"`

	Job     *JobPosting `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Alumnus *User       `gorm:"foreignKey:AlumnusID" json:"alumnus,omitempty"`
}
