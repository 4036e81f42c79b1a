package models

import (
	"time"
)

type JobPosting struct {
	BaseModel
	CompanyID    string  `gorm:"type:uuid;not null;index" json:"company_id"`
	Title        string  `gorm:"not null" json:"title"`
	Description  string  `gorm:"not null" json:"description"`
	Location     string  `gorm:"not null" json:"location"`
	SalaryMin    *int    `json:"salary_min,omitempty"`
	SalaryMax    *int    `json:"salary_max,omitempty"`
	JobType      JobType `gorm:"type:varchar(20);not null" json:"job_type"`
	Requirements string  `json:"requirements"`
	FamilyID     *string `gorm:"type:uuid" json:"family_id,omitempty"`
	CycleID      *string `gorm:"type:uuid" json:"cycle_id,omitempty"`

	Active               bool       `gorm:"default:true;index" json:"active"`
	ExpiresAt            time.Time  `gorm:"not null" json:"expires_at"`
	ExpiryReminderSentAt *time.Time `json:"-"`

	Company *User `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}
