package dto

import (
	"encoding/json"
	"time"
)

type UpdateAlumnusProfileRequest struct {
	FullName       string          `json:"full_name" validate:"required,min=2,max=200"`
	Phone          string          `json:"phone" validate:"omitempty,max=30"`
	City           string          `json:"city" validate:"omitempty,max=100"`
	FamilyID       *string         `json:"family_id" validate:"omitempty,uuid"`
	CycleID        *string         `json:"cycle_id" validate:"omitempty,uuid"`
	CenterID       *string         `json:"center_id" validate:"omitempty,uuid"`
	GraduationYear *int            `json:"graduation_year" validate:"omitempty,min=1990,max=2100"`
	Skills         json.RawMessage `json:"skills" validate:"omitempty"`
	Bio            string          `json:"bio" validate:"omitempty,max=2000"`
}

type UpdateCompanyProfileRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=200"`
	Sector       string `json:"sector" validate:"omitempty,max=100"`
	Location     string `json:"location" validate:"omitempty,max=100"`
	Website      string `json:"website" validate:"omitempty,url,max=300"`
	Description  string `json:"description" validate:"omitempty,max=2000"`
	ContactPhone string `json:"contact_phone" validate:"omitempty,max=30"`
}

type UpdateCVRequest struct {
	CV json.RawMessage `json:"cv" validate:"required"`
}

type CVResponse struct {
	CV          json.RawMessage `json:"cv,omitempty"`
	CVUpdatedAt *time.Time      `json:"cv_updated_at,omitempty"`
}

type UpdatePrivacyRequest struct {
	ProfilePublic bool `json:"profile_public"`
}

type DirectoryQuery struct {
	Pagination
}
