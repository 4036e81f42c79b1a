package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Email             string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string     `gorm:"not null" json:"-"`
	Role              UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	Status            UserStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	IsVerified        bool       `gorm:"default:false" json:"is_verified"`
	VerificationToken string     `json:"-"`
	ResetToken        string     `json:"-"`
	ResetTokenExp     *time.Time `json:"-"`

	ProfilePublic   bool       `gorm:"default:false" json:"profile_public"`
	ConsentAccepted bool       `gorm:"default:false" json:"consent_accepted"`
	ConsentAt       *time.Time `json:"consent_at,omitempty"`

	TOTPSecret  string `json:"-"`
	TOTPEnabled bool   `gorm:"default:false" json:"totp_enabled"`

	// Structured CV document, alumni only.
	CV               datatypes.JSON `gorm:"type:jsonb" json:"cv,omitempty"`
	CVUpdatedAt      *time.Time     `json:"cv_updated_at,omitempty"`
	CVReminderSentAt *time.Time     `json:"-"`

	// Relations
	AlumnusProfile *AlumnusProfile `gorm:"foreignKey:UserID" json:"alumnus_profile,omitempty"`
	CompanyProfile *CompanyProfile `gorm:"foreignKey:UserID" json:"company_profile,omitempty"`
	RefreshTokens  []RefreshToken  `gorm:"foreignKey:UserID" json:"-"`
}

type AlumnusProfile struct {
	BaseModel
	UserID         string         `gorm:"not null;uniqueIndex" json:"user_id"`
	FullName       string         `json:"full_name"`
	Phone          string         `json:"phone"`
	City           string         `json:"city"`
	FamilyID       *string        `gorm:"type:uuid" json:"family_id,omitempty"`
	CycleID        *string        `gorm:"type:uuid" json:"cycle_id,omitempty"`
	CenterID       *string        `gorm:"type:uuid" json:"center_id,omitempty"`
	GraduationYear *int           `json:"graduation_year,omitempty"`
	Skills         datatypes.JSON `gorm:"type:jsonb" json:"skills,omitempty"`
	Bio            string         `json:"bio"`
}

type CompanyProfile struct {
	BaseModel
	UserID       string `gorm:"not null;uniqueIndex" json:"user_id"`
	Name         string `json:"name"`
	Sector       string `json:"sector"`
	Location     string `json:"location"`
	Website      string `json:"website"`
	Description  string `json:"description"`
	ContactPhone string `json:"contact_phone"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
