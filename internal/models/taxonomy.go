package models

import (
	"gorm.io/datatypes"
)

// Reference taxonomy of vocational-training specializations, managed by
// administrators.

type ProfessionalFamily struct {
	BaseModel
	Code string `gorm:"uniqueIndex;not null" json:"code"`
	Name string `gorm:"not null" json:"name"`

	Cycles []TrainingCycle `gorm:"foreignKey:FamilyID" json:"cycles,omitempty"`
}

type TrainingCycle struct {
	BaseModel
	FamilyID string `gorm:"type:uuid;not null;index" json:"family_id"`
	Code     string `gorm:"uniqueIndex;not null" json:"code"`
	Name     string `gorm:"not null" json:"name"`
	Level    string `gorm:"type:varchar(20)" json:"level"` // basic, medium, higher
}

type TrainingCenter struct {
	BaseModel
	Name     string         `gorm:"not null" json:"name"`
	City     string         `json:"city"`
	Families datatypes.JSON `gorm:"type:jsonb" json:"families,omitempty"`
}
