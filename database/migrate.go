package database

import (
	"fpempleo_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate creates the schema. The unique (job_id, alumnus_id) index on
// applications is declared on the model and is the authority that keeps
// an alumnus from applying to the same posting twice.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.AlumnusProfile{},
		&models.CompanyProfile{},
		&models.RefreshToken{},
		&models.ProfessionalFamily{},
		&models.TrainingCycle{},
		&models.TrainingCenter{},
		&models.JobPosting{},
		&models.Application{},
		&models.SMTPSettings{},
	)
}
