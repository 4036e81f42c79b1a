package repositories

import (
	"errors"

	"fpempleo_backend/internal/email"
	"fpempleo_backend/internal/models"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	GetSMTPSettings() (*models.SMTPSettings, error)
	SaveSMTPSettings(settings *models.SMTPSettings) error

	// CurrentSettings satisfies email.SettingsSource.
	CurrentSettings() (*email.Settings, error)
}

type SettingsRepositoryImpl struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &SettingsRepositoryImpl{db: db}
}

func (r *SettingsRepositoryImpl) GetSMTPSettings() (*models.SMTPSettings, error) {
	var settings models.SMTPSettings
	err := r.db.Order("created_at ASC").First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

// SaveSMTPSettings keeps a single row, updating it in place when present.
func (r *SettingsRepositoryImpl) SaveSMTPSettings(settings *models.SMTPSettings) error {
	existing, err := r.GetSMTPSettings()
	if err != nil {
		return err
	}
	if existing == nil {
		return r.db.Create(settings).Error
	}
	settings.ID = existing.ID
	settings.CreatedAt = existing.CreatedAt
	return r.db.Save(settings).Error
}

func (r *SettingsRepositoryImpl) CurrentSettings() (*email.Settings, error) {
	settings, err := r.GetSMTPSettings()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, nil
	}
	return &email.Settings{
		Host:     settings.Host,
		Port:     settings.Port,
		Username: settings.Username,
		Password: settings.Password,
		From:     settings.From,
		UseTLS:   settings.UseTLS,
	}, nil
}
