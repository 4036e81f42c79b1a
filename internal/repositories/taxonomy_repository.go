package repositories

import (
	"errors"

	"fpempleo_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTaxonomyNotFound = errors.New("taxonomy entry not found")

type TaxonomyRepository interface {
	ListFamilies() ([]models.ProfessionalFamily, error)
	CreateFamily(family *models.ProfessionalFamily) error
	DeleteFamily(id string) error

	ListCycles(familyID string) ([]models.TrainingCycle, error)
	CreateCycle(cycle *models.TrainingCycle) error
	DeleteCycle(id string) error

	ListCenters() ([]models.TrainingCenter, error)
	CreateCenter(center *models.TrainingCenter) error
	DeleteCenter(id string) error
}

type TaxonomyRepositoryImpl struct {
	db *gorm.DB
}

func NewTaxonomyRepository(db *gorm.DB) TaxonomyRepository {
	return &TaxonomyRepositoryImpl{db: db}
}

func (r *TaxonomyRepositoryImpl) ListFamilies() ([]models.ProfessionalFamily, error) {
	var families []models.ProfessionalFamily
	err := r.db.Order("name ASC").Find(&families).Error
	return families, err
}

func (r *TaxonomyRepositoryImpl) CreateFamily(family *models.ProfessionalFamily) error {
	return r.db.Create(family).Error
}

func (r *TaxonomyRepositoryImpl) DeleteFamily(id string) error {
	return r.deleteByID(&models.ProfessionalFamily{}, id)
}

func (r *TaxonomyRepositoryImpl) ListCycles(familyID string) ([]models.TrainingCycle, error) {
	var cycles []models.TrainingCycle
	query := r.db.Order("name ASC")
	if familyID != "" {
		query = query.Where("family_id = ?", familyID)
	}
	err := query.Find(&cycles).Error
	return cycles, err
}

func (r *TaxonomyRepositoryImpl) CreateCycle(cycle *models.TrainingCycle) error {
	return r.db.Create(cycle).Error
}

func (r *TaxonomyRepositoryImpl) DeleteCycle(id string) error {
	return r.deleteByID(&models.TrainingCycle{}, id)
}

func (r *TaxonomyRepositoryImpl) ListCenters() ([]models.TrainingCenter, error) {
	var centers []models.TrainingCenter
	err := r.db.Order("name ASC").Find(&centers).Error
	return centers, err
}

func (r *TaxonomyRepositoryImpl) CreateCenter(center *models.TrainingCenter) error {
	return r.db.Create(center).Error
}

func (r *TaxonomyRepositoryImpl) DeleteCenter(id string) error {
	return r.deleteByID(&models.TrainingCenter{}, id)
}

func (r *TaxonomyRepositoryImpl) deleteByID(model interface{}, id string) error {
	result := r.db.Delete(model, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaxonomyNotFound
	}
	return nil
}
