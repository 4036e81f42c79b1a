package services

import (
	"encoding/json"
	"errors"

	"fpempleo_backend/internal/models"
	"fpempleo_backend/internal/repositories"
	"fpempleo_backend/internal/services/dto"
	"fpempleo_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type TaxonomyService struct {
	taxonomyRepo repositories.TaxonomyRepository
}

func NewTaxonomyService(taxonomyRepo repositories.TaxonomyRepository) *TaxonomyService {
	return &TaxonomyService{taxonomyRepo: taxonomyRepo}
}

func (s *TaxonomyService) ListFamilies() ([]models.ProfessionalFamily, error) {
	families, err := s.taxonomyRepo.ListFamilies()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return families, nil
}

func (s *TaxonomyService) ListCycles(familyID string) ([]models.TrainingCycle, error) {
	cycles, err := s.taxonomyRepo.ListCycles(familyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return cycles, nil
}

func (s *TaxonomyService) ListCenters() ([]models.TrainingCenter, error) {
	centers, err := s.taxonomyRepo.ListCenters()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return centers, nil
}

func (s *TaxonomyService) CreateFamily(req dto.CreateFamilyRequest) (*models.ProfessionalFamily, error) {
	family := &models.ProfessionalFamily{Code: req.Code, Name: req.Name}
	if err := s.taxonomyRepo.CreateFamily(family); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return family, nil
}

func (s *TaxonomyService) CreateCycle(req dto.CreateCycleRequest) (*models.TrainingCycle, error) {
	cycle := &models.TrainingCycle{
		FamilyID: req.FamilyID,
		Code:     req.Code,
		Name:     req.Name,
		Level:    req.Level,
	}
	if err := s.taxonomyRepo.CreateCycle(cycle); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return cycle, nil
}

func (s *TaxonomyService) CreateCenter(req dto.CreateCenterRequest) (*models.TrainingCenter, error) {
	families, err := json.Marshal(req.Families)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	center := &models.TrainingCenter{
		Name:     req.Name,
		City:     req.City,
		Families: datatypes.JSON(families),
	}
	if err := s.taxonomyRepo.CreateCenter(center); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return center, nil
}

func (s *TaxonomyService) DeleteFamily(id string) error {
	return s.mapDelete(s.taxonomyRepo.DeleteFamily(id))
}

func (s *TaxonomyService) DeleteCycle(id string) error {
	return s.mapDelete(s.taxonomyRepo.DeleteCycle(id))
}

func (s *TaxonomyService) DeleteCenter(id string) error {
	return s.mapDelete(s.taxonomyRepo.DeleteCenter(id))
}

func (s *TaxonomyService) mapDelete(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repositories.ErrTaxonomyNotFound) {
		return apperrors.ErrNotFound(err)
	}
	return apperrors.InternalError(err)
}
