package repositories

import (
	"errors"
	"time"

	"fpempleo_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job posting not found")

type JobSearchCriteria struct {
	Query     string
	Location  string
	JobType   models.JobType
	FamilyID  string
	CycleID   string
	CompanyID string
	Page      int
	PageSize  int
}

type JobRepository interface {
	Create(job *models.JobPosting) error
	FindByID(id string) (*models.JobPosting, error)
	Update(job *models.JobPosting) error
	Delete(id string) error

	FindByCompany(companyID string) ([]models.JobPosting, error)
	SearchActive(criteria JobSearchCriteria) ([]models.JobPosting, int64, error)
	FindWithFilter(criteria JobSearchCriteria) ([]models.JobPosting, int64, error)

	SetActive(id string, active bool) error
	SetExpiry(id string, expiresAt time.Time) error

	// Maintenance queries
	FindExpiringActive(now, deadline time.Time) ([]models.JobPosting, error)
	MarkExpiryReminderSent(id string, at time.Time) error
	DeactivateExpired(now time.Time) (int64, error)

	CountAll() (int64, error)
	CountActive() (int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.JobPosting) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.JobPosting, error) {
	var job models.JobPosting
	err := r.db.Preload("Company").Preload("Company.CompanyProfile").
		First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(job *models.JobPosting) error {
	result := r.db.Model(job).Updates(map[string]interface{}{
		"title":                   job.Title,
		"description":             job.Description,
		"location":                job.Location,
		"salary_min":              job.SalaryMin,
		"salary_max":              job.SalaryMax,
		"job_type":                job.JobType,
		"requirements":            job.Requirements,
		"family_id":               job.FamilyID,
		"cycle_id":                job.CycleID,
		"active":                  job.Active,
		"expires_at":              job.ExpiresAt,
		"expiry_reminder_sent_at": job.ExpiryReminderSentAt,
		"updated_at":              time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// Delete removes the posting and its applications in one transaction.
func (r *JobRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.JobPosting{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}

func (r *JobRepositoryImpl) FindByCompany(companyID string) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	err := r.db.Where("company_id = ?", companyID).
		Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

// SearchActive returns publicly listed postings: active and not yet expired.
func (r *JobRepositoryImpl) SearchActive(criteria JobSearchCriteria) ([]models.JobPosting, int64, error) {
	query := r.db.Model(&models.JobPosting{}).
		Where("active = ? AND expires_at > ?", true, time.Now())
	return r.search(query, criteria)
}

// FindWithFilter is the unrestricted variant used by administrators.
func (r *JobRepositoryImpl) FindWithFilter(criteria JobSearchCriteria) ([]models.JobPosting, int64, error) {
	return r.search(r.db.Model(&models.JobPosting{}), criteria)
}

func (r *JobRepositoryImpl) search(query *gorm.DB, criteria JobSearchCriteria) ([]models.JobPosting, int64, error) {
	if criteria.Query != "" {
		search := "%" + criteria.Query + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", search, search)
	}
	if criteria.Location != "" {
		query = query.Where("location ILIKE ?", "%"+criteria.Location+"%")
	}
	if criteria.JobType != "" {
		query = query.Where("job_type = ?", criteria.JobType)
	}
	if criteria.FamilyID != "" {
		query = query.Where("family_id = ?", criteria.FamilyID)
	}
	if criteria.CycleID != "" {
		query = query.Where("cycle_id = ?", criteria.CycleID)
	}
	if criteria.CompanyID != "" {
		query = query.Where("company_id = ?", criteria.CompanyID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	var jobs []models.JobPosting
	err := query.Preload("Company").Preload("Company.CompanyProfile").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepositoryImpl) SetActive(id string, active bool) error {
	result := r.db.Model(&models.JobPosting{}).Where("id = ?", id).Updates(map[string]interface{}{
		"active":     active,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// SetExpiry moves the deadline and clears the pending reminder mark so a
// fresh warning goes out for the new date.
func (r *JobRepositoryImpl) SetExpiry(id string, expiresAt time.Time) error {
	result := r.db.Model(&models.JobPosting{}).Where("id = ?", id).Updates(map[string]interface{}{
		"expires_at":              expiresAt,
		"expiry_reminder_sent_at": nil,
		"updated_at":              time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// Maintenance queries

// FindExpiringActive returns active postings whose deadline falls inside
// (now, deadline] and whose owner has not been warned yet.
func (r *JobRepositoryImpl) FindExpiringActive(now, deadline time.Time) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	err := r.db.Preload("Company").Preload("Company.CompanyProfile").
		Where("active = ?", true).
		Where("expires_at > ? AND expires_at <= ?", now, deadline).
		Where("expiry_reminder_sent_at IS NULL").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) MarkExpiryReminderSent(id string, at time.Time) error {
	result := r.db.Model(&models.JobPosting{}).Where("id = ?", id).
		Update("expiry_reminder_sent_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) DeactivateExpired(now time.Time) (int64, error) {
	result := r.db.Model(&models.JobPosting{}).
		Where("active = ? AND expires_at <= ?", true, now).
		Updates(map[string]interface{}{
			"active":     false,
			"updated_at": now,
		})
	return result.RowsAffected, result.Error
}

func (r *JobRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.JobPosting{}).Count(&count).Error
	return count, err
}

func (r *JobRepositoryImpl) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.JobPosting{}).Where("active = ?", true).Count(&count).Error
	return count, err
}
