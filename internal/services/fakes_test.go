package services

import (
	"sync"
	"time"

	"fpempleo_backend/internal/models"
	"fpempleo_backend/internal/repositories"

	"gorm.io/datatypes"
)

// In-memory fakes backing the service tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User

	erased []string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) add(user *models.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
}

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Update(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) VerifyUser(userID string) error {
	user, err := f.FindByID(userID)
	if err != nil {
		return err
	}
	user.IsVerified = true
	user.Status = models.UserStatusActive
	user.VerificationToken = ""
	return nil
}

func (f *fakeUserRepo) FindByVerificationToken(token string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.VerificationToken != "" && user.VerificationToken == token {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByResetToken(token string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.ResetToken != "" && user.ResetToken == token &&
			user.ResetTokenExp != nil && user.ResetTokenExp.After(time.Now()) {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) SaveAlumnusProfile(profile *models.AlumnusProfile) error {
	user, err := f.FindByID(profile.UserID)
	if err != nil {
		return nil
	}
	user.AlumnusProfile = profile
	return nil
}

func (f *fakeUserRepo) SaveCompanyProfile(profile *models.CompanyProfile) error {
	user, err := f.FindByID(profile.UserID)
	if err != nil {
		return nil
	}
	user.CompanyProfile = profile
	return nil
}

func (f *fakeUserRepo) UpdateCV(userID string, cv datatypes.JSON, at time.Time) error {
	user, err := f.FindByID(userID)
	if err != nil {
		return err
	}
	user.CV = cv
	user.CVUpdatedAt = &at
	return nil
}

func (f *fakeUserRepo) MarkCVReminderSent(userID string, at time.Time) error {
	user, err := f.FindByID(userID)
	if err != nil {
		return err
	}
	user.CVReminderSentAt = &at
	return nil
}

func (f *fakeUserRepo) FindAlumniWithStaleCV(before time.Time) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, user := range f.users {
		if user.Role != models.UserRoleAlumnus || user.CVUpdatedAt == nil {
			continue
		}
		if user.CVUpdatedAt.After(before) {
			continue
		}
		if user.CVReminderSentAt != nil && !user.CVReminderSentAt.Before(*user.CVUpdatedAt) {
			continue
		}
		out = append(out, *user)
	}
	return out, nil
}

func (f *fakeUserRepo) FindPublicByRole(role models.UserRole, limit, offset int) ([]models.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, user := range f.users {
		if user.Role == role && user.ProfilePublic && user.IsVerified {
			out = append(out, *user)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserRepo) FindWithFilter(criteria repositories.UserFilter) ([]models.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, user := range f.users {
		if criteria.Role != "" && user.Role != criteria.Role {
			continue
		}
		out = append(out, *user)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserRepo) CountByRole(role models.UserRole) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, user := range f.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepo) EraseUser(userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(f.users, userID)
	f.erased = append(f.erased, userID)
	return nil
}

func (f *fakeUserRepo) CreateRefreshToken(token *models.RefreshToken) error { return nil }
func (f *fakeUserRepo) FindRefreshToken(token string) (*models.RefreshToken, error) {
	return nil, repositories.ErrUserNotFound
}
func (f *fakeUserRepo) DeleteRefreshToken(token string) error       { return nil }
func (f *fakeUserRepo) DeleteUserRefreshTokens(userID string) error { return nil }
func (f *fakeUserRepo) CleanExpiredRefreshTokens() error            { return nil }

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*models.JobPosting

	deleted []string
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.JobPosting)}
}

func (f *fakeJobRepo) add(job *models.JobPosting) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs[job.ID] = job
}

func (f *fakeJobRepo) Create(job *models.JobPosting) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if job.ID == "" {
		job.ID = "job-" + job.Title
	}
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobRepo) FindByID(id string) (*models.JobPosting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	return job, nil
}

func (f *fakeJobRepo) Update(job *models.JobPosting) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.jobs[job.ID]; !ok {
		return repositories.ErrJobNotFound
	}
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.jobs[id]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(f.jobs, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeJobRepo) FindByCompany(companyID string) ([]models.JobPosting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.JobPosting
	for _, job := range f.jobs {
		if job.CompanyID == companyID {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) SearchActive(criteria repositories.JobSearchCriteria) ([]models.JobPosting, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.JobPosting
	for _, job := range f.jobs {
		if job.Active && job.ExpiresAt.After(time.Now()) {
			out = append(out, *job)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeJobRepo) FindWithFilter(criteria repositories.JobSearchCriteria) ([]models.JobPosting, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.JobPosting
	for _, job := range f.jobs {
		out = append(out, *job)
	}
	return out, int64(len(out)), nil
}

func (f *fakeJobRepo) SetActive(id string, active bool) error {
	job, err := f.FindByID(id)
	if err != nil {
		return err
	}
	job.Active = active
	return nil
}

func (f *fakeJobRepo) SetExpiry(id string, expiresAt time.Time) error {
	job, err := f.FindByID(id)
	if err != nil {
		return err
	}
	job.ExpiresAt = expiresAt
	job.ExpiryReminderSentAt = nil
	return nil
}

func (f *fakeJobRepo) FindExpiringActive(now, deadline time.Time) ([]models.JobPosting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.JobPosting
	for _, job := range f.jobs {
		if job.Active && job.ExpiresAt.After(now) && !job.ExpiresAt.After(deadline) && job.ExpiryReminderSentAt == nil {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) MarkExpiryReminderSent(id string, at time.Time) error {
	job, err := f.FindByID(id)
	if err != nil {
		return err
	}
	job.ExpiryReminderSentAt = &at
	return nil
}

func (f *fakeJobRepo) DeactivateExpired(now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, job := range f.jobs {
		if job.Active && !job.ExpiresAt.After(now) {
			job.Active = false
			count++
		}
	}
	return count, nil
}

func (f *fakeJobRepo) CountAll() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.jobs)), nil
}

func (f *fakeJobRepo) CountActive() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, job := range f.jobs {
		if job.Active {
			count++
		}
	}
	return count, nil
}

type fakeApplicationRepo struct {
	mu           sync.Mutex
	applications map[string]*models.Application
	nextID       int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[string]*models.Application)}
}

func (f *fakeApplicationRepo) add(application *models.Application) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applications[application.ID] = application
}

func (f *fakeApplicationRepo) Create(application *models.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.applications {
		if existing.JobID == application.JobID && existing.AlumnusID == application.AlumnusID {
			return repositories.ErrDuplicateApplication
		}
	}
	if application.ID == "" {
		f.nextID++
		application.ID = "app-" + application.JobID + "-" + application.AlumnusID
	}
	application.CreatedAt = time.Now()
	f.applications[application.ID] = application
	return nil
}

func (f *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	application, ok := f.applications[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	return application, nil
}

func (f *fakeApplicationRepo) ExistsForPair(jobID, alumnusID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, application := range f.applications {
		if application.JobID == jobID && application.AlumnusID == alumnusID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationRepo) ListByJob(jobID string) ([]models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Application
	for _, application := range f.applications {
		if application.JobID == jobID {
			out = append(out, *application)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListByAlumnus(alumnusID string) ([]models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Application
	for _, application := range f.applications {
		if application.AlumnusID == alumnusID {
			out = append(out, *application)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) UpdateStatus(id string, status models.ApplicationStatus, at time.Time) error {
	application, err := f.FindByID(id)
	if err != nil {
		return err
	}
	application.Status = status
	application.StatusUpdatedAt = &at
	return nil
}

func (f *fakeApplicationRepo) CountByStatus() (map[models.ApplicationStatus]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[models.ApplicationStatus]int64)
	for _, application := range f.applications {
		counts[application.Status]++
	}
	return counts, nil
}

func (f *fakeApplicationRepo) CountAll() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.applications)), nil
}

type sentMail struct {
	kind string
	to   string
}

type fakeEmailProvider struct {
	mu   sync.Mutex
	sent []sentMail
	fail bool
}

func (f *fakeEmailProvider) record(kind, to string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errSendFailed
	}
	f.sent = append(f.sent, sentMail{kind: kind, to: to})
	return nil
}

var errSendFailed = &sendError{}

type sendError struct{}

func (*sendError) Error() string { return "send failed" }

func (f *fakeEmailProvider) SendVerification(to, token string) error {
	return f.record("verification", to)
}
func (f *fakeEmailProvider) SendPasswordReset(to, token string) error {
	return f.record("password_reset", to)
}
func (f *fakeEmailProvider) SendWelcome(to, name, role string) error {
	return f.record("welcome", to)
}
func (f *fakeEmailProvider) SendApplicationStatus(to, name, jobTitle, status string) error {
	return f.record("application_status", to)
}
func (f *fakeEmailProvider) SendCVReminder(to, name string) error {
	return f.record("cv_reminder", to)
}
func (f *fakeEmailProvider) SendJobExpiryWarning(to, companyName, jobTitle string, expiresAt time.Time) error {
	return f.record("job_expiry", to)
}

func (f *fakeEmailProvider) sentTo(kind string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, m := range f.sent {
		if m.kind == kind {
			out = append(out, m.to)
		}
	}
	return out
}
