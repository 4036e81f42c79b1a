package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"fpempleo_backend/internal/models"
	"fpempleo_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type stubUserRepo struct {
	alumni  []*models.User
	findErr error
}

func (s *stubUserRepo) FindAlumniWithStaleCV(before time.Time) ([]models.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	var out []models.User
	for _, user := range s.alumni {
		if user.CVUpdatedAt == nil || user.CVUpdatedAt.After(before) {
			continue
		}
		if user.CVReminderSentAt != nil && !user.CVReminderSentAt.Before(*user.CVUpdatedAt) {
			continue
		}
		out = append(out, *user)
	}
	return out, nil
}

func (s *stubUserRepo) MarkCVReminderSent(userID string, at time.Time) error {
	for _, user := range s.alumni {
		if user.ID == userID {
			user.CVReminderSentAt = &at
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (s *stubUserRepo) FindByID(id string) (*models.User, error)               { return nil, nil }
func (s *stubUserRepo) FindByEmail(email string) (*models.User, error)         { return nil, nil }
func (s *stubUserRepo) Create(user *models.User) error                         { return nil }
func (s *stubUserRepo) Update(user *models.User) error                         { return nil }
func (s *stubUserRepo) VerifyUser(userID string) error                         { return nil }
func (s *stubUserRepo) FindByVerificationToken(t string) (*models.User, error) { return nil, nil }
func (s *stubUserRepo) FindByResetToken(t string) (*models.User, error)        { return nil, nil }
func (s *stubUserRepo) SaveAlumnusProfile(p *models.AlumnusProfile) error      { return nil }
func (s *stubUserRepo) SaveCompanyProfile(p *models.CompanyProfile) error      { return nil }
func (s *stubUserRepo) UpdateCV(id string, cv datatypes.JSON, at time.Time) error { return nil }
func (s *stubUserRepo) FindPublicByRole(r models.UserRole, l, o int) ([]models.User, int64, error) {
	return nil, 0, nil
}
func (s *stubUserRepo) FindWithFilter(c repositories.UserFilter) ([]models.User, int64, error) {
	return nil, 0, nil
}
func (s *stubUserRepo) CountByRole(r models.UserRole) (int64, error)    { return 0, nil }
func (s *stubUserRepo) EraseUser(id string) error                       { return nil }
func (s *stubUserRepo) CreateRefreshToken(t *models.RefreshToken) error { return nil }
func (s *stubUserRepo) FindRefreshToken(t string) (*models.RefreshToken, error) {
	return nil, nil
}
func (s *stubUserRepo) DeleteRefreshToken(t string) error       { return nil }
func (s *stubUserRepo) DeleteUserRefreshTokens(id string) error { return nil }
func (s *stubUserRepo) CleanExpiredRefreshTokens() error        { return nil }

type stubJobRepo struct {
	jobs    []*models.JobPosting
	findErr error
}

func (s *stubJobRepo) FindExpiringActive(now, deadline time.Time) ([]models.JobPosting, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	var out []models.JobPosting
	for _, job := range s.jobs {
		if job.Active && job.ExpiresAt.After(now) && !job.ExpiresAt.After(deadline) && job.ExpiryReminderSentAt == nil {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (s *stubJobRepo) MarkExpiryReminderSent(id string, at time.Time) error {
	for _, job := range s.jobs {
		if job.ID == id {
			job.ExpiryReminderSentAt = &at
			return nil
		}
	}
	return repositories.ErrJobNotFound
}

func (s *stubJobRepo) DeactivateExpired(now time.Time) (int64, error) {
	var count int64
	for _, job := range s.jobs {
		if job.Active && !job.ExpiresAt.After(now) {
			job.Active = false
			count++
		}
	}
	return count, nil
}

func (s *stubJobRepo) Create(j *models.JobPosting) error              { return nil }
func (s *stubJobRepo) FindByID(id string) (*models.JobPosting, error) { return nil, nil }
func (s *stubJobRepo) Update(j *models.JobPosting) error              { return nil }
func (s *stubJobRepo) Delete(id string) error                         { return nil }
func (s *stubJobRepo) FindByCompany(id string) ([]models.JobPosting, error) {
	return nil, nil
}
func (s *stubJobRepo) SearchActive(c repositories.JobSearchCriteria) ([]models.JobPosting, int64, error) {
	return nil, 0, nil
}
func (s *stubJobRepo) FindWithFilter(c repositories.JobSearchCriteria) ([]models.JobPosting, int64, error) {
	return nil, 0, nil
}
func (s *stubJobRepo) SetActive(id string, active bool) error         { return nil }
func (s *stubJobRepo) SetExpiry(id string, e time.Time) error         { return nil }
func (s *stubJobRepo) CountAll() (int64, error)                       { return 0, nil }
func (s *stubJobRepo) CountActive() (int64, error)                    { return 0, nil }

type stubMailer struct {
	cvReminders    []string
	expiryWarnings []string
	failCV         bool
	failExpiry     bool
}

func (m *stubMailer) SendCVReminder(to, name string) error {
	if m.failCV {
		return errors.New("smtp down")
	}
	m.cvReminders = append(m.cvReminders, to)
	return nil
}

func (m *stubMailer) SendJobExpiryWarning(to, companyName, jobTitle string, expiresAt time.Time) error {
	if m.failExpiry {
		return errors.New("smtp down")
	}
	m.expiryWarnings = append(m.expiryWarnings, to)
	return nil
}

func (m *stubMailer) SendVerification(to, token string) error   { return nil }
func (m *stubMailer) SendPasswordReset(to, token string) error  { return nil }
func (m *stubMailer) SendWelcome(to, name, role string) error   { return nil }
func (m *stubMailer) SendApplicationStatus(to, name, jobTitle, status string) error {
	return nil
}

func newTestWorker(userRepo *stubUserRepo, jobRepo *stubJobRepo, mailer *stubMailer, now time.Time) *MaintenanceWorker {
	w := NewMaintenanceWorker(userRepo, jobRepo, mailer, MaintenanceConfig{
		Warmup:          time.Minute,
		Interval:        24 * time.Hour,
		CVStaleAfter:    365 * 24 * time.Hour,
		ExpiryWarnAhead: 7 * 24 * time.Hour,
	})
	w.SetClock(func() time.Time { return now })
	return w
}

func staleAlumnus(id, email string, updatedDaysAgo int, now time.Time) *models.User {
	updated := now.Add(-time.Duration(updatedDaysAgo) * 24 * time.Hour)
	return &models.User{
		BaseModel:   models.BaseModel{ID: id},
		Email:       email,
		Role:        models.UserRoleAlumnus,
		CVUpdatedAt: &updated,
	}
}

func TestRunOnceSendsCVRemindersOncePerUpdate(t *testing.T) {
	now := time.Date(2026, 3, 1, 4, 0, 0, 0, time.UTC)
	userRepo := &stubUserRepo{alumni: []*models.User{
		staleAlumnus("a-stale", "stale@example.com", 400, now),
		staleAlumnus("a-fresh", "fresh@example.com", 30, now),
	}}
	jobRepo := &stubJobRepo{}
	mailer := &stubMailer{}
	w := newTestWorker(userRepo, jobRepo, mailer, now)

	w.RunOnce(context.Background())
	assert.Equal(t, []string{"stale@example.com"}, mailer.cvReminders)
	require.NotNil(t, userRepo.alumni[0].CVReminderSentAt)

	// The next run does not repeat the reminder.
	w.RunOnce(context.Background())
	assert.Len(t, mailer.cvReminders, 1)
}

func TestCVReminderRepeatsAfterNextUpdate(t *testing.T) {
	now := time.Date(2026, 3, 1, 4, 0, 0, 0, time.UTC)
	alum := staleAlumnus("a-1", "ana@example.com", 400, now)
	userRepo := &stubUserRepo{alumni: []*models.User{alum}}
	mailer := &stubMailer{}
	w := newTestWorker(userRepo, &stubJobRepo{}, mailer, now)

	w.RunOnce(context.Background())
	require.Len(t, mailer.cvReminders, 1)

	// The alumnus updates the CV, then lets it go stale again.
	updated := now.Add(24 * time.Hour)
	alum.CVUpdatedAt = &updated

	later := now.Add(400 * 24 * time.Hour)
	w.SetClock(func() time.Time { return later })
	w.RunOnce(context.Background())
	assert.Len(t, mailer.cvReminders, 2)
}

func TestCVReminderNotMarkedWhenSendFails(t *testing.T) {
	now := time.Date(2026, 3, 1, 4, 0, 0, 0, time.UTC)
	alum := staleAlumnus("a-1", "ana@example.com", 400, now)
	userRepo := &stubUserRepo{alumni: []*models.User{alum}}
	mailer := &stubMailer{failCV: true}
	w := newTestWorker(userRepo, &stubJobRepo{}, mailer, now)

	w.RunOnce(context.Background())
	assert.Nil(t, alum.CVReminderSentAt, "failed delivery must stay unmarked so it is retried")

	mailer.failCV = false
	w.RunOnce(context.Background())
	assert.Equal(t, []string{"ana@example.com"}, mailer.cvReminders)
	assert.NotNil(t, alum.CVReminderSentAt)
}

func expiringJob(id string, expiresIn time.Duration, now time.Time) *models.JobPosting {
	return &models.JobPosting{
		BaseModel: models.BaseModel{ID: id},
		CompanyID: "company-1",
		Title:     "Oferta " + id,
		Active:    true,
		ExpiresAt: now.Add(expiresIn),
		Company: &models.User{
			BaseModel: models.BaseModel{ID: "company-1"},
			Email:     "empresa@example.com",
			Role:      models.UserRoleCompany,
		},
	}
}

func TestExpiryWarningsCoverOnlyTheWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 4, 0, 0, 0, time.UTC)
	soon := expiringJob("j-soon", 3*24*time.Hour, now)
	far := expiringJob("j-far", 30*24*time.Hour, now)
	gone := expiringJob("j-gone", -time.Hour, now)
	jobRepo := &stubJobRepo{jobs: []*models.JobPosting{soon, far, gone}}
	mailer := &stubMailer{}
	w := newTestWorker(&stubUserRepo{}, jobRepo, mailer, now)

	w.RunOnce(context.Background())

	assert.Equal(t, []string{"empresa@example.com"}, mailer.expiryWarnings)
	assert.NotNil(t, soon.ExpiryReminderSentAt)
	assert.Nil(t, far.ExpiryReminderSentAt)
	assert.Nil(t, gone.ExpiryReminderSentAt)

	// No duplicate warning on the next run.
	w.RunOnce(context.Background())
	assert.Len(t, mailer.expiryWarnings, 1)
}

func TestDeactivateExpiredIsOneWay(t *testing.T) {
	now := time.Date(2026, 3, 1, 4, 0, 0, 0, time.UTC)
	expired := expiringJob("j-expired", -time.Hour, now)
	open := expiringJob("j-open", 30*24*time.Hour, now)
	alreadyOff := expiringJob("j-off", 30*24*time.Hour, now)
	alreadyOff.Active = false

	jobRepo := &stubJobRepo{jobs: []*models.JobPosting{expired, open, alreadyOff}}
	w := newTestWorker(&stubUserRepo{}, jobRepo, &stubMailer{}, now)

	w.RunOnce(context.Background())
	assert.False(t, expired.Active)
	assert.True(t, open.Active)
	assert.False(t, alreadyOff.Active)

	// Idempotent: a second run changes nothing.
	w.RunOnce(context.Background())
	assert.False(t, expired.Active)
	assert.True(t, open.Active)
}

func TestFailingPassDoesNotBlockOthers(t *testing.T) {
	now := time.Date(2026, 3, 1, 4, 0, 0, 0, time.UTC)
	expired := expiringJob("j-expired", -time.Hour, now)
	jobRepo := &stubJobRepo{jobs: []*models.JobPosting{expired}}
	userRepo := &stubUserRepo{findErr: errors.New("db down")}
	w := newTestWorker(userRepo, jobRepo, &stubMailer{}, now)

	w.RunOnce(context.Background())

	// CV pass failed, deactivation still ran.
	assert.False(t, expired.Active)
}

func TestRunOnceSkipsWhenAlreadyRunning(t *testing.T) {
	now := time.Date(2026, 3, 1, 4, 0, 0, 0, time.UTC)
	alum := staleAlumnus("a-1", "ana@example.com", 400, now)
	userRepo := &stubUserRepo{alumni: []*models.User{alum}}
	mailer := &stubMailer{}
	w := newTestWorker(userRepo, &stubJobRepo{}, mailer, now)

	w.running.Store(true)
	w.RunOnce(context.Background())
	assert.Empty(t, mailer.cvReminders)

	w.running.Store(false)
	w.RunOnce(context.Background())
	assert.Len(t, mailer.cvReminders, 1)
}

func TestRunOnceStopsOnCancelledContext(t *testing.T) {
	now := time.Date(2026, 3, 1, 4, 0, 0, 0, time.UTC)
	userRepo := &stubUserRepo{alumni: []*models.User{
		staleAlumnus("a-1", "uno@example.com", 400, now),
		staleAlumnus("a-2", "dos@example.com", 400, now),
	}}
	mailer := &stubMailer{}
	w := newTestWorker(userRepo, &stubJobRepo{}, mailer, now)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.RunOnce(ctx)

	assert.Empty(t, mailer.cvReminders)
}
