package workers

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"fpempleo_backend/internal/email"
	"fpempleo_backend/internal/logger"
	"fpempleo_backend/internal/repositories"
)

// MaintenanceWorker runs the daily housekeeping passes: CV staleness
// reminders, job expiry warnings and deactivation of expired postings.
// Every pass is act-then-record: the email goes out first and the sent
// mark is written after, so a crash in between re-sends rather than
// silently drops.
type MaintenanceWorker struct {
	userRepo repositories.UserRepository
	jobRepo  repositories.JobRepository
	email    email.Provider

	warmup          time.Duration
	interval        time.Duration
	cvStaleAfter    time.Duration
	expiryWarnAhead time.Duration

	now     func() time.Time
	running atomic.Bool
	stop    chan struct{}
}

type MaintenanceConfig struct {
	Warmup          time.Duration
	Interval        time.Duration
	CVStaleAfter    time.Duration
	ExpiryWarnAhead time.Duration
}

func NewMaintenanceWorker(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	emailProvider email.Provider,
	cfg MaintenanceConfig,
) *MaintenanceWorker {
	return &MaintenanceWorker{
		userRepo:        userRepo,
		jobRepo:         jobRepo,
		email:           emailProvider,
		warmup:          cfg.Warmup,
		interval:        cfg.Interval,
		cvStaleAfter:    cfg.CVStaleAfter,
		expiryWarnAhead: cfg.ExpiryWarnAhead,
		now:             time.Now,
		stop:            make(chan struct{}),
	}
}

// SetClock overrides the time source.
func (w *MaintenanceWorker) SetClock(now func() time.Time) {
	w.now = now
}

// Start launches the loop: one run after the warm-up delay, then one per
// interval. Blocks until Stop is called or the context is cancelled.
func (w *MaintenanceWorker) Start(ctx context.Context) {
	logger.Info("maintenance worker started",
		"warmup", w.warmup.String(),
		"interval", w.interval.String(),
	)

	warmup := time.NewTimer(w.warmup)
	defer warmup.Stop()

	select {
	case <-warmup.C:
		w.RunOnce(ctx)
	case <-w.stop:
		return
	case <-ctx.Done():
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.RunOnce(ctx)
		case <-w.stop:
			logger.Info("maintenance worker stopped")
			return
		case <-ctx.Done():
			logger.Info("maintenance worker stopped", "reason", ctx.Err().Error())
			return
		}
	}
}

func (w *MaintenanceWorker) Stop() {
	close(w.stop)
}

// RunOnce executes all three passes. Overlapping runs are skipped; a
// failing pass never prevents the others from running.
func (w *MaintenanceWorker) RunOnce(ctx context.Context) {
	if !w.running.CompareAndSwap(false, true) {
		logger.Warn("maintenance run skipped, previous run still in progress")
		return
	}
	defer w.running.Store(false)

	logger.WorkerLog("maintenance", "cv_reminders", w.sendCVReminders(ctx))
	logger.WorkerLog("maintenance", "expiry_warnings", w.sendExpiryWarnings(ctx))
	logger.WorkerLog("maintenance", "deactivate_expired", w.deactivateExpired(ctx))
}

// sendCVReminders notifies alumni whose CV has not been touched within
// the staleness window. The mark is written only after a successful send,
// so a failed delivery is retried on the next run.
func (w *MaintenanceWorker) sendCVReminders(ctx context.Context) error {
	cutoff := w.now().Add(-w.cvStaleAfter)
	alumni, err := w.userRepo.FindAlumniWithStaleCV(cutoff)
	if err != nil {
		return fmt.Errorf("find alumni with stale CV: %w", err)
	}

	var failed int
	for i := range alumni {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		user := &alumni[i]

		name := user.Email
		if user.AlumnusProfile != nil && user.AlumnusProfile.FullName != "" {
			name = user.AlumnusProfile.FullName
		}

		if err := w.email.SendCVReminder(user.Email, name); err != nil {
			logger.WithError(err).Warn("cv reminder send failed", "user_id", user.ID)
			failed++
			continue
		}
		if err := w.userRepo.MarkCVReminderSent(user.ID, w.now()); err != nil {
			logger.WithError(err).Error("cv reminder mark failed", "user_id", user.ID)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d cv reminders failed", failed, len(alumni))
	}
	return nil
}

// sendExpiryWarnings notifies companies whose active postings expire
// within the warning window and have not been warned yet.
func (w *MaintenanceWorker) sendExpiryWarnings(ctx context.Context) error {
	now := w.now()
	jobs, err := w.jobRepo.FindExpiringActive(now, now.Add(w.expiryWarnAhead))
	if err != nil {
		return fmt.Errorf("find expiring jobs: %w", err)
	}

	var failed int
	for i := range jobs {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		job := &jobs[i]

		if job.Company == nil {
			logger.Warn("expiring job has no owner loaded", "job_id", job.ID)
			failed++
			continue
		}
		companyName := job.Company.Email
		if job.Company.CompanyProfile != nil && job.Company.CompanyProfile.Name != "" {
			companyName = job.Company.CompanyProfile.Name
		}

		if err := w.email.SendJobExpiryWarning(job.Company.Email, companyName, job.Title, job.ExpiresAt); err != nil {
			logger.WithError(err).Warn("expiry warning send failed", "job_id", job.ID)
			failed++
			continue
		}
		if err := w.jobRepo.MarkExpiryReminderSent(job.ID, w.now()); err != nil {
			logger.WithError(err).Error("expiry warning mark failed", "job_id", job.ID)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d expiry warnings failed", failed, len(jobs))
	}
	return nil
}

// deactivateExpired flips active postings past their deadline to
// inactive. Postings are never reactivated automatically.
func (w *MaintenanceWorker) deactivateExpired(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	count, err := w.jobRepo.DeactivateExpired(w.now())
	if err != nil {
		return fmt.Errorf("deactivate expired jobs: %w", err)
	}
	if count > 0 {
		logger.Info("expired job postings deactivated", "count", count)
	}
	return nil
}
