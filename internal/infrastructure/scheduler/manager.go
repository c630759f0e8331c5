// Package scheduler provides unified scheduler management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	lifecycleUsecases "github.com/lipagate/lipagate/internal/application/lifecycle/usecases"
	"github.com/lipagate/lipagate/internal/shared/logger"
)

// jobTimeout bounds one sweep or trial-check run.
const jobTimeout = 10 * time.Minute

// Manager runs the lifecycle jobs on a single gocron scheduler: the
// subscription sweep and the daily platform trial check. The HTTP cron
// endpoints call the same use cases, so a deployment may rely on either
// trigger; the sweep's advisory lock keeps overlapping runs from
// double-notifying.
type Manager struct {
	scheduler gocron.Scheduler
	sweepUC   *lifecycleUsecases.SweepSubscriptionsUseCase
	trialsUC  *lifecycleUsecases.CheckTrialsUseCase
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewManager creates a Manager with an unstarted gocron scheduler.
func NewManager(
	sweepUC *lifecycleUsecases.SweepSubscriptionsUseCase,
	trialsUC *lifecycleUsecases.CheckTrialsUseCase,
	log logger.Interface,
) (*Manager, error) {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, err
	}

	return &Manager{
		scheduler: scheduler,
		sweepUC:   sweepUC,
		trialsUC:  trialsUC,
		logger:    log,
	}, nil
}

// RegisterJobs registers the subscription sweep at the given interval and the
// trial check once per day. Both start immediately so a fresh deploy clears
// any backlog.
func (m *Manager) RegisterJobs(sweepInterval time.Duration) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(sweepInterval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
			defer cancel()
			m.runSweep(ctx)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("lifecycle", "sweep"),
		gocron.WithName("subscription-sweep"),
	)
	if err != nil {
		return err
	}

	_, err = m.scheduler.NewJob(
		gocron.DurationJob(24*time.Hour),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
			defer cancel()
			m.runTrialCheck(ctx)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("lifecycle", "trials"),
		gocron.WithName("trial-check"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered lifecycle jobs",
		"sweep_interval", sweepInterval,
		"trial_check_interval", "24h",
	)
	return nil
}

func (m *Manager) runSweep(ctx context.Context) {
	m.logger.Debugw("subscription sweep started")

	startTime := time.Now()
	result, err := m.sweepUC.Execute(ctx, time.Now().UTC())
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("subscription sweep failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if result.Skipped {
		m.logger.Debugw("subscription sweep skipped, lock held elsewhere")
		return
	}

	m.logger.Infow("subscription sweep completed",
		"processed", result.Processed,
		"past_due", result.MarkedPastDue,
		"expired", result.MarkedExpired,
		"expiring_notified", len(result.ExpiringSoonNotified),
		"expired_notified", len(result.ExpiredNotified),
		"errors", len(result.Errors),
		"duration", time.Since(startTime),
	)
}

func (m *Manager) runTrialCheck(ctx context.Context) {
	m.logger.Debugw("trial check started")

	startTime := time.Now()
	result, err := m.trialsUC.Execute(ctx, time.Now().UTC())
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("trial check failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	m.logger.Infow("trial check completed",
		"processed", result.Processed,
		"ended", len(result.Ended),
		"errors", len(result.Errors),
		"duration", time.Since(startTime),
	)
}

// Start starts the scheduler and all registered jobs.
func (m *Manager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop gracefully stops the scheduler and waits for running jobs.
func (m *Manager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// IsStarted returns whether the scheduler is running.
func (m *Manager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}
