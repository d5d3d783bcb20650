package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/familyledger/finance-backend/internal/domain/models"
)

// Scheduler runs jobs on six-field cron specs. A job still running when its
// next turn comes is skipped.
type Scheduler struct {
	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
}

func NewScheduler(location *time.Location) *Scheduler {
	logger := cron.PrintfLogger(log.StandardLogger())
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron: cron.New(
			cron.WithParser(models.CronParser),
			cron.WithLocation(location),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *Scheduler) Register(name string, spec string, job func(ctx context.Context) error) (cron.EntryID, error) {
	return s.cron.AddFunc(spec, func() {
		entry := log.WithField("job", name)
		start := time.Now()

		entry.Info("Job started")
		if err := job(s.ctx); err != nil {
			entry.WithError(err).Error("Job failed")
			return
		}
		entry.WithField("duration_ms", time.Since(start).Milliseconds()).Info("Job finished")
	})
}

func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop cancels the context handed to running jobs and waits for them.
func (s *Scheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
}
