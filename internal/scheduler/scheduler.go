package scheduler

import (
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/channingko-madden/weather-data/internal/weather"
)

// Scheduler periodically re-reads the weather data file so a running
// server picks up changes without a restart.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *weather.Service
	dataFile  string
	interval  time.Duration
	log       *slog.Logger
}

// New creates a new Scheduler.
func New(service *weather.Service, dataFile string, interval time.Duration, log *slog.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		dataFile:  dataFile,
		interval:  interval,
		log:       log,
	}
}

// Start schedules the periodic reload job and starts the underlying
// scheduler. A zero interval disables reloading.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		s.log.Info("scheduler: reload disabled")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).Do(s.reload)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// reload re-reads the data file. A failed reload keeps the previous
// archive contents serving.
func (s *Scheduler) reload() {
	if err := s.service.ReloadFile(s.dataFile); err != nil {
		s.log.Error("scheduler: reload failed", "file", s.dataFile, "error", err)
	}
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
