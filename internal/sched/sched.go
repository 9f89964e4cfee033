// Package sched wraps the shared gocron scheduler behind a small
// named-job API. Periodic maintenance, such as the progress report,
// registers here rather than running its own timer goroutine.
package sched

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"ordersim/internal/logging"
)

// JobInfo describes a registered job for external inspection.
type JobInfo struct {
	ID       string        // unique job ID (gocron UUID)
	Name     string        // human-readable name (e.g. "progress")
	Interval time.Duration // run period
	LastRun  time.Time     // zero if never run
	NextRun  time.Time     // zero if not scheduled
}

// Scheduler runs named interval jobs. All periodic tasks register here
// rather than maintaining their own schedulers.
type Scheduler struct {
	mu        sync.Mutex
	scheduler gocron.Scheduler
	jobs      map[string]gocron.Job // name → job
	intervals map[string]time.Duration
	logger    *slog.Logger
}

// New creates a stopped scheduler; register jobs, then call Start.
func New(logger *slog.Logger) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	return &Scheduler{
		scheduler: s,
		jobs:      make(map[string]gocron.Job),
		intervals: make(map[string]time.Duration),
		logger:    logging.Default(logger).With("component", "sched"),
	}, nil
}

// AddEvery registers a named job that runs every interval. The name
// must be unique. The task function and its arguments are passed to
// gocron.NewTask.
func (s *Scheduler) AddEvery(name string, interval time.Duration, taskFn any, args ...any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("job already exists: %s", name)
	}
	if interval <= 0 {
		return fmt.Errorf("job %s: interval must be positive, got %v", name, interval)
	}

	j, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(taskFn, args...),
		gocron.WithName(name),
	)
	if err != nil {
		return fmt.Errorf("create job %s: %w", name, err)
	}

	s.jobs[name] = j
	s.intervals[name] = interval
	s.logger.Debug("job added", "name", name, "interval", interval)
	return nil
}

// Remove stops and removes a named job. No-op if the job doesn't exist.
func (s *Scheduler) Remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[name]
	if !ok {
		return
	}
	if err := s.scheduler.RemoveJob(j.ID()); err != nil {
		s.logger.Warn("failed to remove job", "name", name, "error", err)
	}
	delete(s.jobs, name)
	delete(s.intervals, name)
	s.logger.Debug("job removed", "name", name)
}

// Has returns true if a job with the given name exists.
func (s *Scheduler) Has(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.jobs[name]
	return ok
}

// Jobs returns info about all registered jobs.
func (s *Scheduler) Jobs() []JobInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	infos := make([]JobInfo, 0, len(s.jobs))
	for name, j := range s.jobs {
		info := JobInfo{
			ID:       j.ID().String(),
			Name:     name,
			Interval: s.intervals[name],
		}
		if lr, err := j.LastRun(); err == nil {
			info.LastRun = lr
		}
		if nr, err := j.NextRun(); err == nil {
			info.NextRun = nr
		}
		infos = append(infos, info)
	}
	return infos
}

// Start begins executing all registered jobs.
func (s *Scheduler) Start() {
	s.scheduler.Start()
	s.logger.Debug("scheduler started", "jobs", len(s.jobs))
}

// Stop shuts down the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}
