// Package poller runs a job at a fixed interval on github.com/robfig/cron.
package poller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is run once per tick and reports how many items it handled.
type Job func(ctx context.Context) (int, error)

type Poller struct {
	interval time.Duration
	job      Job
}

// New returns a poller for job. Intervals shorter than a second are
// rejected since cron cannot schedule them.
func New(interval time.Duration, job Job) (*Poller, error) {
	if interval < time.Second {
		return nil, fmt.Errorf("poll interval %s is shorter than 1s", interval)
	}
	if job == nil {
		return nil, fmt.Errorf("poll job is nil")
	}
	return &Poller{interval: interval, job: job}, nil
}

// Spec is the cron schedule the poller registers.
func (p *Poller) Spec() string { return "@every " + p.interval.String() }

// Run blocks until ctx is done, running the job every interval. Ticks
// never overlap; a tick that is still running when the next is due is
// skipped.
func (p *Poller) Run(ctx context.Context) error {
	logger := slogLogger{}
	c := cron.New(cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)))
	if _, err := c.AddFunc(p.Spec(), func() { p.tick(ctx) }); err != nil {
		return fmt.Errorf("schedule poll: %w", err)
	}
	slog.Debug("poller starting", "schedule", p.Spec())
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	slog.Debug("poller stopped")
	return nil
}

func (p *Poller) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	n, err := p.job(ctx)
	if err != nil {
		slog.Error("poll failed", "error", err)
		return
	}
	slog.Debug("poll complete", "handled", n)
}

// slogLogger routes cron's own logging to slog.
type slogLogger struct{}

func (slogLogger) Info(msg string, keysAndValues ...interface{}) {
	slog.Debug(msg, keysAndValues...)
}

func (slogLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	slog.Error(msg, append([]interface{}{"error", err}, keysAndValues...)...)
}

var _ cron.Logger = slogLogger{}
