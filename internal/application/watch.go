package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/alechenninger/remindr/internal/domain"
	"github.com/alechenninger/remindr/internal/poller"
)

// Watch takes the watcher lock from state, drops reminders that expired
// while nothing was watching, then fires due reminders every interval until
// ctx is done.
func (a *App) Watch(ctx context.Context, state domain.RuntimeState, interval time.Duration) error {
	p, err := poller.New(interval, a.FireDue)
	if err != nil {
		return err
	}
	release, err := state.AcquireLock(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := release(); err != nil {
			slog.Error("failed to release watcher lock", "error", err)
		}
	}()

	if _, err := a.PurgeExpired(ctx); err != nil {
		return err
	}
	return p.Run(ctx)
}
