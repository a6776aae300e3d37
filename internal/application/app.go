package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"

	"github.com/alechenninger/remindr/internal/domain"
	"github.com/alechenninger/remindr/internal/mock"
	fsstore "github.com/alechenninger/remindr/internal/reminderstore/fs"
	"github.com/alechenninger/remindr/internal/timeparse"
	"github.com/alechenninger/remindr/internal/timeparse/whenparse"
)

// ErrNoTime means the message did not name a future time. Callers should
// treat it as "do nothing", not as a failure.
var ErrNoTime = errors.New("no future time found in message")

type App struct {
	Store    domain.ReminderStore
	Resolver domain.TimeResolver
	Notifier domain.Notifier
	Clock    domain.Clock
	NewID    func() string

	Mocks *mock.Tracker
	Rand  *rand.Rand
	// Exempt users are never tracked by !mock, typically the bot and its owner.
	Exempt []string
}

func New(store domain.ReminderStore, resolver domain.TimeResolver, notifier domain.Notifier) *App {
	return &App{
		Store:    store,
		Resolver: resolver,
		Notifier: notifier,
		Clock:    domain.RealClock{},
		NewID:    uuid.NewString,
		Mocks:    mock.NewTracker(),
		Rand:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// NewDefault wires the file store under baseDir and the natural-language
// resolver.
func NewDefault(baseDir string, notifier domain.Notifier) *App {
	return New(fsstore.New(baseDir), timeparse.New(whenparse.New()), notifier)
}

type RemindParams struct {
	Message domain.MessageRef
}

// Remind resolves the time named in the message content and stores a
// reminder for it. It returns ErrNoTime when there is nothing to schedule.
func (a *App) Remind(ctx context.Context, p RemindParams) (*domain.Reminder, error) {
	due, ok := a.Resolver.Resolve(p.Message.Content).Get()
	if !ok {
		return nil, ErrNoTime
	}
	r := domain.Reminder{
		ID:        a.NewID(),
		DueAt:     due,
		CreatedAt: a.Clock.Now(),
		Message:   p.Message,
	}
	if err := a.Store.Save(ctx, r); err != nil {
		return nil, fmt.Errorf("save reminder: %w", err)
	}
	slog.Info("reminder scheduled", "id", r.ID, "due", r.DueAt, "channel", r.Message.ChannelID)
	return &r, nil
}

// Subscribe asks for user to be notified as well when the reminder fires.
func (a *App) Subscribe(ctx context.Context, id, user string) (*domain.Reminder, error) {
	r, err := a.Store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == r.Message.AuthorID || slices.Contains(r.Subscribers, user) {
		return r, nil
	}
	r.Subscribers = append(r.Subscribers, user)
	if err := a.Store.Save(ctx, *r); err != nil {
		return nil, fmt.Errorf("save reminder: %w", err)
	}
	return r, nil
}

// ScheduledNotice is the confirmation posted when a reminder is scheduled.
func ScheduledNotice(r *domain.Reminder) string {
	return fmt.Sprintf("I will remind you about this message on `%s` at `%s`",
		r.DueAt.Format("2006-01-02"), r.DueAt.Format("15:04:05"))
}

func (a *App) ListReminders(ctx context.Context) ([]domain.Reminder, error) {
	return a.Store.List(ctx)
}

func (a *App) Cancel(ctx context.Context, id string) error {
	if _, err := a.Store.Load(ctx, id); err != nil {
		return err
	}
	return a.Store.Delete(ctx, id)
}

// FireDue notifies every reminder whose time has come and removes it. A
// reminder whose notification fails is still removed; the failure is logged.
func (a *App) FireDue(ctx context.Context) (int, error) {
	now := a.Clock.Now()
	list, err := a.Store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list reminders: %w", err)
	}
	fired := 0
	for _, r := range list {
		if !r.DueBy(now) {
			continue
		}
		if err := a.Notifier.Notify(ctx, r); err != nil {
			slog.Error("reminder notification failed", "id", r.ID, "error", err)
		}
		if err := a.Store.Delete(ctx, r.ID); err != nil {
			return fired, fmt.Errorf("delete reminder %s: %w", r.ID, err)
		}
		fired++
	}
	if fired > 0 {
		slog.Info("reminders fired", "count", fired)
	}
	return fired, nil
}

// PurgeExpired drops reminders that came due while nothing was polling,
// without notifying them.
func (a *App) PurgeExpired(ctx context.Context) (int, error) {
	now := a.Clock.Now()
	list, err := a.Store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list reminders: %w", err)
	}
	purged := 0
	for _, r := range list {
		if !r.DueBy(now) {
			continue
		}
		if err := a.Store.Delete(ctx, r.ID); err != nil {
			return purged, fmt.Errorf("delete reminder %s: %w", r.ID, err)
		}
		purged++
	}
	if purged > 0 {
		slog.Info("purged expired reminders that should have fired", "count", purged)
	}
	return purged, nil
}
