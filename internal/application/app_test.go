package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/samber/mo"

	"github.com/alechenninger/remindr/internal/domain"
	"github.com/alechenninger/remindr/internal/reminderstore/mem"
	"github.com/alechenninger/remindr/internal/timeparse"
)

type fakeNotifier struct {
	fired []string
	fail  bool
}

func (f *fakeNotifier) Notify(ctx context.Context, r domain.Reminder) error {
	f.fired = append(f.fired, r.ID)
	if f.fail {
		return errors.New("channel gone")
	}
	return nil
}

type fakeNL struct{}

func (fakeNL) ExtractDate(string, time.Time) mo.Option[timeparse.DateCandidate] {
	return mo.None[timeparse.DateCandidate]()
}
func (fakeNL) ExtractTime(string, time.Time) mo.Option[timeparse.TimeCandidate] {
	return mo.None[timeparse.TimeCandidate]()
}

func newTestApp(now time.Time) (*App, *fakeNotifier) {
	clock := domain.FixedClock{T: now}
	resolver := timeparse.New(fakeNL{})
	resolver.Clock = clock
	n := &fakeNotifier{}
	app := New(mem.New(), resolver, n)
	app.Clock = clock
	seq := 0
	app.NewID = func() string {
		seq++
		return fmt.Sprintf("r%d", seq)
	}
	return app, n
}

var june1 = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func TestRemindSchedulesResolvedTime(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	app, _ := newTestApp(june1)

	r, err := app.Remind(ctx, RemindParams{Message: domain.MessageRef{AuthorID: "ana", Content: "!remind in 3 days"}})
	if err != nil {
		t.Fatalf("Remind failed: %v", err)
	}
	want := time.Date(2024, 6, 4, 10, 0, 0, 0, time.UTC)
	if !r.DueAt.Equal(want) {
		t.Fatalf("expected due %v, got %v", want, r.DueAt)
	}
	if r.ID != "r1" || !r.CreatedAt.Equal(june1) {
		t.Fatalf("unexpected reminder: %+v", r)
	}

	list, err := app.ListReminders(ctx)
	if err != nil {
		t.Fatalf("ListReminders failed: %v", err)
	}
	if len(list) != 1 || list[0].ID != r.ID {
		t.Fatalf("expected stored reminder, got %v", list)
	}
}

func TestRemindWithoutTimeDoesNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	app, _ := newTestApp(june1)

	if _, err := app.Remind(ctx, RemindParams{Message: domain.MessageRef{Content: "!remind me sometime"}}); !errors.Is(err, ErrNoTime) {
		t.Fatalf("expected ErrNoTime, got %v", err)
	}
	list, _ := app.ListReminders(ctx)
	if len(list) != 0 {
		t.Fatalf("expected no reminders, got %d", len(list))
	}
}

func TestSubscribe(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	app, _ := newTestApp(june1)

	r, err := app.Remind(ctx, RemindParams{Message: domain.MessageRef{AuthorID: "ana", Content: "next hour"}})
	if err != nil {
		t.Fatalf("Remind failed: %v", err)
	}
	for _, u := range []string{"ben", "ben", "ana", "cy"} {
		if _, err := app.Subscribe(ctx, r.ID, u); err != nil {
			t.Fatalf("Subscribe %s failed: %v", u, err)
		}
	}
	got, err := app.Store.Load(ctx, r.ID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got.Subscribers) != 2 || got.Subscribers[0] != "ben" || got.Subscribers[1] != "cy" {
		t.Fatalf("unexpected subscribers: %v", got.Subscribers)
	}

	if _, err := app.Subscribe(ctx, "nope", "ben"); !errors.Is(err, domain.ErrReminderNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFireDueNotifiesAndRemoves(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	app, n := newTestApp(june1)

	if _, err := app.Remind(ctx, RemindParams{Message: domain.MessageRef{Content: "in 5 minutes"}}); err != nil {
		t.Fatalf("Remind failed: %v", err)
	}
	if _, err := app.Remind(ctx, RemindParams{Message: domain.MessageRef{Content: "in 2 days"}}); err != nil {
		t.Fatalf("Remind failed: %v", err)
	}

	fired, err := app.FireDue(ctx)
	if err != nil || fired != 0 {
		t.Fatalf("expected nothing due yet, got %d, %v", fired, err)
	}

	app.Clock = domain.FixedClock{T: june1.Add(10 * time.Minute)}
	fired, err = app.FireDue(ctx)
	if err != nil {
		t.Fatalf("FireDue failed: %v", err)
	}
	if fired != 1 || len(n.fired) != 1 || n.fired[0] != "r1" {
		t.Fatalf("expected r1 fired once, got %d %v", fired, n.fired)
	}

	// Firing again must not repeat the notification.
	if fired, _ := app.FireDue(ctx); fired != 0 {
		t.Fatalf("expected no repeat, got %d", fired)
	}
	list, _ := app.ListReminders(ctx)
	if len(list) != 1 || list[0].ID != "r2" {
		t.Fatalf("expected only r2 pending, got %v", list)
	}
}

func TestFireDueRemovesOnNotifyFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	app, n := newTestApp(june1)
	n.fail = true

	if err := app.Store.Save(ctx, domain.Reminder{ID: "old", DueAt: june1.Add(-time.Second)}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	fired, err := app.FireDue(ctx)
	if err != nil || fired != 1 {
		t.Fatalf("expected 1 fired, got %d, %v", fired, err)
	}
	if _, err := app.Store.Load(ctx, "old"); err == nil {
		t.Fatalf("expected reminder removed after failed notification")
	}
}

func TestPurgeExpired(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	app, n := newTestApp(june1)

	for id, due := range map[string]time.Time{
		"past":   june1.Add(-time.Hour),
		"now":    june1,
		"future": june1.Add(time.Hour),
	} {
		if err := app.Store.Save(ctx, domain.Reminder{ID: id, DueAt: due}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}
	purged, err := app.PurgeExpired(ctx)
	if err != nil {
		t.Fatalf("PurgeExpired failed: %v", err)
	}
	if purged != 2 {
		t.Fatalf("expected 2 purged, got %d", purged)
	}
	if len(n.fired) != 0 {
		t.Fatalf("purge must not notify, got %v", n.fired)
	}
	list, _ := app.ListReminders(ctx)
	if len(list) != 1 || list[0].ID != "future" {
		t.Fatalf("expected only future left, got %v", list)
	}
}

func TestCancel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	app, _ := newTestApp(june1)

	r, err := app.Remind(ctx, RemindParams{Message: domain.MessageRef{Content: "next day"}})
	if err != nil {
		t.Fatalf("Remind failed: %v", err)
	}
	if err := app.Cancel(ctx, r.ID); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if err := app.Cancel(ctx, r.ID); !errors.Is(err, domain.ErrReminderNotFound) {
		t.Fatalf("expected not found on second cancel, got %v", err)
	}
}
