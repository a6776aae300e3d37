package domain

import (
	"context"
	"errors"
	"time"

	"github.com/samber/mo"
)

// ErrReminderNotFound is returned by stores when no reminder has the given ID.
var ErrReminderNotFound = errors.New("reminder not found")

// MessageRef identifies the message a reminder was created from. The
// resolver and stores treat it as opaque; only notifiers read it.
type MessageRef struct {
	ChannelID string `json:"channelId"`
	MessageID string `json:"messageId"`
	AuthorID  string `json:"authorId"`
	Content   string `json:"content"`
}

// Reminder is a scheduled notification about a message.
type Reminder struct {
	ID        string     `json:"id"`
	DueAt     time.Time  `json:"dueAt"`
	CreatedAt time.Time  `json:"createdAt"`
	Message   MessageRef `json:"message"`

	// Subscribers are users other than the author who asked to be notified too.
	Subscribers []string `json:"subscribers,omitempty"`
}

// DueBy reports whether the reminder should fire at now.
func (r Reminder) DueBy(now time.Time) bool {
	return !r.DueAt.After(now)
}

// ReminderStore persists the reminder list.
type ReminderStore interface {
	Save(ctx context.Context, r Reminder) error
	Load(ctx context.Context, id string) (*Reminder, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Reminder, error)
}

// Notifier delivers a fired reminder to its author and subscribers.
type Notifier interface {
	Notify(ctx context.Context, r Reminder) error
}

// TimeResolver turns free-form text into a future timestamp, if it names one.
type TimeResolver interface {
	Resolve(text string) mo.Option[time.Time]
}

// RuntimeState coordinates the single poll loop allowed per data directory.
type RuntimeState interface {
	AcquireLock(ctx context.Context) (release func() error, err error)
	ReadPID(ctx context.Context) (int, error)
	CleanupIfStale(ctx context.Context) error
}
