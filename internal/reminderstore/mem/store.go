package mem

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/alechenninger/remindr/internal/domain"
)

type Store struct {
	mu        sync.Mutex
	reminders map[string]domain.Reminder // key: ID
}

func New() *Store {
	return &Store{reminders: make(map[string]domain.Reminder)}
}

func (s *Store) Save(ctx context.Context, r domain.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.Subscribers = append([]string(nil), r.Subscribers...)
	s.reminders[r.ID] = r
	return nil
}

func (s *Store) Load(ctx context.Context, id string) (*domain.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reminders[id]
	if !ok {
		return nil, fmt.Errorf("reminder %s: %w", id, domain.ErrReminderNotFound)
	}
	r.Subscribers = append([]string(nil), r.Subscribers...)
	return &r, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reminders, id)
	return nil
}

func (s *Store) List(ctx context.Context) ([]domain.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Reminder, 0, len(s.reminders))
	for _, r := range s.reminders {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueAt.Before(out[j].DueAt) })
	return out, nil
}

var _ domain.ReminderStore = (*Store)(nil)
