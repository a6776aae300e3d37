package fs

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/alechenninger/remindr/internal/domain"
)

const (
	listFile = "reminders.json"
	lockDir  = "reminders.lock.d"
)

var (
	lockRetry = 10 * time.Millisecond
	// A lock older than this was left by a process that died mid-operation.
	lockStale = 30 * time.Second
)

// Store keeps the whole reminder list in a single JSON file under baseDir.
// Every write replaces the file atomically. Each operation holds a lock
// directory next to the file, so separate processes sharing baseDir do not
// lose each other's updates.
type Store struct {
	baseDir string
	fs      afero.Fs
	mu      sync.Mutex
}

func New(baseDir string) *Store { return &Store{baseDir: baseDir, fs: afero.NewOsFs()} }

func NewWithFS(baseDir string, fsys afero.Fs) *Store { return &Store{baseDir: baseDir, fs: fsys} }

func (s *Store) path() string { return filepath.Join(s.baseDir, listFile) }

func (s *Store) Save(ctx context.Context, r domain.Reminder) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	list, err := s.read()
	if err != nil {
		return err
	}
	replaced := false
	for i := range list {
		if list[i].ID == r.ID {
			list[i] = r
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, r)
	}
	return s.write(list)
}

func (s *Store) Load(ctx context.Context, id string) (*domain.Reminder, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	list, err := s.read()
	if err != nil {
		return nil, err
	}
	for _, r := range list {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, fmt.Errorf("reminder %s: %w", id, domain.ErrReminderNotFound)
}

func (s *Store) Delete(ctx context.Context, id string) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	list, err := s.read()
	if err != nil {
		return err
	}
	kept := list[:0]
	for _, r := range list {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(list) {
		return nil
	}
	return s.write(kept)
}

func (s *Store) List(ctx context.Context) ([]domain.Reminder, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	list, err := s.read()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].DueAt.Before(list[j].DueAt) })
	return list, nil
}

// lock takes the in-process mutex and then the lock directory, waiting
// until ctx is done for another holder to finish.
func (s *Store) lock(ctx context.Context) (func(), error) {
	s.mu.Lock()
	af := &afero.Afero{Fs: s.fs}
	if err := af.MkdirAll(s.baseDir, 0o755); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	l := filepath.Join(s.baseDir, lockDir)
	for {
		err := s.fs.Mkdir(l, 0o755)
		if err == nil {
			return func() {
				_ = s.fs.Remove(l)
				s.mu.Unlock()
			}, nil
		}
		if !errors.Is(err, os.ErrExist) {
			s.mu.Unlock()
			return nil, fmt.Errorf("lock %s: %w", l, err)
		}
		if fi, serr := s.fs.Stat(l); serr == nil && time.Since(fi.ModTime()) > lockStale {
			_ = s.fs.Remove(l)
			continue
		}
		select {
		case <-ctx.Done():
			s.mu.Unlock()
			return nil, fmt.Errorf("lock %s: %w", l, ctx.Err())
		case <-time.After(lockRetry):
		}
	}
}

// read returns an empty list when the file does not exist yet.
func (s *Store) read() ([]domain.Reminder, error) {
	af := &afero.Afero{Fs: s.fs}
	b, err := af.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var list []domain.Reminder
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path(), err)
	}
	return list, nil
}

func (s *Store) write(list []domain.Reminder) (err error) {
	if list == nil {
		list = []domain.Reminder{}
	}
	b, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	f, err := afero.TempFile(s.fs, s.baseDir, listFile+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = s.fs.Remove(f.Name())
		}
	}()
	w := bufio.NewWriter(f)
	if _, err := w.Write(b); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return s.fs.Rename(f.Name(), s.path())
}

var _ domain.ReminderStore = (*Store)(nil)

// DefaultBaseDir returns the default base directory for reminder state.
func DefaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "remindr")
	}
	return filepath.Join(home, ".remindr")
}
