package fs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/afero"

	"github.com/alechenninger/remindr/internal/domain"
)

// ErrWatcherRunning is returned when another live process holds the lock.
var ErrWatcherRunning = errors.New("another watcher is running")

// Service records which process runs the poll loop for a data directory.
type Service struct {
	baseDir string
	fs      afero.Fs
}

func New(baseDir string) *Service { return &Service{baseDir: baseDir, fs: afero.NewOsFs()} }

func NewWithFS(baseDir string, fsys afero.Fs) *Service { return &Service{baseDir: baseDir, fs: fsys} }

func (s *Service) paths() (pid, lock string) {
	return filepath.Join(s.baseDir, "watch.pid"), filepath.Join(s.baseDir, "watch.lock.d")
}

// AcquireLock takes the watcher lock for the current process, first
// clearing a lock left behind by a process that no longer exists.
func (s *Service) AcquireLock(ctx context.Context) (func() error, error) {
	pidPath, lock := s.paths()
	af := &afero.Afero{Fs: s.fs}
	if err := af.MkdirAll(s.baseDir, 0o755); err != nil {
		return nil, err
	}
	if err := s.CleanupIfStale(ctx); err != nil {
		return nil, err
	}
	if err := s.fs.Mkdir(lock, 0o755); err != nil {
		if pid, perr := s.ReadPID(ctx); perr == nil {
			return nil, fmt.Errorf("%w (pid %d)", ErrWatcherRunning, pid)
		}
		return nil, fmt.Errorf("%w: %v", ErrWatcherRunning, err)
	}
	if err := s.writePID(pidPath, os.Getpid()); err != nil {
		_ = af.RemoveAll(lock)
		return nil, err
	}
	return func() error {
		_ = s.fs.Remove(pidPath)
		return af.RemoveAll(lock)
	}, nil
}

func (s *Service) writePID(p string, pid int) error {
	tmp := p + ".tmp"
	f, err := s.fs.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintf(w, "%d\n", pid); err != nil {
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
	return s.fs.Rename(tmp, p)
}

func (s *Service) ReadPID(ctx context.Context) (int, error) {
	p, _ := s.paths()
	f, err := s.fs.Open(p)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	var pid int
	if _, err := fmt.Fscan(bufio.NewReader(f), &pid); err != nil {
		return 0, err
	}
	return pid, nil
}

// CleanupIfStale removes the lock when its recorded process is gone.
func (s *Service) CleanupIfStale(ctx context.Context) error {
	p, l := s.paths()
	pid, err := s.ReadPID(ctx)
	if err != nil {
		return nil
	}
	if err := syscallKill(pid, 0); err == nil {
		return nil
	}
	_ = s.fs.Remove(p)
	return s.fs.RemoveAll(l)
}

// small indirection for testability
var syscallKill = func(pid int, sig int) error { return syscall.Kill(pid, syscall.Signal(sig)) }

var _ domain.RuntimeState = (*Service)(nil)
