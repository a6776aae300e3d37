package mock

import "sync"

// Tracker counts how many more messages from each user get mocked.
type Tracker struct {
	mu   sync.Mutex
	left map[string]int
}

func NewTracker() *Tracker { return &Tracker{left: map[string]int{}} }

// Track mocks the next n messages from user, replacing any earlier count.
func (t *Tracker) Track(user string, n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n <= 0 {
		delete(t.left, user)
		return
	}
	t.left[user] = n
}

// Take reports whether the message user just sent should be mocked and, if
// so, uses up one of their remaining mocks.
func (t *Tracker) Take(user string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, ok := t.left[user]
	if !ok {
		return false
	}
	if n <= 1 {
		delete(t.left, user)
	} else {
		t.left[user] = n - 1
	}
	return true
}

func (t *Tracker) Remaining(user string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.left[user]
}
