// Package console delivers fired reminders as text lines, standing in for a
// chat reply.
package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/alechenninger/remindr/internal/domain"
)

type Notifier struct {
	mu sync.Mutex
	w  io.Writer
}

func New(w io.Writer) *Notifier { return &Notifier{w: w} }

// Notify writes the reminder reply and, when other users subscribed, a
// second line mentioning each of them.
func (n *Notifier) Notify(ctx context.Context, r domain.Reminder) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	author := r.Message.AuthorID
	if author == "" {
		author = "you"
	} else {
		author = mention(author)
	}
	if _, err := fmt.Fprintf(n.w, "[%s] %s: reminding %s of this message: %q\n",
		ifEmpty(r.Message.ChannelID, "-"), r.ID, author, r.Message.Content); err != nil {
		return err
	}

	var others []string
	for _, u := range r.Subscribers {
		if u != "" && u != r.Message.AuthorID {
			others = append(others, mention(u))
		}
	}
	if len(others) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(n.w, "[%s] %s\n", ifEmpty(r.Message.ChannelID, "-"), strings.Join(others, " "))
	return err
}

func mention(user string) string { return "@" + user }

func ifEmpty(s, alt string) string {
	if s == "" {
		return alt
	}
	return s
}

var _ domain.Notifier = (*Notifier)(nil)
