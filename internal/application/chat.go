package application

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/alechenninger/remindr/internal/banter"
	"github.com/alechenninger/remindr/internal/domain"
	"github.com/alechenninger/remindr/internal/mock"
)

// MockCount is how many upcoming messages of each mentioned user !mock echoes.
const MockCount = 3

// Reply is something said or done in response to a message. Exactly one of
// Text and Reaction is set.
type Reply struct {
	Text     string `json:"text,omitempty"`
	Reaction string `json:"reaction,omitempty"`
}

type ChatMessage struct {
	Message  domain.MessageRef
	Mentions []string
}

// HandleMessage responds to one chat message. A tracked author is mocked
// first, then a leading "!remind", "!flip" or "!mock" command runs, and
// finally a message ID ending in repeated digits earns a reaction.
func (a *App) HandleMessage(ctx context.Context, m ChatMessage) ([]Reply, error) {
	var replies []Reply
	author := m.Message.AuthorID
	if a.Mocks.Take(author) {
		slog.Info("mocking user", "user", author, "left", a.Mocks.Remaining(author))
		replies = append(replies, Reply{Text: mock.String(m.Message.Content, a.Rand)})
	}

	cmd, _, _ := strings.Cut(strings.TrimSpace(m.Message.Content), " ")
	switch strings.ToLower(cmd) {
	case "!remind":
		r, err := a.Remind(ctx, RemindParams{Message: m.Message})
		switch {
		case errors.Is(err, ErrNoTime):
		case err != nil:
			return replies, err
		default:
			replies = append(replies, Reply{Text: ScheduledNotice(r)})
		}
	case "!flip":
		replies = append(replies, Reply{Text: banter.Flip(a.Rand)})
	case "!mock":
		for _, u := range m.Mentions {
			if slices.Contains(a.Exempt, u) {
				continue
			}
			a.Mocks.Track(u, MockCount)
			slog.Info("now tracking user", "user", u)
		}
	}

	if id, err := strconv.ParseUint(m.Message.MessageID, 10, 64); err == nil {
		if name, ok := banter.CheckEm(id); ok {
			replies = append(replies, Reply{Reaction: name})
		}
	}
	return replies, nil
}
