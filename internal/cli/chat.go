package cli

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alechenninger/remindr/internal/application"
	"github.com/alechenninger/remindr/internal/domain"
)

var (
	flagChatChannel string
	flagExempt      []string
)

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().StringVar(&flagChatChannel, "channel", "console", "channel the messages are posted in")
	chatCmd.Flags().StringSliceVar(&flagExempt, "exempt", []string{"remindr"}, "users !mock never tracks")
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Read \"author: message\" lines from stdin and respond like the bot",
	Long: `Each stdin line is one message, written as "author: text". Lines are
numbered from 1 and the number is used as the message ID. Words starting
with @ are mentions. Supported commands are !remind, !flip and !mock.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app := newApp()
		app.Exempt = flagExempt

		sc := bufio.NewScanner(os.Stdin)
		for line := uint64(1); sc.Scan(); line++ {
			author, content, ok := strings.Cut(sc.Text(), ":")
			if !ok {
				fmt.Fprintln(os.Stderr, `expected "author: message"`)
				continue
			}
			content = strings.TrimSpace(content)
			msg := application.ChatMessage{
				Message: domain.MessageRef{
					ChannelID: flagChatChannel,
					MessageID: strconv.FormatUint(line, 10),
					AuthorID:  strings.TrimSpace(author),
					Content:   content,
				},
				Mentions: mentions(content),
			}
			replies, err := app.HandleMessage(ctx, msg)
			if err != nil {
				slog.Error("message handling failed", "message", msg.Message.MessageID, "error", err)
				continue
			}
			for _, r := range replies {
				if err := printReply(msg.Message, r); err != nil {
					return err
				}
			}
		}
		return sc.Err()
	},
}

func printReply(m domain.MessageRef, r application.Reply) error {
	if jsonOutput() {
		return printJSON(map[string]any{"message": m.MessageID, "text": r.Text, "reaction": r.Reaction})
	}
	if r.Reaction != "" {
		fmt.Printf("[%s] reacted :%s: to %s\n", m.ChannelID, r.Reaction, m.MessageID)
		return nil
	}
	fmt.Printf("[%s] %s\n", m.ChannelID, r.Text)
	return nil
}

func mentions(content string) []string {
	var out []string
	for _, w := range strings.Fields(content) {
		if name, ok := strings.CutPrefix(w, "@"); ok && name != "" {
			out = append(out, strings.TrimRight(name, ",.!?"))
		}
	}
	return out
}
