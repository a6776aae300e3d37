package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alechenninger/remindr/internal/application"
	"github.com/alechenninger/remindr/internal/domain"
)

var (
	flagChannel   string
	flagAuthor    string
	flagMessageID string
)

func init() {
	rootCmd.AddCommand(remindCmd)
	remindCmd.Flags().StringVar(&flagChannel, "channel", "", "channel the message was posted in")
	remindCmd.Flags().StringVar(&flagAuthor, "author", os.Getenv("USER"), "user to remind")
	remindCmd.Flags().StringVar(&flagMessageID, "message", "", "ID of the originating message")
}

var remindCmd = &cobra.Command{
	Use:   "remind TEXT...",
	Short: "Schedule a reminder for the time named in a message",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app := newApp()
		r, err := app.Remind(ctx, application.RemindParams{Message: domain.MessageRef{
			ChannelID: flagChannel,
			MessageID: flagMessageID,
			AuthorID:  flagAuthor,
			Content:   strings.Join(args, " "),
		}})
		if errors.Is(err, application.ErrNoTime) {
			if jsonOutput() {
				return printJSON(map[string]any{"scheduled": false})
			}
			fmt.Println("no time found; nothing scheduled")
			return nil
		}
		if err != nil {
			return err
		}
		if jsonOutput() {
			return printJSON(map[string]any{"scheduled": true, "id": r.ID, "dueAt": r.DueAt})
		}
		fmt.Println(application.ScheduledNotice(r))
		fmt.Printf("others can run `remindr subscribe %s USER` to also be notified\n", r.ID)
		return nil
	},
}
