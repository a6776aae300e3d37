package cli

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List pending reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		reminders, err := newApp().ListReminders(ctx)
		if err != nil {
			return err
		}
		if jsonOutput() {
			for _, r := range reminders {
				slog.Info("reminder", "id", r.ID, "dueAt", r.DueAt, "channel", r.Message.ChannelID, "author", r.Message.AuthorID, "subscribers", len(r.Subscribers))
			}
			return nil
		}
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tDUE\tCHANNEL\tAUTHOR\tMESSAGE")
		for _, r := range reminders {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.DueAt.Format(timeLayout), ifEmpty(r.Message.ChannelID, "-"), ifEmpty(r.Message.AuthorID, "-"), truncate(r.Message.Content, 40))
		}
		return tw.Flush()
	},
}

func ifEmpty(s, alt string) string {
	if s == "" {
		return alt
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
