package cli

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alechenninger/remindr/internal/domain"
	runstate "github.com/alechenninger/remindr/internal/runstate/fs"
)

func init() { rootCmd.AddCommand(watchCmd) }

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Fire reminders as they come due until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		var state domain.RuntimeState = runstate.New(cfg.DataDir)
		slog.Info("watching reminders", "data_dir", cfg.DataDir, "interval", cfg.PollInterval, "pid", os.Getpid())
		if err := newApp().Watch(ctx, state, cfg.PollInterval); err != nil {
			return err
		}
		slog.Info("watch stopped")
		return nil
	},
}
