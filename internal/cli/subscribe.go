package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() { rootCmd.AddCommand(subscribeCmd) }

var subscribeCmd = &cobra.Command{
	Use:   "subscribe ID USER",
	Short: "Also notify USER when a reminder fires",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		r, err := newApp().Subscribe(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		if jsonOutput() {
			return printJSON(map[string]any{"id": r.ID, "subscribers": r.Subscribers})
		}
		fmt.Printf("%s will also be notified for %s\n", args[1], r.ID)
		return nil
	},
}
