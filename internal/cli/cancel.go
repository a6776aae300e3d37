package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cancelCmd)
}

var cancelCmd = &cobra.Command{
	Use:   "cancel ID",
	Short: "Delete a pending reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id := args[0]
		if err := newApp().Cancel(ctx, id); err != nil {
			return err
		}
		if jsonOutput() {
			return printJSON(map[string]any{"id": id, "cancelled": true})
		}
		fmt.Printf("Cancelled %s\n", id)
		return nil
	},
}
