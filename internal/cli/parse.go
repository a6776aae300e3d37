package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alechenninger/remindr/internal/timeparse"
	"github.com/alechenninger/remindr/internal/timeparse/whenparse"
)

func init() { rootCmd.AddCommand(parseCmd) }

var parseCmd = &cobra.Command{
	Use:   "parse TEXT...",
	Short: "Show the time a message would be scheduled for",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		at, ok := timeparse.New(whenparse.New()).Resolve(text).Get()
		if jsonOutput() {
			if !ok {
				return printJSON(map[string]any{"text": text, "found": false})
			}
			return printJSON(map[string]any{"text": text, "found": true, "at": at})
		}
		if !ok {
			fmt.Println("no time found")
			return nil
		}
		fmt.Println(at.Format(timeLayout))
		return nil
	},
}

const timeLayout = "2006-01-02 15:04:05"
