package cli

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alechenninger/remindr/internal/mock"
)

func init() { rootCmd.AddCommand(mockCmd) }

var mockCmd = &cobra.Command{
	Use:   "mock TEXT...",
	Short: "Echo text with randomly flipped letter case",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		fmt.Println(mock.String(strings.Join(args, " "), r))
		return nil
	},
}
