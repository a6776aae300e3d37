package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/alechenninger/remindr/internal/banter"
)

func init() { rootCmd.AddCommand(flipCmd) }

var flipCmd = &cobra.Command{
	Use:   "flip",
	Short: "Toss a coin",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(banter.Flip(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))))
		return nil
	},
}
