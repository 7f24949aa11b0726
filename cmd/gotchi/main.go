// Command gotchi is a small CLI over the CollateralFacet binding: it reads
// collateral state from a deployed Aavegotchi Diamond and submits stake
// mutations.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagRPC     string
	flagDiamond string
	flagTimeout time.Duration
	flagVerbose bool

	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gotchi",
	Short: "Interact with the Aavegotchi CollateralFacet",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if flagVerbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRPC, "rpc", os.Getenv("GOTCHI_RPC"),
		"RPC endpoint URL (defaults to $GOTCHI_RPC)")
	rootCmd.PersistentFlags().StringVar(&flagDiamond, "diamond", os.Getenv("GOTCHI_DIAMOND"),
		"diamond contract address (defaults to $GOTCHI_DIAMOND, then the Polygon deployment)")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 2*time.Minute,
		"overall timeout for the command")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
