package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/alechenninger/remindr/internal/application"
	"github.com/alechenninger/remindr/internal/config"
	"github.com/alechenninger/remindr/internal/notify/console"
)

var (
	rootCmd = &cobra.Command{
		Use:   "remindr",
		Short: "Schedule reminders from the times people write in messages",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(v, flagConfigPath)
			if err != nil {
				return err
			}
			cfg = c
			return setupLogging(cfg.Log)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	v   = config.NewViper(afero.NewOsFs())
	cfg *config.Config

	flagConfigPath string
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Bool("json", false, "enable JSON log and command output")
	pf.BoolP("verbose", "v", false, "enable verbose (debug) logging")
	pf.String("data-dir", "", "directory holding reminders (default ~/.remindr)")
	pf.StringVar(&flagConfigPath, "config", "", "config file (default <data-dir>/config.yaml)")

	bind(config.KeyLogJSON, "json")
	bind(config.KeyLogVerbose, "verbose")
	bind(config.KeyDataDir, "data-dir")
}

func bind(key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func Execute(version string) {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(lc config.LogConfig) error {
	var handler slog.Handler
	if lc.JSON {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: chooseLevel(lc.Verbose)})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: chooseLevel(lc.Verbose)})
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("logging initialized", "data_dir", cfg.DataDir)
	return nil
}

func chooseLevel(verbose bool) slog.Leveler {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func newApp() *application.App {
	return application.NewDefault(cfg.DataDir, console.New(os.Stdout))
}

func jsonOutput() bool { return cfg != nil && cfg.Log.JSON }

func printJSON(val any) error {
	return json.NewEncoder(os.Stdout).Encode(val)
}
