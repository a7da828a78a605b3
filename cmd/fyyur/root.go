package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fyyur/internal/config"
	"fyyur/internal/logging"
)

var (
	cfg    *config.Config
	logger *logging.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fyyur",
	Short: "Fyyur - book local artists at local venues",
	Long: `Fyyur lists venues and artists, lets them update their pages,
and books shows between them.

Configuration is read from the environment, .env and config/local.env.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		logger = logging.New(logging.Config{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		logging.SetGlobalLogger(logger)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
