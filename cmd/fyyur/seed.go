package main

import (
	"github.com/spf13/cobra"

	"fyyur/internal/store"
)

// seedCmd loads the demo listings without starting the server.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo venues, artists and shows",
	Long:  `Load the demo listings into an empty directory. A populated directory is left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase(cmd.Context(), cfg.Database.URL)
		if err != nil {
			return err
		}
		defer db.Close()

		return bootstrapDirectory(cmd.Context(), store.New(db))
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
