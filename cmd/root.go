package cmd

import (
	"fmt"
	"os"

	"github.com/Budomar/ProductCatalog/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir is where .env is looked up.
var configDir string

// RootCmd is the catalog CLI.
var RootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Boiler product catalog",
	Long: `Keeps the boiler catalog in sync with the pricing and stock spreadsheets
and serves it over HTTP.

Settings come from the environment (SERVER_PORT, DATABASE_DRIVER, CATALOG_PRICING_URL, ...)
and an optional .env file in the --config directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	err := RootCmd.Execute()
	if err == nil {
		return
	}

	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console", Output: "stderr"})
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	l.Error("Command failed", zap.Error(err))
	_ = l.Sync()
	os.Exit(1)
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config", ".", "Directory holding the .env file")
}
