package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	catalogsync "github.com/Budomar/ProductCatalog/feature/catalog/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dryRunSync  bool
	purgeSync   bool
	timeoutSync time.Duration
	yesConfirm  bool
)

// syncCmd runs one catalog sync and exits.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the catalog from the pricing and stock sheets once",
	Long: `Fetches both sheets, rebuilds every product and upserts it by article.
Falls back to the last snapshot when the sheets cannot be fetched.

Examples:
  # Show what would change
  sync --dry-run

  # Sync and delete products no longer in the price sheet (asks for confirmation)
  sync --purge

  # Same, non-interactive
  sync --purge --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		if lockCfg := rt.cfg.Lock; lockCfg.Distributed() && timeoutSync >= lockCfg.TTL() {
			return fmt.Errorf("--timeout %s must be shorter than lock.ttl_seconds (%s)", timeoutSync, lockCfg.TTL())
		}

		purge := purgeSync || rt.cfg.Catalog.PurgeStale
		if purge && !dryRunSync && !confirmDestructiveAction() {
			rt.logger.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}

		result, err := rt.orchestrator.Run(cmd.Context(), catalogsync.Options{
			DryRun:     dryRunSync,
			PurgeStale: purge,
			Timeout:    timeoutSync,
		})
		outcome := catalogsync.OutcomeOf(result, err)

		data, _ := json.MarshalIndent(outcome, "", "  ")
		fmt.Println(string(data))

		if err != nil {
			return err
		}
		rt.logger.Info("Sync finished", zap.String("run_id", outcome.RunID))
		return nil
	},
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("Stale products will be deleted. Type 'yes' to confirm: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}

func init() {
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Plan the sync without writing anything")
	syncCmd.Flags().BoolVar(&purgeSync, "purge", false, "Delete products whose article left the price sheet")
	syncCmd.Flags().DurationVar(&timeoutSync, "timeout", 0, "Bound the whole sync (default catalog.sync_timeout_seconds)")
	syncCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	RootCmd.AddCommand(syncCmd)
}
