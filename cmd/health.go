package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// healthCmd runs the catalog health check once.
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check snapshot freshness and the products table",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		report, err := rt.service.CheckHealth(cmd.Context())
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))

		if !report.Healthy() {
			return fmt.Errorf("catalog unhealthy: %d problem(s)", len(report.Errors))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(healthCmd)
}
