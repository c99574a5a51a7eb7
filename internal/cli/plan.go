package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"apkplan/internal/engine"
)

var (
	planConfigPath string
	planLogPath    string
	planTarget     string
	planDryRun     bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute the export plan and write the build log",
	Long: `Compute the full export plan for the configured projects.

With the release target (the default), the plan is reconciled against the
existing build log: unchanged variants keep their revision numbers, and any
structural change is rejected until the versionCode is bumped. The clean
target plans from scratch without secondary-axis expansion.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := engine.ParseTarget(planTarget)
		if err != nil {
			return err
		}

		result, err := engine.New().Plan(&engine.PlanRequest{
			ConfigPath: planConfigPath,
			LogPath:    planLogPath,
			Target:     target,
			DryRun:     planDryRun,
		})
		if err != nil {
			return err
		}

		headerColor.Fprintf(os.Stdout, "%s versionCode=%d\n", result.Plan.Package, result.Plan.VersionCode)
		renderPlanTable(os.Stdout, result.Plan)

		if result.Reconciled {
			fmt.Println("Reconciled against previous build log.")
		}
		if result.Written {
			successColor.Fprintf(os.Stdout, "Build log written to %s\n", result.LogPath)
		} else {
			fmt.Println("Dry run: build log not written.")
		}
		return nil
	},
}

func init() {
	planCmd.Flags().StringVar(&planConfigPath, "config", "", "Path to the export config (default: ./export.yaml)")
	planCmd.Flags().StringVar(&planLogPath, "log", "", "Override the build log location")
	planCmd.Flags().StringVar(&planTarget, "target", "release", "Export target: release or clean")
	planCmd.Flags().BoolVar(&planDryRun, "dry-run", false, "Compute and reconcile without writing the build log")
}
