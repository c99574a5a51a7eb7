package cli

import (
	"os"

	"github.com/spf13/cobra"

	"apkplan/internal/engine"
)

var checkConfigPath string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the export setup without touching the build log",
	Long: `Run differentiation validation, variant expansion and ordering, and show
the plan a release export would compute. The build log is neither read nor
written, so revisions are not reconciled.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := engine.New().Check(&engine.CheckRequest{
			ConfigPath: checkConfigPath,
		})
		if err != nil {
			return err
		}

		headerColor.Fprintf(os.Stdout, "%s versionCode=%d\n", result.Plan.Package, result.Plan.VersionCode)
		renderPlanTable(os.Stdout, result.Plan)
		successColor.Fprintf(os.Stdout, "%d variant(s), all distinguishable at install time.\n", len(result.Plan.Variants))
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkConfigPath, "config", "", "Path to the export config (default: ./export.yaml)")
}
