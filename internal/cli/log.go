package cli

import (
	"os"

	"github.com/spf13/cobra"

	"apkplan/internal/config"
	"apkplan/internal/engine"
)

var logPath string

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Display an existing build log",
	Long: `Decode the persisted build log and display the recorded plan: one row per
primary variant with its slot and revision. Soft variants are recorded in
the log as comments only and are not shown here.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := engine.New().ShowLog(&engine.ShowLogRequest{
			LogPath: logPath,
		})
		if err != nil {
			return err
		}

		headerColor.Fprintf(os.Stdout, "%s versionCode=%d\n", result.Plan.Package, result.Plan.VersionCode)
		renderPlanTable(os.Stdout, result.Plan)
		return nil
	},
}

func init() {
	logCmd.Flags().StringVar(&logPath, "log", config.DefaultLogFileName, "Path to the build log")
}
