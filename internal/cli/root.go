package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errorColor = color.New(color.FgRed, color.Bold)

// rootCmd is the root command for apkplan.
var rootCmd = &cobra.Command{
	Use:     "apkplan",
	Version: "dev",
	Short:   "Multi-APK export planner",
	Long: `apkplan plans the set of APK variants to export from one or more projects
sharing a single application package.

It validates that all variants are distinguishable at install time, expands
variants along ABI/density/locale axes, assigns stable build slots, and
reconciles each export against the previous build log so unchanged variants
keep their revision numbers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the apkplan version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(logCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("%s %w", errorColor.Sprint("error:"), err)
	}
	return nil
}
