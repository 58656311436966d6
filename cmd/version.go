package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwtan/cronflow/pkg/version"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display the cronflow version, commit hash, and build date.`,
	Run: func(cmd *cobra.Command, args []string) {
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), version.Version())
			return
		}

		fmt.Fprintf(cmd.OutOrStdout(), "cronflow %s\n", version.Version())
		fmt.Fprintf(cmd.OutOrStdout(), "Commit: %s\n", version.Commit())
		fmt.Fprintf(cmd.OutOrStdout(), "Built: %s\n", version.BuildDate())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "show only the version number")
}
