package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwtan/cronflow/pkg/crontz"
)

var timezonesCmd = &cobra.Command{
	Use:   "timezones",
	Short: "List the supported timezone labels",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, zone := range crontz.Zones() {
			offset, err := crontz.ZoneOffset(zone)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-22s %s\n", styleLabel.Render(zone), styleMuted.Render(offsetTag(offset)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(timezonesCmd)
}
