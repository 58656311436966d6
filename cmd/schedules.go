package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwtan/cronflow/pkg/crontz"
)

var schedulesUTC bool

var schedulesCmd = &cobra.Command{
	Use:   "schedules",
	Short: "List the registered schedules",
	Long: `List the registered schedule names with their cron literals in local
(Singapore) time. With --utc each literal is also shown converted.`,
	RunE: runSchedules,
}

func init() {
	rootCmd.AddCommand(schedulesCmd)
	schedulesCmd.Flags().BoolVar(&schedulesUTC, "utc", false, "also show the UTC equivalent of each schedule")
}

func runSchedules(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	for _, name := range crontz.ScheduleNames() {
		literal, _ := crontz.Schedule(name)

		if !schedulesUTC {
			fmt.Fprintf(out, "%-20s %s\n", styleLabel.Render(name), literal)
			continue
		}

		result, err := crontz.ConvertNamed(name, 8)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%-20s %-16s %s %s\n",
			styleLabel.Render(name),
			literal,
			styleMuted.Render("utc:"),
			result.Converted.String())
	}

	return nil
}
