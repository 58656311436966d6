package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jwtan/cronflow/pkg/crontz"
)

var (
	convertTimezone string
	convertOffset   float64
	convertName     string
)

var convertCmd = &cobra.Command{
	Use:   "convert [cron expression]",
	Short: "Convert a cron expression to UTC",
	Long: `Convert a cron expression from a local timezone to its UTC equivalent.

The expression may be quoted as one argument or given as five bare
fields. The source timezone comes from --tz (or the configured default,
Singapore Time); --offset overrides it with a raw UTC offset in hours.`,
	Example: `  cronflow convert "0 2 * * *"
  cronflow convert 0 2 '*' '*' '*' --tz Asia/Tokyo
  cronflow convert --name daily_2am
  cronflow convert "30 9 * * 1" --offset 5.5`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVar(&convertTimezone, "tz", "", "source timezone label (default from config, SGT)")
	convertCmd.Flags().Float64Var(&convertOffset, "offset", 0, "source UTC offset in hours, overrides --tz")
	convertCmd.Flags().StringVar(&convertName, "name", "", "convert a registered schedule by name instead of a literal")
}

func runConvert(cmd *cobra.Command, args []string) error {
	if convertName == "" && len(args) == 0 {
		return fmt.Errorf("provide a cron expression or --name")
	}
	if convertName != "" && len(args) > 0 {
		return fmt.Errorf("--name and a cron expression are mutually exclusive")
	}

	zone := convertTimezone
	if zone == "" {
		zone = viper.GetString("timezone")
	}

	offset, err := resolveOffset(cmd, zone)
	if err != nil {
		return err
	}

	var result *crontz.Result
	if convertName != "" {
		result, err = crontz.ConvertNamed(convertName, offset)
	} else {
		result, err = crontz.Convert(strings.Join(args, " "), offset)
	}
	if err != nil {
		return err
	}
	if result.Original.Timezone == "" && !cmd.Flags().Changed("offset") {
		result.Original.Timezone = zone
	}

	printResult(cmd, result)

	return nil
}

// resolveOffset picks the explicit --offset when given, otherwise looks
// the timezone label up in the fixed offset table.
func resolveOffset(cmd *cobra.Command, zone string) (float64, error) {
	if cmd.Flags().Changed("offset") {
		return convertOffset, nil
	}

	offset, err := crontz.ZoneOffset(zone)
	if err != nil {
		return 0, fmt.Errorf("%w (supported: %s)", err, strings.Join(crontz.Zones(), ", "))
	}

	return offset, nil
}

func printResult(cmd *cobra.Command, result *crontz.Result) {
	out := cmd.OutOrStdout()

	source := offsetTag(result.OffsetHours)
	if result.Original.Timezone != "" {
		source = fmt.Sprintf("%s, %s", result.Original.Timezone, source)
	}
	if result.Original.Description != "" {
		fmt.Fprintln(out, styleHeading.Render(result.Original.Description))
	}

	fmt.Fprintf(out, "%s %s %s\n", styleLabel.Render("Original:"), result.Original.String(), styleMuted.Render("("+source+")"))
	fmt.Fprintf(out, "%s %s %s\n", styleLabel.Render("Converted:"), result.Converted.String(), styleMuted.Render("(UTC)"))

	switch result.DayAdjustment {
	case -1:
		fmt.Fprintln(out, styleWarning.Render("Runs on the previous day in UTC"))
	case 1:
		fmt.Fprintln(out, styleWarning.Render("Runs on the next day in UTC"))
	}

	for _, note := range result.Notes {
		fmt.Fprintf(out, "  %s %s\n", styleMuted.Render("note:"), note)
	}

	if result.NextLocal != nil && result.NextUTC != nil {
		fmt.Fprintf(out, "%s %s local / %s UTC\n",
			styleLabel.Render("Next run:"),
			result.NextLocal.Format("2006-01-02 15:04"),
			result.NextUTC.Format("2006-01-02 15:04"))
	}
}

func offsetTag(offsetHours float64) string {
	if offsetHours == float64(int(offsetHours)) {
		return fmt.Sprintf("UTC%+d", int(offsetHours))
	}

	return fmt.Sprintf("UTC%+.1f", offsetHours)
}
