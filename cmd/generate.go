package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jwtan/cronflow/internal/workflow"
	"github.com/jwtan/cronflow/pkg/crontz"
	"github.com/jwtan/cronflow/pkg/logger"
)

var (
	generateOutput    string
	generateTimezone  string
	generateOffset    float64
	generateWorkflows []string
)

var generateCmd = &cobra.Command{
	Use:   "generate [schedule]...",
	Short: "Generate a UTC deployment-trigger artifact",
	Long: `Generate the deployment-trigger JSON artifact for a set of schedules.

Each argument is either a registered schedule name (see 'cronflow
schedules') or a quoted cron literal. Schedules from workflow
configuration files can be mixed in with --workflow. All schedules are
converted to UTC; the artifact records how each trigger was derived.`,
	Example: `  cronflow generate daily_2am every_15min
  cronflow generate "30 9 * * 1" --tz Asia/Tokyo -o triggers.json
  cronflow generate --workflow workflow.yaml`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "write the artifact to a file instead of stdout")
	generateCmd.Flags().StringVar(&generateTimezone, "tz", "", "source timezone label (default from config, SGT)")
	generateCmd.Flags().Float64Var(&generateOffset, "offset", 0, "source UTC offset in hours, overrides --tz")
	generateCmd.Flags().StringArrayVar(&generateWorkflows, "workflow", nil, "workflow config file whose schedule is included (repeatable)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && len(generateWorkflows) == 0 {
		return fmt.Errorf("provide at least one schedule or --workflow file")
	}

	zone := generateTimezone
	if zone == "" {
		zone = viper.GetString("timezone")
	}

	defaultOffset := generateOffset
	if !cmd.Flags().Changed("offset") {
		var err error
		defaultOffset, err = crontz.ZoneOffset(zone)
		if err != nil {
			return err
		}
	}

	var pairs []crontz.SchedulePair
	for _, arg := range args {
		pairs = append(pairs, crontz.SchedulePair{NameOrLiteral: arg, OffsetHours: defaultOffset})
	}

	// Workflow files contribute their own schedule, anchored at their own
	// timezone when it names one the offset table knows.
	for _, path := range generateWorkflows {
		doc, err := workflow.LoadFile(path)
		if err != nil {
			return err
		}
		if doc.Config.Schedule == "" {
			logger.Warn("Workflow has no schedule, skipping", "path", path)
			continue
		}

		offset := defaultOffset
		if doc.Config.Timezone != "" {
			if zoneOffset, err := crontz.ZoneOffset(doc.Config.Timezone); err == nil {
				offset = zoneOffset
			} else {
				logger.Warn("Workflow timezone not in offset table, using default",
					"path", path, "timezone", doc.Config.Timezone)
			}
		}

		pairs = append(pairs, crontz.SchedulePair{NameOrLiteral: doc.Config.Schedule, OffsetHours: offset})
	}

	artifact, err := crontz.BuildTriggers(pairs)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return err
	}
	encoded = append(encoded, '\n')

	if generateOutput == "" {
		_, err = cmd.OutOrStdout().Write(encoded)
		return err
	}

	if err := os.WriteFile(generateOutput, encoded, 0o644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}

	logger.Info("Trigger artifact written",
		"path", generateOutput,
		"triggers", len(artifact.Triggers.Crons),
		"run_id", artifact.ConversionInfo.RunID)

	return nil
}
