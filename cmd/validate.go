package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwtan/cronflow/internal/workflow"
	"github.com/jwtan/cronflow/pkg/crontz"
	"github.com/jwtan/cronflow/pkg/logger"
)

var validateEnvFile string

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate workflow configuration files",
	Long: `Validate one or more workflow configuration YAML files against the
integration schema. Every problem in a file is reported, not just the
first; the command exits non-zero when any file has findings.`,
	Example: `  cronflow validate workflow.yaml
  cronflow validate --env .env deploy/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVar(&validateEnvFile, "env", "", "dotenv file merged beneath each config's variables")
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	failed := 0
	for _, path := range args {
		doc, err := workflow.LoadFileWithEnv(path, validateEnvFile)
		if err != nil {
			return err
		}

		findings := doc.Validate()
		if len(findings) == 0 {
			fmt.Fprintf(out, "%s %s\n", styleSuccess.Render("ok"), path)
			if schedule := doc.Config.Schedule; schedule != "" {
				fmt.Fprintf(out, "  %s %s %s\n",
					styleMuted.Render("schedule:"), schedule,
					styleMuted.Render("(~"+crontz.SGTHourDisplay(schedule)+" UTC)"))
			}
			continue
		}

		failed++
		fmt.Fprintf(out, "%s %s\n", styleError.Render("invalid"), path)
		for _, finding := range findings {
			fmt.Fprintf(out, "  %s %s\n", styleError.Render("-"), finding)
		}
		if doc.DecodeErr != nil {
			logger.Debug("Typed decode failed", "path", path, "error", doc.DecodeErr)
		}
	}

	if failed > 0 {
		// Findings are already printed; keep the error itself terse.
		cmd.SilenceUsage = true
		return fmt.Errorf("%d of %d file(s) failed validation", failed, len(args))
	}

	return nil
}
