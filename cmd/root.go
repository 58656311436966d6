// Package cmd implements the cronflow CLI.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jwtan/cronflow/pkg/logger"
	"github.com/jwtan/cronflow/pkg/version"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "cronflow",
	Short: "Cronflow - cron timezone conversion and workflow config validation",
	Long: `Cronflow converts cron schedules between local timezones and UTC,
tracking day-boundary crossings, and validates workflow configuration
files against the integration schema.

Deployment platforms evaluate cron triggers in UTC; teams write them in
local wall-clock time. Cronflow bridges the two.`,
}

// ExecuteCLI wires build-time version info into the command tree and runs
// it. Exits non-zero on any command error.
func ExecuteCLI(v, commit, date string) {
	version.Set(v, commit, date)
	logger.GetLogger().ConfigureFromEnv()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./cronflow.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config file in standard locations
		viper.SetConfigName("cronflow")
		viper.SetConfigType("yaml")

		// Current directory (highest priority)
		viper.AddConfigPath(".")

		// User config directory
		if userConfigDir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(userConfigDir + "/cronflow")
		}

		// User home directory
		if homeDir, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(homeDir + "/.cronflow")
		}
	}

	viper.SetEnvPrefix("CRONFLOW")
	viper.AutomaticEnv()

	viper.SetDefault("timezone", "SGT")

	// Conversion works without a config file; only an explicitly named
	// file that cannot be read is fatal.
	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("Using config file", "path", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		logger.Fatal("Cannot read config file", "path", cfgFile, "error", err)
	}

	if level := viper.GetString("log_level"); level != "" {
		logger.GetLogger().SetLogLevel(level)
	}
}
