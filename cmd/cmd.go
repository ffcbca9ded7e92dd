// Package cmd defines the command-line interface for statelog.
package cmd

import (
	"github.com/huangsam/statelog/internal/contract"
	"github.com/huangsam/statelog/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add subcommands to the root command
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(mcpCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("input", contract.DefaultInputPath, "Path to the state log when no positional path is given")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of top alarm codes to display (1-5)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or table or json or yaml or csv or xlsx or pdf or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to (required for xlsx, pdf, parquet)")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for percentages")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in table output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("log-level", contract.DefaultLogLevel, "Log level on stderr: debug or info or warn or error")
	rootCmd.PersistentFlags().Bool("require-data", false, "Fail when no time elapsed instead of reporting availability as n/a")
	rootCmd.PersistentFlags().String("metrics-file", "", "Write Prometheus textfile metrics to this path")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
