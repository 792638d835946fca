// Package cmd defines the command-line interface for surveyrank.
package cmd

import (
	"github.com/huangsam/surveyrank/internal/contract"
	"github.com/huangsam/surveyrank/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(historyCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write the ranking table to")
	rootCmd.PersistentFlags().IntP("limit", "l", 0, "Number of entries to display (0 = all)")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for mean ratings")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("history-backend", string(schema.NoneBackend), "Run history backend: none or sqlite or mysql or postgresql")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for mysql/postgresql history")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of rankCmd to Viper
	rankCmd.Flags().String("sheet", "", "Worksheet name for xlsx input (default: first sheet)")
	rankCmd.Flags().String("chart-file", contract.DefaultChartFile, "Path for the bar chart image")
	rankCmd.Flags().Bool("no-chart", false, "Skip rendering the bar chart")
	rankCmd.Flags().Int("label-wrap", contract.DefaultLabelWrap, "Chart label wrap width in characters")
	rankCmd.Flags().Bool("strict", false, "Abort on any invalid cell instead of skipping it")
	rankCmd.Flags().Bool("lenient", false, "Warn instead of failing when a column family matches nothing")
	if err := viper.BindPFlags(rankCmd.Flags()); err != nil {
		contract.LogFatal("Error binding rank flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
