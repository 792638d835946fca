package cmd

import (
	"fmt"

	"github.com/huangsam/surveyrank/internal/contract"
	"github.com/huangsam/surveyrank/internal/history"
	"github.com/huangsam/surveyrank/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historySetup loads minimal configuration needed for history operations.
// This is used by commands that need store access without full shared
// setup (no survey path required).
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("history-backend"))
	if backend == "" || backend == schema.NoneBackend {
		// History commands only make sense against a real backend.
		backend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidHistoryBackends[backend]; !ok {
		return fmt.Errorf("invalid history backend %q", backend)
	}
	connStr := viper.GetString("history-db-connect")

	store, err := history.NewStore(backend, connStr)
	if err != nil {
		return fmt.Errorf("failed to initialize history store: %w", err)
	}
	historyStore = store

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history
// commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyCmd is focused on run-history management.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the ranking run history",
	Long: `Manage the database that records past ranking runs.

Each recorded run keeps its source file, respondent count and the full
ranked table, so rankings can be compared across survey cycles.

Supported backends: SQLite (default), MySQL, PostgreSQL

Subcommands:
  status  - Show stored run and entry counts
  clear   - Remove all stored runs
  export  - Export stored runs to Parquet files
  migrate - Apply database schema migrations`,
}

// historyStatusCmd shows stored run counts.
var historyStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Show stored run and entry counts",
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runs, entries, err := historyStore.Status()
		if err != nil {
			contract.LogFatal("Cannot read history status", err)
		}
		fmt.Printf("Backend: %s\n", cfg.HistoryBackend)
		fmt.Printf("Runs:    %d\n", runs)
		fmt.Printf("Entries: %d\n", entries)
	},
}

// historyClearCmd removes all stored runs.
var historyClearCmd = &cobra.Command{
	Use:     "clear",
	Short:   "Remove all stored runs and entries",
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := historyStore.Clear(); err != nil {
			contract.LogFatal("Cannot clear history", err)
		}
		fmt.Println("History cleared.")
	},
}

// historyExportCmd exports stored runs to Parquet.
var historyExportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Export stored runs to Parquet files",
	Long:    `Export all stored runs and their ranked entries to a pair of Parquet files for analysis in Spark, DuckDB, Pandas or any other Parquet-compatible tool.`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := history.ExecuteExport(historyStore, viper.GetString("output-file")); err != nil {
			contract.LogFatal("Cannot export history", err)
		}
	},
}

// historyMigrateCmd applies schema migrations.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database schema migrations",
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// Migrations open their own connection; only config loading here.
		return loadConfigFile()
	},
	Run: func(_ *cobra.Command, _ []string) {
		backend := schema.DatabaseBackend(viper.GetString("history-backend"))
		if backend == "" || backend == schema.NoneBackend {
			backend = schema.SQLiteBackend
		}
		connStr := viper.GetString("history-db-connect")
		targetVersion := viper.GetInt("target-version")
		if err := history.Migrate(backend, connStr, targetVersion); err != nil {
			contract.LogFatal("Cannot migrate history schema", err)
		}
	},
}
