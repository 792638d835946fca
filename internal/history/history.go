// Package history persists ranking runs to a database backend.
package history

import (
	"os"
	"path/filepath"
	"time"

	"github.com/huangsam/surveyrank/schema"
)

// Table names for run history.
const (
	runsTable    = "surveyrank_runs"
	entriesTable = "surveyrank_entries"
)

// GetDBFilePath returns the default SQLite database path for run history,
// under the user cache directory.
func GetDBFilePath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = "."
	}
	dir := filepath.Join(base, "surveyrank")
	_ = os.MkdirAll(dir, 0o755)
	return filepath.Join(dir, "history.db")
}

// quoteTableName quotes an identifier per backend conventions.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return "`" + name + "`"
	default: // SQLite and PostgreSQL
		return `"` + name + `"`
	}
}

// formatTime converts a timestamp to the storage representation per
// backend. SQLite keeps text; MySQL and PostgreSQL take native datetimes.
func formatTime(t time.Time, backend schema.DatabaseBackend) any {
	if backend == schema.SQLiteBackend {
		return t.UTC().Format(time.RFC3339Nano)
	}
	return t
}
