package schema

// Custom string types for type safety.
type (
	// Family represents a raw-column normalization family.
	Family string

	// OutputMode represents the format of the ranking table output.
	OutputMode string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string
)

// The three column families sharing a normalization rule.
const (
	RankedFamily    Family = "ranked"    // ordinal rank 1-8, 1 is best
	DirectFamily    Family = "direct"    // already on the 1-5 scale
	AgreementFamily Family = "agreement" // Likert agreement labels
)

// Column identifier prefixes and question-text markers used for
// classification. These come from the survey export format and are fixed.
const (
	RankedPrefix    = "Q35_"
	AgreementPrefix = "Q58"
	RateTextMarker  = "Rate"
	ScaleTextMarker = "scale"
)

// Rank scale bounds for the ranked family.
const (
	MinRank = 1
	MaxRank = 8
)

// Unified rating scale bounds.
const (
	MinRating = 1.0
	MaxRating = 5.0
)

// AgreementRatings maps Likert agreement labels to the unified scale.
// Both "Neither" spellings appear in real exports and mean Neutral.
var AgreementRatings = map[string]float64{
	"Strongly Agree":             5,
	"Agree":                      4,
	"Neutral":                    3,
	"Neither agree nor disagree": 3,
	"Neither disagree or agree":  3,
	"Disagree":                   2,
	"Strongly Disagree":          1,
}

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All history backends supported.
const (
	NoneBackend       DatabaseBackend = "none" // default
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
)

// AllFamilies returns a list of all column families.
var AllFamilies = []Family{RankedFamily, DirectFamily, AgreementFamily}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidHistoryBackends lists all valid history backends.
var ValidHistoryBackends = map[DatabaseBackend]struct{}{
	NoneBackend:       {},
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
}
