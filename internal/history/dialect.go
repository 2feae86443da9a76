package history

import "strings"

// Dialect abstracts the SQL syntax differences between SQLite and
// PostgreSQL that the chronicle touches.
type Dialect interface {
	// DriverName returns the driver name for sql.Open().
	// SQLite: "sqlite", PostgreSQL: "postgres"
	DriverName() string

	// Placeholder returns the parameter placeholder for the given
	// position (1-indexed). SQLite: "?", PostgreSQL: "$1", "$2", etc.
	Placeholder(position int) string

	// IDColumn returns the auto-incrementing primary key definition
	IDColumn() string

	// InitStatements returns database-specific initialization
	// statements run once after opening
	InitStatements() []string
}

// DialectType identifies the database dialect.
type DialectType string

const (
	DialectSQLite   DialectType = "sqlite"
	DialectPostgres DialectType = "postgres"
)

// NewDialect creates a Dialect for the given type. Unknown types fall
// back to SQLite, the embedded default.
func NewDialect(dialectType DialectType) Dialect {
	switch dialectType {
	case DialectPostgres:
		return &PostgresDialect{}
	default:
		return &SQLiteDialect{}
	}
}

// buildQuery converts a query with ? placeholders to the dialect's
// placeholder format. SQLite queries pass through unchanged.
func buildQuery(d Dialect, query string) string {
	if _, ok := d.(*SQLiteDialect); ok {
		return query
	}

	var result strings.Builder
	position := 1

	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			result.WriteString(d.Placeholder(position))
			position++
		} else {
			result.WriteByte(query[i])
		}
	}

	return result.String()
}
