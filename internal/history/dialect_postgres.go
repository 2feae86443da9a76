package history

import "fmt"

// PostgresDialect implements Dialect for PostgreSQL databases.
type PostgresDialect struct{}

// DriverName returns "postgres" for the lib/pq driver.
func (d *PostgresDialect) DriverName() string {
	return "postgres"
}

// Placeholder returns "$N" for the given position (PostgreSQL uses numbered placeholders).
func (d *PostgresDialect) Placeholder(position int) string {
	return fmt.Sprintf("$%d", position)
}

// IDColumn returns the PostgreSQL auto-increment primary key definition.
func (d *PostgresDialect) IDColumn() string {
	return "BIGSERIAL PRIMARY KEY"
}

// InitStatements returns nothing: PostgreSQL needs no per-connection setup here.
func (d *PostgresDialect) InitStatements() []string {
	return nil
}
