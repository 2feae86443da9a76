// Package history persists a chronicle of finished quests and goals,
// so a guild master can look back on past games. It supports SQLite
// for a local single file and PostgreSQL for a shared server.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/guildhall-game/guildhall/internal/config"
)

// Goal outcomes recorded in the chronicle
const (
	OutcomeCollected = "collected"
	OutcomeFailed    = "failed"
)

// QuestRecord is one settled quest as stored in the chronicle.
type QuestRecord struct {
	ID         int64
	NPCName    string
	NPCRole    string
	Item       string
	Amount     int
	Reward     int
	Success    bool
	Day        int
	Hour       int
	RecordedAt time.Time
}

// GoalRecord is one settled player goal as stored in the chronicle.
type GoalRecord struct {
	ID         int64
	Item       string
	Amount     int
	Reward     int
	Outcome    string
	Day        int
	Hour       int
	RecordedAt time.Time
}

// Chronicle wraps the database connection and provides the history
// operations.
type Chronicle struct {
	db      *sql.DB
	dialect Dialect
}

// Open opens the chronicle described by the config. SQLite paths get
// their directory created; PostgreSQL connects via the DSN.
func Open(cfg config.HistoryConfig) (*Chronicle, error) {
	dialect := NewDialect(DialectType(cfg.Dialect))

	var dsn string
	switch dialect.(type) {
	case *PostgresDialect:
		dsn = cfg.DSN
	default:
		dir := filepath.Dir(cfg.Path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create chronicle directory: %w", err)
		}
		dsn = cfg.Path
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open chronicle: %w", err)
	}

	for _, stmt := range dialect.InitStatements() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize chronicle: %w", err)
		}
	}

	c := &Chronicle{db: db, dialect: dialect}

	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run chronicle migrations: %w", err)
	}

	return c, nil
}

// Close closes the database connection.
func (c *Chronicle) Close() error {
	return c.db.Close()
}

// migrate creates the chronicle schema if it doesn't exist.
func (c *Chronicle) migrate() error {
	migrations := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS quest_history (
			id %s,
			npc_name TEXT NOT NULL,
			npc_role TEXT NOT NULL,
			item TEXT NOT NULL,
			amount INTEGER NOT NULL,
			reward INTEGER NOT NULL,
			success INTEGER NOT NULL,
			day INTEGER NOT NULL,
			hour INTEGER NOT NULL,
			recorded_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, c.dialect.IDColumn()),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS goal_history (
			id %s,
			item TEXT NOT NULL,
			amount INTEGER NOT NULL,
			reward INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			day INTEGER NOT NULL,
			hour INTEGER NOT NULL,
			recorded_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, c.dialect.IDColumn()),

		`CREATE INDEX IF NOT EXISTS idx_quest_history_recorded ON quest_history(recorded_at)`,
		`CREATE INDEX IF NOT EXISTS idx_goal_history_recorded ON goal_history(recorded_at)`,
	}

	for _, m := range migrations {
		if _, err := c.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}

	return nil
}

// RecordQuest writes one settled quest to the chronicle.
func (c *Chronicle) RecordQuest(r QuestRecord) error {
	query := buildQuery(c.dialect, `
		INSERT INTO quest_history (npc_name, npc_role, item, amount, reward, success, day, hour, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	success := 0
	if r.Success {
		success = 1
	}

	_, err := c.db.Exec(query, r.NPCName, r.NPCRole, r.Item, r.Amount, r.Reward, success, r.Day, r.Hour, time.Now())
	return err
}

// RecordGoal writes one settled goal to the chronicle.
func (c *Chronicle) RecordGoal(r GoalRecord) error {
	query := buildQuery(c.dialect, `
		INSERT INTO goal_history (item, amount, reward, outcome, day, hour, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := c.db.Exec(query, r.Item, r.Amount, r.Reward, r.Outcome, r.Day, r.Hour, time.Now())
	return err
}

// RecentQuests returns the most recently settled quests, newest first.
func (c *Chronicle) RecentQuests(limit int) ([]QuestRecord, error) {
	query := buildQuery(c.dialect, `
		SELECT id, npc_name, npc_role, item, amount, reward, success, day, hour, recorded_at
		FROM quest_history
		ORDER BY id DESC
		LIMIT ?
	`)

	rows, err := c.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []QuestRecord
	for rows.Next() {
		var r QuestRecord
		var success int
		if err := rows.Scan(&r.ID, &r.NPCName, &r.NPCRole, &r.Item, &r.Amount, &r.Reward, &success, &r.Day, &r.Hour, &r.RecordedAt); err != nil {
			return nil, err
		}
		r.Success = success != 0
		records = append(records, r)
	}
	return records, rows.Err()
}

// RecentGoals returns the most recently settled goals, newest first.
func (c *Chronicle) RecentGoals(limit int) ([]GoalRecord, error) {
	query := buildQuery(c.dialect, `
		SELECT id, item, amount, reward, outcome, day, hour, recorded_at
		FROM goal_history
		ORDER BY id DESC
		LIMIT ?
	`)

	rows, err := c.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []GoalRecord
	for rows.Next() {
		var r GoalRecord
		if err := rows.Scan(&r.ID, &r.Item, &r.Amount, &r.Reward, &r.Outcome, &r.Day, &r.Hour, &r.RecordedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// QuestTotals returns the all-time completed and failed quest counts.
func (c *Chronicle) QuestTotals() (completed, failed int, err error) {
	err = c.db.QueryRow(`
		SELECT
			COUNT(CASE WHEN success = 1 THEN 1 END),
			COUNT(CASE WHEN success = 0 THEN 1 END)
		FROM quest_history
	`).Scan(&completed, &failed)
	return completed, failed, err
}
