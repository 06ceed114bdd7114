package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"golang.org/x/exp/slog"
)

type PostgresInfo struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

type Postgres struct {
	db *sql.DB
}

func NewPostgres(info PostgresInfo) (*Postgres, error) {
	db, err := sql.Open("postgres", fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		info.Host, info.Port, info.User, info.Password, info.Database))
	if err != nil {
		return &Postgres{}, err
	}

	p := &Postgres{db: db}
	if err := p.migrate(pgMigration); err != nil {
		return &Postgres{}, err
	}

	return p, nil
}

var pgMigration = []string{
	`CREATE TABLE announcement (
delivery_key VARCHAR(255) PRIMARY KEY,
recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
}

// PostgresLedger is a drop-in replacement for the in-memory ledger that
// survives restarts. It is only wired up when postgres is configured, the
// orchestrator never knows the difference.
type PostgresLedger struct {
	postgres *Postgres
	logger   *slog.Logger
}

func NewPostgresLedger(postgres *Postgres, logger *slog.Logger) *PostgresLedger {
	return &PostgresLedger{
		postgres: postgres,
		logger:   logger,
	}
}

func (l *PostgresLedger) Contains(key string) bool {
	var exists bool
	err := l.postgres.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM announcement WHERE delivery_key = $1)`, key).
		Scan(&exists)
	if err != nil {
		l.logger.Error("failed to check ledger", err, slog.String("key", key))
		return false
	}

	return exists
}

func (l *PostgresLedger) Record(key string) {
	_, err := l.postgres.db.Exec(`INSERT INTO announcement (delivery_key) VALUES ($1)
ON CONFLICT (delivery_key) DO NOTHING`, key)
	if err != nil {
		l.logger.Error("failed to record delivery", err, slog.String("key", key))
	}
}

func (p *Postgres) migrate(wanted []string) error {
	query := `CREATE TABLE IF NOT EXISTS migration
("id" SERIAL PRIMARY KEY, "query" TEXT)`
	_, err := p.db.Exec(query)
	if err != nil {
		return err
	}

	// find existing
	rows, err := p.db.Query(`SELECT query FROM migration ORDER BY id`)
	if err != nil {
		return err
	}

	existing := []string{}
	for rows.Next() {
		var query string
		if err := rows.Scan(&query); err != nil {
			return err
		}
		existing = append(existing, query)
	}
	rows.Close()

	// compare
	missing, err := compareMigrations(wanted, existing)
	if err != nil {
		return err
	}

	// execute missing
	for _, query := range missing {
		if _, err := p.db.Exec(query); err != nil {
			return err
		}

		// register
		if _, err := p.db.Exec(`
INSERT INTO migration
(query) VALUES ($1)
`, query); err != nil {
			return err
		}
	}

	return nil
}

func compareMigrations(wanted, existing []string) ([]string, error) {
	needed := []string{}
	if len(wanted) < len(existing) {
		return []string{}, fmt.Errorf("not enough migrations")
	}

	for i, want := range wanted {
		switch {
		case i >= len(existing):
			needed = append(needed, want)
		case want == existing[i]:
			// do nothing
		case want != existing[i]:
			return []string{}, fmt.Errorf("incompatible migration: %v", want)
		}
	}

	return needed, nil
}
