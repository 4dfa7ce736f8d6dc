package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
	"github.com/feetrack/api/config"
)

// PostgreSQLStore is the plain database/sql implementation of Storage.
// It carries no ORM: every read is a parameterized query scanned into a
// typed row. Used by tooling that wants the thinnest possible path to
// the data (cmd/seed, one-off scripts).
type PostgreSQLStore struct {
	db *sql.DB
}

func Start() (*PostgreSQLStore, error) {
	getEnv, err := config.Get()

	if err != nil {
		return nil, err
	}

	connectStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv.DB_HOST, getEnv.DB_PORT, getEnv.DB_USER_NAME, getEnv.DB_PASSWORD, getEnv.DB_NAME, getEnv.DB_SSL_MODE)

	db, err := sql.Open("postgres", connectStr)
	if err != nil {
		fmt.Println("Unable to Start PostgresSQL Databse.")
		return nil, err
	}

	log.Println("Successfully connected to PostgresSQL Database.")
	return &PostgreSQLStore{
		db: db,
	}, nil
}

// Init is a no-op for the raw store: schema migration is owned by the
// GORM store. The raw store only ever reads an existing schema.
func (s *PostgreSQLStore) Init() error {
	return s.db.Ping()
}

func (s *PostgreSQLStore) Close() error {
	log.Println("Closing PostgresSQL Database.")
	return s.db.Close()
}

// HealthCheck verifies the database connection is alive
func (s *PostgreSQLStore) HealthCheck() error {
	return s.db.Ping()
}

// GetDB returns the underlying *sql.DB
func (s *PostgreSQLStore) GetDB() interface{} {
	return s.db
}

// AmountRowsByCommittee returns amount rows for one committee name.
func (s *PostgreSQLStore) AmountRowsByCommittee(ctx context.Context, committee string) ([]AmountRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT committee, amount, cf, lac, pta, qaa, rhc FROM payments WHERE committee = $1 AND deleted_at IS NULL`, committee)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAmountRows(rows)
}

// AmountRows returns amount rows for every payment.
func (s *PostgreSQLStore) AmountRows(ctx context.Context) ([]AmountRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT committee, amount, cf, lac, pta, qaa, rhc FROM payments WHERE deleted_at IS NULL`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAmountRows(rows)
}

func scanAmountRows(rows *sql.Rows) ([]AmountRow, error) {
	var out []AmountRow
	for rows.Next() {
		var r AmountRow
		if err := rows.Scan(&r.Committee, &r.Amount, &r.CF, &r.LAC, &r.PTA, &r.QAA, &r.RHC); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
