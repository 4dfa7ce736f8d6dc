package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/feetrack/api/config"
	"github.com/feetrack/api/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Storage defines the interface that all database implementations must satisfy
type Storage interface {
	// Lifecycle methods
	Init() error
	Close() error
	HealthCheck() error

	// GORM DB access
	GetDB() interface{} // Returns *gorm.DB for GORMStore, *sql.DB for PostgreSQLStore

	// Aggregation row sources. Both stores run parameterized queries and
	// scan into the typed AmountRow; the summing itself lives in services.
	AmountRowsByCommittee(ctx context.Context, committee string) ([]AmountRow, error)
	AmountRows(ctx context.Context) ([]AmountRow, error)
}

// AmountRow is the slice of a payment row the aggregation reads: the
// committee name, the legacy amount text and the five category texts.
// Pointers are nil for NULL columns.
type AmountRow struct {
	Committee string
	Amount    *string
	CF        *string
	LAC       *string
	PTA       *string
	QAA       *string
	RHC       *string
}

// Category returns the raw category value by name, nil-safe.
func (r AmountRow) Category(name string) *string {
	switch name {
	case model.CommitteeCF:
		return r.CF
	case model.CommitteeLAC:
		return r.LAC
	case model.CommitteePTA:
		return r.PTA
	case model.CommitteeQAA:
		return r.QAA
	case model.CommitteeRHC:
		return r.RHC
	}
	return nil
}

type GORMStore struct {
	db *gorm.DB
}

// StartGORM initializes a GORM connection to PostgreSQL
func StartGORM() (*GORMStore, error) {
	getEnv, err := config.Get()
	if err != nil {
		return nil, err
	}

	// Build DSN (Data Source Name)
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		getEnv.DB_HOST,
		getEnv.DB_USER_NAME,
		getEnv.DB_PASSWORD,
		getEnv.DB_NAME,
		getEnv.DB_PORT,
		getEnv.DB_SSL_MODE,
	)

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if getEnv.GO_ENV == "production" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	// Open GORM connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: false,
		PrepareStmt:            true, // Prepare statements for better performance
	})
	if err != nil {
		log.Println("Unable to connect to PostgreSQL with GORM:", err)
		return nil, err
	}

	// Get underlying *sql.DB to configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Successfully connected to PostgreSQL Database with GORM.")

	return &GORMStore{db: db}, nil
}

// Init runs the AutoMigrate to create/update tables
func (s *GORMStore) Init() error {
	log.Println("Running GORM AutoMigrate for all models...")

	err := s.db.AutoMigrate(
		// Identity models
		&model.User{},
		&model.Profile{},

		// Committee catalog
		&model.Committee{},

		// Payment models
		&model.Payment{},
		&model.PaymentProof{},
		&model.Feedback{},

		// Token blacklist
		&model.JWTTokenBlacklist{},

		// Audit & logging models
		&model.CronJobLog{},
		&model.StaffAuditLog{},
	)

	if err != nil {
		log.Println("Error running AutoMigrate:", err)
		return err
	}

	log.Println("GORM AutoMigrate completed successfully!")
	return nil
}

// Close closes the database connection
func (s *GORMStore) Close() error {
	log.Println("Closing GORM PostgreSQL connection...")
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB returns the GORM DB instance for use in repositories/handlers
func (s *GORMStore) GetDB() interface{} {
	return s.db
}

// HealthCheck verifies the database connection is alive
func (s *GORMStore) HealthCheck() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// AmountRowsByCommittee returns the amount slice of every payment row
// filed under the given committee name (case-sensitive match).
func (s *GORMStore) AmountRowsByCommittee(ctx context.Context, committee string) ([]AmountRow, error) {
	var rows []AmountRow
	err := s.db.WithContext(ctx).
		Raw(`SELECT committee, amount, cf, lac, pta, qaa, rhc FROM payments WHERE committee = ? AND deleted_at IS NULL`, committee).
		Scan(&rows).Error
	return rows, err
}

// AmountRows returns the amount slice of every payment row.
func (s *GORMStore) AmountRows(ctx context.Context) ([]AmountRow, error) {
	var rows []AmountRow
	err := s.db.WithContext(ctx).
		Raw(`SELECT committee, amount, cf, lac, pta, qaa, rhc FROM payments WHERE deleted_at IS NULL`).
		Scan(&rows).Error
	return rows, err
}
