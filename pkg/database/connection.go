package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/RajFruit/Hospital-Managment-System/pkg/config"
	"github.com/RajFruit/Hospital-Managment-System/pkg/logger"
)

// DB wraps the pooled sql.DB handle shared by every repository
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnection opens a pooled PostgreSQL connection and verifies it with
// a bounded ping before handing it out.
func NewConnection(cfg *config.DatabaseConfig, log *logger.Logger) (*DB, error) {
	sqlDB, err := sql.Open("postgres", connectionString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"host":     cfg.Host,
		"database": cfg.Name,
	}).Info("Database connection established")

	return &DB{DB: sqlDB, logger: log}, nil
}

// connectionString assembles the lib/pq DSN. The password pair is omitted
// when blank so local trust-auth setups keep a clean DSN.
func connectionString(cfg *config.DatabaseConfig) string {
	pairs := []string{
		"host=" + cfg.Host,
		fmt.Sprintf("port=%d", cfg.Port),
		"user=" + cfg.User,
		"dbname=" + cfg.Name,
		"sslmode=" + cfg.SSLMode,
		"connect_timeout=10",
	}
	if cfg.Password != "" {
		pairs = append(pairs, "password="+cfg.Password)
	}
	return strings.Join(pairs, " ")
}

// Close closes the database connection
func (db *DB) Close() error {
	if db.DB != nil {
		return db.DB.Close()
	}
	return nil
}

// Health checks the database connection health
func (db *DB) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return db.PingContext(ctx)
}

// BeginTx starts a new transaction
func (db *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return db.DB.BeginTx(ctx, opts)
}
