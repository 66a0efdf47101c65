package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/msomdec/finance-tracker/internal/domain"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite connection and hands out repositories bound to it.
type DB struct {
	sql  *sql.DB
	path string
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Enable foreign key enforcement.
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// Set a reasonable connection pool for SQLite.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{sql: db, path: dbPath}, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.sql.Close()
}

// Users returns the user repository.
func (db *DB) Users() domain.UserRepository {
	return &UserRepository{db: db.sql}
}

// Categories returns the category repository.
func (db *DB) Categories() domain.CategoryRepository {
	return &CategoryRepository{db: db.sql}
}

// Transactions returns the transaction repository.
func (db *DB) Transactions() domain.TransactionRepository {
	return &TransactionRepository{db: db.sql}
}

// Budgets returns the budget repository.
func (db *DB) Budgets() domain.BudgetRepository {
	return &BudgetRepository{db: db.sql}
}
