package store

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	sq "github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps the directory in a private in-memory SQLite database.
// The database disappears when the store is closed.
type SQLiteStore struct {
	db   sqlx.Ext
	root *sqlx.DB
	sb   sq.StatementBuilderType
}

func NewSQLiteStore(migrationsFS fs.FS) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("file:atm-%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())

	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("can not open database : %w", err)
	}
	// the in-memory database lives as long as its single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("can not connect with database : %w", err)
	}
	if err := runMigrations(db.DB, migrationsFS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database : %w", err)
	}

	return &SQLiteStore{
		db:   db,
		root: db,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}, nil
}

func (s *SQLiteStore) ExecTx(fn func(Repository) error) error {
	if s.root == nil {
		return ErrNestedTx
	}

	tx, err := s.root.Beginx()
	if err != nil {
		return fmt.Errorf("failed to start transaction : %w", err)
	}

	txStore := &SQLiteStore{db: tx, sb: s.sb}

	err = fn(txStore)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	if s.root != nil {
		return s.root.Close()
	}
	return nil
}

func runMigrations(db *sql.DB, migrationsFS fs.FS) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to set up migrate driver : %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source driver : %w", err)
	}

	m, err := migrate.NewWithInstance(
		"iofs",
		sourceDriver,
		"sqlite3",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to set up migrate instance : %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migration(up) : %w", err)
	}

	return nil
}
