package store

import (
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	sqlite "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

var accountColumns = []string{"id", "pin", "balance"}

func (s *SQLiteStore) CreateAccount(id int64, pin int) error {
	query, args, err := s.sb.
		Insert("accounts").
		Columns(accountColumns...).
		Values(id, pin, decimal.Zero).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build SQL : %w", err)
	}

	if _, err := s.db.Exec(query, args...); err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) {
			if sqliteErr.Code == sqlite.ErrConstraint || sqliteErr.ExtendedCode == sqlite.ErrConstraintPrimaryKey {
				return fmt.Errorf("failed to create account %d: %w", id, ErrAccountExists)
			}
		}
		return fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	return nil
}

func (s *SQLiteStore) GetAccountByID(id int64) (*Account, error) {
	query, args, err := s.sb.
		Select(accountColumns...).
		From("accounts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL : %w", err)
	}

	acc := &Account{}
	if err := sqlx.Get(s.db, acc, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account with ID %d: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account with ID %d: %w", id, err)
	}

	return acc, nil
}

func (s *SQLiteStore) GetAllAccounts() ([]*Account, error) {
	query, args, err := s.sb.
		Select(accountColumns...).
		From("accounts").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL : %w", err)
	}

	var accounts []*Account
	if err := sqlx.Select(s.db, &accounts, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}

	return accounts, nil
}

func (s *SQLiteStore) UpdateAccountBalance(id int64, balance decimal.Decimal) error {
	query, args, err := s.sb.
		Update("accounts").
		Set("balance", balance).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build SQL : %w", err)
	}

	result, err := s.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("account with ID %d: %w", id, ErrRecordNotFound)
	}

	return nil
}
