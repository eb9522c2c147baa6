package store

import (
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	sqlite "github.com/mattn/go-sqlite3"
)

var transactionColumns = []string{"seq", "id", "account_id", "kind", "amount", "counterparty_id", "timestamp"}

// CreateTransaction appends one ledger entry. seq is assigned by the database
// and defines chronological order.
func (s *SQLiteStore) CreateTransaction(tx Transaction) error {
	query, args, err := s.sb.
		Insert("transactions").
		Columns("id", "account_id", "kind", "amount", "counterparty_id", "timestamp").
		Values(tx.ID, tx.AccountID, tx.Kind, tx.Amount, tx.CounterpartyID, tx.Timestamp).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build SQL: %w", err)
	}

	if _, err := s.db.Exec(query, args...); err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite.ErrConstraintForeignKey {
			return fmt.Errorf("failed to insert transaction (account_id: %d): %w", tx.AccountID, ErrRecordNotFound)
		}
		return fmt.Errorf("failed to insert transaction (account_id: %d): %w", tx.AccountID, err)
	}

	return nil
}

func (s *SQLiteStore) GetTransactionsByAccount(accountID int64, limit int) ([]*Transaction, error) {
	if _, err := s.GetAccountByID(accountID); err != nil {
		return nil, err
	}

	builder := s.sb.
		Select(transactionColumns...).
		From("transactions").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("seq ASC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL: %w", err)
	}

	var transactions []*Transaction
	if err := sqlx.Select(s.db, &transactions, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}

	return transactions, nil
}
