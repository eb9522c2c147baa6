package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/atm/internal/model"
	"github.com/hance08/atm/internal/store"
)

// loadAccount rebuilds the domain account, history included, from repo.
func loadAccount(repo store.Repository, id int64) (*model.Account, error) {
	rec, err := repo.GetAccountByID(id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, fmt.Errorf("account %d: %w", id, model.ErrAccountNotFound)
		}
		return nil, err
	}

	entries, err := repo.GetTransactionsByAccount(id, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load history of account %d: %w", id, err)
	}

	history := make([]model.Transaction, 0, len(entries))
	for _, entry := range entries {
		tx, err := toModelTransaction(entry)
		if err != nil {
			return nil, err
		}
		history = append(history, tx)
	}

	return model.RestoreAccount(rec.ID, rec.PIN, rec.Balance, history), nil
}

// saveAccount writes the new balance and appends txs, in order.
func saveAccount(repo store.Repository, acc *model.Account, txs ...model.Transaction) error {
	if err := repo.UpdateAccountBalance(acc.ID(), acc.Balance()); err != nil {
		return err
	}
	for _, tx := range txs {
		if err := repo.CreateTransaction(toStoreTransaction(tx)); err != nil {
			return err
		}
	}
	return nil
}

func toModelTransaction(entry *store.Transaction) (model.Transaction, error) {
	id, err := uuid.Parse(entry.ID)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("transaction #%d has invalid id: %w", entry.Seq, err)
	}

	kind, err := model.ParseKind(entry.Kind)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("transaction %s: %w", entry.ID, err)
	}

	return model.RestoreTransaction(
		id,
		entry.AccountID,
		kind,
		entry.Amount,
		entry.CounterpartyID,
		time.Unix(0, entry.Timestamp),
	), nil
}

func toStoreTransaction(tx model.Transaction) store.Transaction {
	return store.Transaction{
		ID:             tx.ID().String(),
		AccountID:      tx.AccountID(),
		Kind:           tx.Kind().String(),
		Amount:         tx.Amount(),
		CounterpartyID: tx.CounterpartyID(),
		Timestamp:      tx.Time().UnixNano(),
	}
}
