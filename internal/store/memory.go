package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
)

// MemoryStore keeps the directory in maps. Writes made inside ExecTx are
// rolled back from a snapshot when fn fails.
type MemoryStore struct {
	txMu sync.Mutex

	mu       sync.RWMutex
	accounts map[int64]Account
	txns     map[int64][]Transaction
	seq      int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[int64]Account),
		txns:     make(map[int64][]Transaction),
	}
}

func (s *MemoryStore) CreateAccount(id int64, pin int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[id]; ok {
		return fmt.Errorf("failed to create account %d: %w", id, ErrAccountExists)
	}
	s.accounts[id] = Account{ID: id, PIN: pin, Balance: decimal.Zero}
	return nil
}

func (s *MemoryStore) GetAccountByID(id int64) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account with ID %d: %w", id, ErrRecordNotFound)
	}
	return &acc, nil
}

func (s *MemoryStore) GetAllAccounts() ([]*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]*Account, 0, len(s.accounts))
	for _, acc := range s.accounts {
		acc := acc
		accounts = append(accounts, &acc)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

func (s *MemoryStore) UpdateAccountBalance(id int64, balance decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[id]
	if !ok {
		return fmt.Errorf("account with ID %d: %w", id, ErrRecordNotFound)
	}
	acc.Balance = balance
	s.accounts[id] = acc
	return nil
}

func (s *MemoryStore) CreateTransaction(tx Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[tx.AccountID]; !ok {
		return fmt.Errorf("failed to insert transaction (account_id: %d): %w", tx.AccountID, ErrRecordNotFound)
	}
	s.seq++
	tx.Seq = s.seq
	s.txns[tx.AccountID] = append(s.txns[tx.AccountID], tx)
	return nil
}

func (s *MemoryStore) GetTransactionsByAccount(accountID int64, limit int) ([]*Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.accounts[accountID]; !ok {
		return nil, fmt.Errorf("account with ID %d: %w", accountID, ErrRecordNotFound)
	}

	entries := s.txns[accountID]
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	out := make([]*Transaction, 0, len(entries))
	for _, tx := range entries {
		tx := tx
		out = append(out, &tx)
	}
	return out, nil
}

func (s *MemoryStore) ExecTx(fn func(Repository) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(&memoryTx{s}); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

type memorySnapshot struct {
	accounts map[int64]Account
	txns     map[int64][]Transaction
	seq      int64
}

func (s *MemoryStore) snapshot() memorySnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := memorySnapshot{
		accounts: make(map[int64]Account, len(s.accounts)),
		txns:     make(map[int64][]Transaction, len(s.txns)),
		seq:      s.seq,
	}
	for id, acc := range s.accounts {
		snap.accounts[id] = acc
	}
	for id, entries := range s.txns {
		snap.txns[id] = append([]Transaction(nil), entries...)
	}
	return snap
}

func (s *MemoryStore) restore(snap memorySnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = snap.accounts
	s.txns = snap.txns
	s.seq = snap.seq
}

// memoryTx is the Repository handed to ExecTx callbacks.
type memoryTx struct {
	*MemoryStore
}

func (t *memoryTx) ExecTx(func(Repository) error) error {
	return ErrNestedTx
}
