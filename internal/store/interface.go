package store

import "github.com/shopspring/decimal"

// Repository is the account directory and its ledger. Implementations are
// process-local; nothing outlives the Repository.
type Repository interface {
	// Account Operations
	CreateAccount(id int64, pin int) error
	GetAccountByID(id int64) (*Account, error)
	GetAllAccounts() ([]*Account, error)
	UpdateAccountBalance(id int64, balance decimal.Decimal) error

	// Transaction Operations
	CreateTransaction(tx Transaction) error
	// GetTransactionsByAccount returns entries oldest first. limit <= 0 means all.
	GetTransactionsByAccount(accountID int64, limit int) ([]*Transaction, error)

	// ExecTx runs fn atomically: either every write made through the given
	// Repository is kept, or none is.
	ExecTx(fn func(Repository) error) error

	Close() error
}
