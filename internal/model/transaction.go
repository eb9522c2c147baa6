package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind is the closed set of ledger events an account can record.
type Kind int

const (
	KindWithdraw Kind = iota + 1
	KindDeposit
	KindTransfer
)

func (k Kind) String() string {
	switch k {
	case KindWithdraw:
		return "Withdraw"
	case KindDeposit:
		return "Deposit"
	case KindTransfer:
		return "Transfer"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a label produced by Kind.String back to its Kind.
func ParseKind(label string) (Kind, error) {
	switch label {
	case "Withdraw":
		return KindWithdraw, nil
	case "Deposit":
		return KindDeposit, nil
	case "Transfer":
		return KindTransfer, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, label)
	}
}

// Transaction is an immutable record of one balance change.
// Transfer amounts are negative on the sender's record and positive on the recipient's.
type Transaction struct {
	id             uuid.UUID
	accountID      int64
	kind           Kind
	amount         decimal.Decimal
	counterpartyID int64
	at             time.Time
}

func newTransaction(accountID int64, kind Kind, amount decimal.Decimal, counterpartyID int64) Transaction {
	return Transaction{
		id:             uuid.New(),
		accountID:      accountID,
		kind:           kind,
		amount:         amount,
		counterpartyID: counterpartyID,
		at:             time.Now(),
	}
}

// RestoreTransaction rebuilds a transaction read back from a store.
func RestoreTransaction(id uuid.UUID, accountID int64, kind Kind, amount decimal.Decimal, counterpartyID int64, at time.Time) Transaction {
	return Transaction{
		id:             id,
		accountID:      accountID,
		kind:           kind,
		amount:         amount,
		counterpartyID: counterpartyID,
		at:             at,
	}
}

func (t Transaction) ID() uuid.UUID           { return t.id }
func (t Transaction) AccountID() int64        { return t.accountID }
func (t Transaction) Kind() Kind              { return t.kind }
func (t Transaction) Amount() decimal.Decimal { return t.amount }
func (t Transaction) Time() time.Time         { return t.at }

// CounterpartyID is the other account of a transfer, or 0.
func (t Transaction) CounterpartyID() int64 { return t.counterpartyID }

// Label is the human readable name of the transaction kind.
func (t Transaction) Label() string { return t.kind.String() }
