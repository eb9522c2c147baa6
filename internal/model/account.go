package model

import (
	"github.com/shopspring/decimal"
)

// Account holds identity, credentials, balance and the ordered history of one
// customer. The balance only changes through Deposit, Withdraw and Transfer.
type Account struct {
	id      int64
	pin     int
	balance decimal.Decimal
	history []Transaction
}

func NewAccount(id int64, pin int) *Account {
	return &Account{id: id, pin: pin, balance: decimal.Zero}
}

// RestoreAccount rebuilds an account from stored state. history must be in
// chronological order.
func RestoreAccount(id int64, pin int, balance decimal.Decimal, history []Transaction) *Account {
	h := make([]Transaction, len(history))
	copy(h, history)
	return &Account{id: id, pin: pin, balance: balance, history: h}
}

func (a *Account) ID() int64 { return a.id }

func (a *Account) Balance() decimal.Decimal { return a.balance }

// CheckPIN reports whether pin matches the account credential.
func (a *Account) CheckPIN(pin int) bool { return a.pin == pin }

// Transactions returns a copy of the history, oldest first.
func (a *Account) Transactions() []Transaction {
	out := make([]Transaction, len(a.history))
	copy(out, a.history)
	return out
}

// Deposit adds a strictly positive amount.
func (a *Account) Deposit(amount decimal.Decimal) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, ErrNonPositiveAmount
	}
	a.balance = a.balance.Add(amount)
	return a.record(KindDeposit, amount, 0), nil
}

// CanDebit checks 0 < amount <= balance without changing anything.
func (a *Account) CanDebit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	return nil
}

// Withdraw removes amount, allowing the balance to reach exactly zero.
func (a *Account) Withdraw(amount decimal.Decimal) (Transaction, error) {
	if err := a.CanDebit(amount); err != nil {
		return Transaction{}, err
	}
	a.balance = a.balance.Sub(amount)
	return a.record(KindWithdraw, amount, 0), nil
}

func (a *Account) record(kind Kind, amount decimal.Decimal, counterpartyID int64) Transaction {
	tx := newTransaction(a.id, kind, amount, counterpartyID)
	a.history = append(a.history, tx)
	return tx
}

// Transfer moves amount from one account to another. The amount is checked
// against the sender before the accounts are compared. On success the sender
// records Transfer(-amount) and the recipient Transfer(+amount), in that order.
func Transfer(from, to *Account, amount decimal.Decimal) (out, in Transaction, err error) {
	if err := from.CanDebit(amount); err != nil {
		return Transaction{}, Transaction{}, err
	}
	if from.id == to.id {
		return Transaction{}, Transaction{}, ErrSameAccount
	}

	from.balance = from.balance.Sub(amount)
	to.balance = to.balance.Add(amount)

	out = from.record(KindTransfer, amount.Neg(), to.id)
	in = to.record(KindTransfer, amount, from.id)
	return out, in, nil
}
