package store

import "github.com/shopspring/decimal"

type Account struct {
	ID      int64           `db:"id"`
	PIN     int             `db:"pin"`
	Balance decimal.Decimal `db:"balance"`
}

type Transaction struct {
	Seq            int64           `db:"seq"`
	ID             string          `db:"id"`
	AccountID      int64           `db:"account_id"`
	Kind           string          `db:"kind"`
	Amount         decimal.Decimal `db:"amount"`
	CounterpartyID int64           `db:"counterparty_id"`
	Timestamp      int64           `db:"timestamp"`
}
