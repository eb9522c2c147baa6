package service

import (
	"context"
	"fmt"

	"github.com/hance08/atm/internal/model"
	"github.com/hance08/atm/internal/store"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

type TransactionService struct {
	repo store.Repository
	log  *pterm.Logger
	obs  *instruments
}

func NewTransactionService(repo store.Repository, logger *pterm.Logger, obs *instruments) *TransactionService {
	return &TransactionService{repo: repo, log: logger, obs: obs}
}

func (ts *TransactionService) Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (tx model.Transaction, err error) {
	ctx, span := ts.obs.start(ctx, "TransactionService.Deposit",
		attribute.Int64("account.id", accountID),
		attribute.String("amount", amount.String()),
	)
	defer func() { ts.obs.finish(ctx, span, "deposit", err) }()

	err = ts.repo.ExecTx(func(repo store.Repository) error {
		acc, err := loadAccount(repo, accountID)
		if err != nil {
			return err
		}
		tx, err = acc.Deposit(amount)
		if err != nil {
			return err
		}
		return saveAccount(repo, acc, tx)
	})
	if err != nil {
		ts.log.Warn("deposit failed", ts.log.Args("account_id", accountID, "amount", amount.String(), "error", err))
		return model.Transaction{}, fmt.Errorf("deposit: %w", err)
	}

	ts.log.Info("deposit", ts.log.Args("account_id", accountID, "amount", amount.String()))
	return tx, nil
}

func (ts *TransactionService) Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (tx model.Transaction, err error) {
	ctx, span := ts.obs.start(ctx, "TransactionService.Withdraw",
		attribute.Int64("account.id", accountID),
		attribute.String("amount", amount.String()),
	)
	defer func() { ts.obs.finish(ctx, span, "withdraw", err) }()

	err = ts.repo.ExecTx(func(repo store.Repository) error {
		acc, err := loadAccount(repo, accountID)
		if err != nil {
			return err
		}
		tx, err = acc.Withdraw(amount)
		if err != nil {
			return err
		}
		return saveAccount(repo, acc, tx)
	})
	if err != nil {
		ts.log.Warn("withdrawal failed", ts.log.Args("account_id", accountID, "amount", amount.String(), "error", err))
		return model.Transaction{}, fmt.Errorf("withdraw: %w", err)
	}

	ts.log.Info("withdrawal", ts.log.Args("account_id", accountID, "amount", amount.String()))
	return tx, nil
}

// Transfer moves amount between two accounts in one store transaction.
// The amount is validated against the sender before the recipient is looked up.
// It returns the sender's record.
func (ts *TransactionService) Transfer(ctx context.Context, fromID, toID int64, amount decimal.Decimal) (out model.Transaction, err error) {
	ctx, span := ts.obs.start(ctx, "TransactionService.Transfer",
		attribute.Int64("account.id", fromID),
		attribute.Int64("recipient.id", toID),
		attribute.String("amount", amount.String()),
	)
	defer func() { ts.obs.finish(ctx, span, "transfer", err) }()

	err = ts.repo.ExecTx(func(repo store.Repository) error {
		from, err := loadAccount(repo, fromID)
		if err != nil {
			return err
		}
		if err := from.CanDebit(amount); err != nil {
			return err
		}

		to, err := loadAccount(repo, toID)
		if err != nil {
			return fmt.Errorf("recipient: %w", err)
		}

		var in model.Transaction
		out, in, err = model.Transfer(from, to, amount)
		if err != nil {
			return err
		}

		if err := saveAccount(repo, from, out); err != nil {
			return err
		}
		return saveAccount(repo, to, in)
	})
	if err != nil {
		ts.log.Warn("transfer failed", ts.log.Args("account_id", fromID, "recipient_id", toID, "amount", amount.String(), "error", err))
		return model.Transaction{}, fmt.Errorf("transfer: %w", err)
	}

	ts.log.Info("transfer", ts.log.Args("account_id", fromID, "recipient_id", toID, "amount", amount.String()))
	return out, nil
}

// History returns every transaction of the account, oldest first.
func (ts *TransactionService) History(ctx context.Context, accountID int64) (history []model.Transaction, err error) {
	ctx, span := ts.obs.start(ctx, "TransactionService.History", attribute.Int64("account.id", accountID))
	defer func() { ts.obs.finish(ctx, span, "history", err) }()

	acc, err := loadAccount(ts.repo, accountID)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return acc.Transactions(), nil
}
