package service

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/hance08/atm/internal/config"
	"github.com/hance08/atm/internal/model"
	"github.com/hance08/atm/internal/store"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alice = int64(123456)
	bob   = int64(987654)
)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestService(t *testing.T, repo store.Repository) *Service {
	t.Helper()

	svc := NewService(repo, pterm.DefaultLogger.WithWriter(io.Discard))
	require.NoError(t, svc.Account.SeedAccounts(context.Background(), config.DefaultAccounts()))
	return svc
}

func balanceOf(t *testing.T, svc *Service, id int64) decimal.Decimal {
	t.Helper()

	acc, err := svc.Account.GetAccount(context.Background(), id)
	require.NoError(t, err)
	return acc.Balance()
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, store.NewMemoryStore())

	acc, err := svc.Account.Authenticate(ctx, alice, 1234)
	require.NoError(t, err)
	assert.Equal(t, alice, acc.ID())

	_, err = svc.Account.Authenticate(ctx, alice, 4321)
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	_, err = svc.Account.Authenticate(ctx, 111111, 1234)
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	// a valid PIN of another account does not match
	_, err = svc.Account.Authenticate(ctx, bob, 1234)
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestSeedAccountsIsAtomic(t *testing.T) {
	repo := store.NewMemoryStore()
	svc := NewService(repo, pterm.DefaultLogger.WithWriter(io.Discard))

	err := svc.Account.SeedAccounts(context.Background(), []config.AccountConfig{
		{ID: 1, PIN: 1},
		{ID: 1, PIN: 2},
	})
	assert.ErrorIs(t, err, store.ErrAccountExists)

	n, err := svc.Account.CountAccounts()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDepositAndWithdraw(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, store.NewMemoryStore())

	tx, err := svc.Transaction.Deposit(ctx, alice, amount("500"))
	require.NoError(t, err)
	assert.Equal(t, model.KindDeposit, tx.Kind())
	assert.True(t, balanceOf(t, svc, alice).Equal(amount("500")))

	_, err = svc.Transaction.Withdraw(ctx, alice, amount("600"))
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)
	assert.True(t, balanceOf(t, svc, alice).Equal(amount("500")))

	_, err = svc.Transaction.Deposit(ctx, alice, amount("0"))
	assert.ErrorIs(t, err, model.ErrNonPositiveAmount)

	_, err = svc.Transaction.Withdraw(ctx, alice, amount("500"))
	require.NoError(t, err)
	assert.True(t, balanceOf(t, svc, alice).IsZero())

	history, err := svc.Transaction.History(ctx, alice)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, model.KindDeposit, history[0].Kind())
	assert.Equal(t, model.KindWithdraw, history[1].Kind())
}

func TestTransfer(t *testing.T) {
	sqliteStore, err := store.NewSQLiteStore(os.DirFS("../.."))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteStore.Close() })

	repos := map[string]store.Repository{
		"memory": store.NewMemoryStore(),
		"sqlite": sqliteStore,
	}

	for name, repo := range repos {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			svc := newTestService(t, repo)

			_, err := svc.Transaction.Deposit(ctx, alice, amount("500"))
			require.NoError(t, err)

			out, err := svc.Transaction.Transfer(ctx, alice, bob, amount("200"))
			require.NoError(t, err)
			assert.True(t, out.Amount().Equal(amount("-200")))

			assert.True(t, balanceOf(t, svc, alice).Equal(amount("300")))
			assert.True(t, balanceOf(t, svc, bob).Equal(amount("200")))

			aliceHistory, err := svc.Transaction.History(ctx, alice)
			require.NoError(t, err)
			require.Len(t, aliceHistory, 2)
			assert.Equal(t, "Deposit", aliceHistory[0].Label())
			assert.True(t, aliceHistory[0].Amount().Equal(amount("500")))
			assert.Equal(t, "Transfer", aliceHistory[1].Label())
			assert.True(t, aliceHistory[1].Amount().Equal(amount("-200")))
			assert.Equal(t, bob, aliceHistory[1].CounterpartyID())

			bobHistory, err := svc.Transaction.History(ctx, bob)
			require.NoError(t, err)
			require.Len(t, bobHistory, 1)
			assert.True(t, bobHistory[0].Amount().Equal(amount("200")))
		})
	}
}

func TestTransferFailures(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, store.NewMemoryStore())

	_, err := svc.Transaction.Deposit(ctx, alice, amount("100"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		toID    int64
		amount  string
		wantErr error
	}{
		{"unknown recipient", 555555, "50", model.ErrAccountNotFound},
		{"over balance", bob, "100.5", model.ErrInsufficientFunds},
		{"zero amount", bob, "0", model.ErrNonPositiveAmount},
		{"amount checked before recipient", 555555, "-1", model.ErrNonPositiveAmount},
		{"same account", alice, "10", model.ErrSameAccount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Transaction.Transfer(ctx, alice, tt.toID, amount(tt.amount))
			assert.ErrorIs(t, err, tt.wantErr)

			assert.True(t, balanceOf(t, svc, alice).Equal(amount("100")))
			assert.True(t, balanceOf(t, svc, bob).IsZero())

			history, err := svc.Transaction.History(ctx, alice)
			require.NoError(t, err)
			assert.Len(t, history, 1)
		})
	}
}

func TestTransferFullBalance(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, store.NewMemoryStore())

	_, err := svc.Transaction.Deposit(ctx, alice, amount("75.25"))
	require.NoError(t, err)

	_, err = svc.Transaction.Transfer(ctx, alice, bob, amount("75.25"))
	require.NoError(t, err)

	assert.True(t, balanceOf(t, svc, alice).IsZero())
	assert.True(t, balanceOf(t, svc, bob).Equal(amount("75.25")))
}
