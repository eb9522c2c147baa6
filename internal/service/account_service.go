package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hance08/atm/internal/config"
	"github.com/hance08/atm/internal/model"
	"github.com/hance08/atm/internal/store"
	"github.com/pterm/pterm"
	"go.opentelemetry.io/otel/attribute"
)

type AccountService struct {
	repo store.Repository
	log  *pterm.Logger
	obs  *instruments
}

func NewAccountService(repo store.Repository, logger *pterm.Logger, obs *instruments) *AccountService {
	return &AccountService{repo: repo, log: logger, obs: obs}
}

// SeedAccounts creates the directory. Either every seed is created or none is.
func (as *AccountService) SeedAccounts(ctx context.Context, seeds []config.AccountConfig) (err error) {
	ctx, span := as.obs.start(ctx, "AccountService.SeedAccounts", attribute.Int("accounts", len(seeds)))
	defer func() { as.obs.finish(ctx, span, "seed", err) }()

	err = as.repo.ExecTx(func(repo store.Repository) error {
		for _, seed := range seeds {
			if err := repo.CreateAccount(seed.ID, seed.PIN); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to seed accounts: %w", err)
	}

	as.log.Debug("account directory seeded", as.log.Args("accounts", len(seeds)))
	return nil
}

// Authenticate returns the account whose ID and PIN both match.
func (as *AccountService) Authenticate(ctx context.Context, id int64, pin int) (acc *model.Account, err error) {
	ctx, span := as.obs.start(ctx, "AccountService.Authenticate", attribute.Int64("account.id", id))
	defer func() { as.obs.finish(ctx, span, "authenticate", err) }()

	acc, err = loadAccount(as.repo, id)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			as.log.Warn("login rejected: unknown account", as.log.Args("account_id", id))
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if !acc.CheckPIN(pin) {
		as.log.Warn("login rejected: wrong PIN", as.log.Args("account_id", id))
		return nil, model.ErrInvalidCredentials
	}

	as.log.Info("login accepted", as.log.Args("account_id", id))
	return acc, nil
}

func (as *AccountService) GetAccount(ctx context.Context, id int64) (*model.Account, error) {
	return loadAccount(as.repo, id)
}

func (as *AccountService) CountAccounts() (int, error) {
	accounts, err := as.repo.GetAllAccounts()
	if err != nil {
		return 0, err
	}
	return len(accounts), nil
}
