package service

import (
	"github.com/hance08/atm/internal/store"
	"github.com/pterm/pterm"
)

type Service struct {
	Account     *AccountService
	Transaction *TransactionService
}

func NewService(repo store.Repository, logger *pterm.Logger) *Service {
	obs := newInstruments()

	return &Service{
		Account:     NewAccountService(repo, logger, obs),
		Transaction: NewTransactionService(repo, logger, obs),
	}
}
