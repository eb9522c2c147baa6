package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hance08/atm/internal/constants"
	"github.com/hance08/atm/internal/model"
	"github.com/hance08/atm/internal/service"
	"github.com/hance08/atm/internal/utils"
	"github.com/shopspring/decimal"
)

type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticated
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session binds one authenticated account to the menu loop.
type Session struct {
	svc  *service.Service
	term Terminal

	state     State
	accountID int64
}

func New(svc *service.Service, term Terminal) *Session {
	return &Session{svc: svc, term: term}
}

func (s *Session) State() State { return s.state }

// AccountID is the authenticated account, or 0 before login.
func (s *Session) AccountID() int64 { return s.accountID }

// Run authenticates once and, on success, serves the menu until the user
// quits or input ends. Validation failures are reported to the terminal and
// never returned.
func (s *Session) Run(ctx context.Context) error {
	if err := s.Login(ctx); err != nil {
		return err
	}
	return s.Loop(ctx)
}

// Login reads an ID and a PIN once. There is no retry: a failed login ends
// the session.
func (s *Session) Login(ctx context.Context) error {
	if s.state != StateUnauthenticated {
		return fmt.Errorf("login: session is %s", s.state)
	}

	id, idErr := s.term.ReadInt(PromptUserID)
	if s.ended(idErr) {
		return s.stop(idErr)
	}

	pin, pinErr := s.term.ReadSecret(PromptPIN)
	if s.ended(pinErr) {
		return s.stop(pinErr)
	}

	if idErr != nil || pinErr != nil {
		s.term.Failure(MsgInvalidCredentials)
		s.state = StateTerminated
		return nil
	}

	acc, err := s.svc.Account.Authenticate(ctx, id, int(pin))
	if err != nil {
		if !errors.Is(err, model.ErrInvalidCredentials) {
			return fmt.Errorf("login: %w", err)
		}
		s.term.Failure(MsgInvalidCredentials)
		s.state = StateTerminated
		return nil
	}

	s.accountID = acc.ID()
	s.state = StateAuthenticated
	s.term.Message(MsgWelcome)
	return nil
}

// Loop serves the menu while the session is authenticated.
func (s *Session) Loop(ctx context.Context) error {
	for s.state == StateAuthenticated {
		s.term.Break()

		choice, err := s.term.Choose(constants.MenuTitle, constants.MenuOptions, PromptChoice)
		if err != nil {
			if errors.Is(err, utils.ErrMalformedNumber) {
				s.term.Failure(MsgInvalidChoice)
				continue
			}
			return s.stop(err)
		}

		if err := s.Dispatch(ctx, choice); err != nil {
			return s.stop(err)
		}
	}
	return nil
}

// Dispatch runs one menu choice. It only returns terminal errors such as end
// of input; operation failures are printed.
func (s *Session) Dispatch(ctx context.Context, choice int64) error {
	if s.state != StateAuthenticated {
		return fmt.Errorf("dispatch: session is %s", s.state)
	}

	switch choice {
	case constants.ChoiceWithdraw:
		return s.withdraw(ctx)
	case constants.ChoiceDeposit:
		return s.deposit(ctx)
	case constants.ChoiceTransfer:
		return s.transfer(ctx)
	case constants.ChoiceHistory:
		return s.history(ctx)
	case constants.ChoiceQuit:
		s.term.Message(MsgGoodbye)
		s.state = StateTerminated
		return nil
	default:
		s.term.Failure(MsgInvalidChoice)
		return nil
	}
}

func (s *Session) withdraw(ctx context.Context) error {
	amount, err := s.readAmount(PromptWithdraw)
	if err != nil {
		return err
	}

	_, err = s.svc.Transaction.Withdraw(ctx, s.accountID, amount)
	switch {
	case err == nil:
		s.term.Success(MsgWithdrawSuccess)
	case isAmountError(err):
		s.term.Failure(MsgWithdrawInvalid)
	default:
		s.term.Failure(fmt.Sprintf(FmtWithdrawFailed, err))
	}
	return nil
}

func (s *Session) deposit(ctx context.Context) error {
	amount, err := s.readAmount(PromptDeposit)
	if err != nil {
		return err
	}

	_, err = s.svc.Transaction.Deposit(ctx, s.accountID, amount)
	switch {
	case err == nil:
		s.term.Success(MsgDepositSuccess)
	case isAmountError(err):
		s.term.Failure(MsgDepositInvalid)
	default:
		s.term.Failure(fmt.Sprintf(FmtDepositFailed, err))
	}
	return nil
}

func (s *Session) transfer(ctx context.Context) error {
	recipientID, err := s.readInt(PromptRecipient)
	if err != nil {
		return err
	}

	amount, err := s.readAmount(PromptTransfer)
	if err != nil {
		return err
	}

	ok, err := s.term.Confirm(fmt.Sprintf(FmtTransferConfirm, utils.FormatAmount(amount), recipientID))
	if err != nil {
		return err
	}
	if !ok {
		s.term.Message(MsgTransferCancelled)
		return nil
	}

	_, err = s.svc.Transaction.Transfer(ctx, s.accountID, recipientID, amount)
	switch {
	case err == nil:
		s.term.Success(MsgTransferSuccess)
	case isAmountError(err):
		s.term.Failure(MsgTransferInvalid)
	case errors.Is(err, model.ErrAccountNotFound):
		s.term.Failure(MsgRecipientNotFound)
	case errors.Is(err, model.ErrSameAccount):
		s.term.Failure(MsgTransferSameAccount)
	default:
		s.term.Failure(fmt.Sprintf(FmtTransferFailed, err))
	}
	return nil
}

func (s *Session) history(ctx context.Context) error {
	entries, err := s.svc.Transaction.History(ctx, s.accountID)
	if err != nil {
		s.term.Failure(fmt.Sprintf(FmtHistoryFailed, err))
		return nil
	}

	s.term.History(HistoryTitle, entries)
	return nil
}

// readAmount asks again until the token parses as a number.
func (s *Session) readAmount(prompt string) (decimal.Decimal, error) {
	for {
		amount, err := s.term.ReadAmount(prompt)
		if errors.Is(err, utils.ErrMalformedNumber) {
			s.term.Failure(MsgMalformedNumber)
			continue
		}
		return amount, err
	}
}

func (s *Session) readInt(prompt string) (int64, error) {
	for {
		n, err := s.term.ReadInt(prompt)
		if errors.Is(err, utils.ErrMalformedNumber) {
			s.term.Failure(MsgMalformedNumber)
			continue
		}
		return n, err
	}
}

// ended reports whether err means there is no more input to serve.
func (s *Session) ended(err error) bool {
	return err != nil && !errors.Is(err, utils.ErrMalformedNumber)
}

// stop terminates the session. End of input is a normal exit.
func (s *Session) stop(err error) error {
	s.state = StateTerminated
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func isAmountError(err error) bool {
	return errors.Is(err, model.ErrNonPositiveAmount) || errors.Is(err, model.ErrInsufficientFunds)
}
