package session_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hance08/atm/internal/config"
	"github.com/hance08/atm/internal/model"
	"github.com/hance08/atm/internal/service"
	"github.com/hance08/atm/internal/session"
	"github.com/hance08/atm/internal/store"
	"github.com/hance08/atm/internal/ui"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

const menu = "\nATM INTERFACE\n" +
	"1. Withdraw\n" +
	"2. Deposit\n" +
	"3. Transfer\n" +
	"4. Transaction History\n" +
	"5. Quit\n" +
	"Enter your choice: "

// declineTerminal is a Console that refuses every confirmation.
type declineTerminal struct {
	*ui.Console
}

func (declineTerminal) Confirm(string) (bool, error) { return false, nil }

// recordingTerminal is a Console that accepts confirmations and keeps their text.
type recordingTerminal struct {
	*ui.Console
	asked *[]string
}

func (r recordingTerminal) Confirm(message string) (bool, error) {
	*r.asked = append(*r.asked, message)
	return true, nil
}

// brokenTerminal fails every read with a non-EOF error.
type brokenTerminal struct {
	*ui.Console
	err error
}

func (b brokenTerminal) ReadInt(string) (int64, error) { return 0, b.err }

var _ = Describe("Session", func() {
	var (
		ctx context.Context
		svc *service.Service
		out *bytes.Buffer
	)

	balanceOf := func(id int64) decimal.Decimal {
		acc, err := svc.Account.GetAccount(ctx, id)
		Expect(err).ToNot(HaveOccurred())
		return acc.Balance()
	}

	historyLen := func(id int64) int {
		history, err := svc.Transaction.History(ctx, id)
		Expect(err).ToNot(HaveOccurred())
		return len(history)
	}

	run := func(input string) *session.Session {
		s := session.New(svc, ui.NewConsole(strings.NewReader(input), out))
		Expect(s.Run(ctx)).To(Succeed())
		return s
	}

	BeforeEach(func() {
		ctx = context.Background()
		out = &bytes.Buffer{}
		svc = service.NewService(store.NewMemoryStore(), pterm.DefaultLogger.WithWriter(io.Discard))
		Expect(svc.Account.SeedAccounts(ctx, config.DefaultAccounts())).To(Succeed())
	})

	Context("authentication", func() {
		It("should exit without a menu on a wrong PIN", func() {
			s := run("123456 9999 2 500 5")

			Expect(out.String()).To(Equal("Enter user ID: Enter PIN: Invalid user ID or PIN. Exiting...\n"))
			Expect(s.State()).To(Equal(session.StateTerminated))
			Expect(s.AccountID()).To(BeZero())
			Expect(balanceOf(123456).IsZero()).To(BeTrue())
		})

		It("should exit on an unknown user ID", func() {
			run("111111 1234")
			Expect(out.String()).To(ContainSubstring("Invalid user ID or PIN. Exiting..."))
			Expect(out.String()).ToNot(ContainSubstring("ATM INTERFACE"))
		})

		It("should treat a malformed user ID as invalid credentials", func() {
			run("abc 1234 5")
			Expect(out.String()).To(Equal("Enter user ID: Enter PIN: Invalid user ID or PIN. Exiting...\n"))
		})

		It("should end quietly when input stops before the PIN", func() {
			s := run("123456")
			Expect(out.String()).To(Equal("Enter user ID: Enter PIN: \n"))
			Expect(s.State()).To(Equal(session.StateTerminated))
		})

		It("should not log in twice", func() {
			s := run("123456 1234 5")
			Expect(s.Login(ctx)).To(HaveOccurred())
		})
	})

	Context("menu loop", func() {
		It("should produce the full deposit, transfer and history transcript", func() {
			s := run("123456 1234 2 500 3 987654 200 4 5")

			expected := "Enter user ID: Enter PIN: Welcome to the ATM!\n" +
				menu + "Enter amount to deposit: Deposit success!\n" +
				menu + "Enter recipient ID: Enter amount to transfer: Transfer success!\n" +
				menu + "TRANSACTION HISTORY\nDeposit - 500\nTransfer - -200\n" +
				menu + "Thank you for using the ATM. Goodbye!\n"
			Expect(out.String()).To(Equal(expected))

			Expect(s.State()).To(Equal(session.StateTerminated))
			Expect(s.AccountID()).To(Equal(int64(123456)))
			Expect(balanceOf(123456).Equal(decimal.NewFromInt(300))).To(BeTrue())
			Expect(balanceOf(987654).Equal(decimal.NewFromInt(200))).To(BeTrue())

			recipient, err := svc.Transaction.History(ctx, 987654)
			Expect(err).ToNot(HaveOccurred())
			Expect(recipient).To(HaveLen(1))
			Expect(recipient[0].Label()).To(Equal("Transfer"))
			Expect(recipient[0].Amount().String()).To(Equal("200"))
		})

		It("should report an invalid choice and show the menu again", func() {
			run("123456 1234 9 x 5")

			Expect(strings.Count(out.String(), "Invalid choice. Please try again.")).To(Equal(2))
			Expect(strings.Count(out.String(), "ATM INTERFACE")).To(Equal(3))
		})

		It("should leave every account untouched after rejected operations", func() {
			_, err := svc.Transaction.Deposit(ctx, 123456, decimal.NewFromInt(300))
			Expect(err).ToNot(HaveOccurred())
			_, err = svc.Transaction.Transfer(ctx, 123456, 987654, decimal.NewFromInt(50))
			Expect(err).ToNot(HaveOccurred())

			run("123456 1234 9 x 0 1 1000 1 0 2 -1 3 987654 0 3 555555 10 3 123456 10 5")

			Expect(strings.Count(out.String(), "Invalid choice. Please try again.")).To(Equal(3))
			Expect(out.String()).ToNot(ContainSubstring("success!"))

			Expect(balanceOf(123456).Equal(decimal.NewFromInt(250))).To(BeTrue())
			Expect(historyLen(123456)).To(Equal(2))
			Expect(balanceOf(987654).Equal(decimal.NewFromInt(50))).To(BeTrue())
			Expect(historyLen(987654)).To(Equal(1))
		})

		It("should end gracefully when input runs out", func() {
			s := run("123456 1234 2 500")

			Expect(strings.HasSuffix(out.String(), "Deposit success!\n"+menu+"\n")).To(BeTrue())
			Expect(s.State()).To(Equal(session.StateTerminated))
			Expect(balanceOf(123456).Equal(decimal.NewFromInt(500))).To(BeTrue())
		})

		It("should return read errors other than end of input", func() {
			boom := errors.New("boom")
			term := brokenTerminal{Console: ui.NewConsole(strings.NewReader(""), out), err: boom}

			err := session.New(svc, term).Run(ctx)
			Expect(err).To(MatchError(boom))
		})
	})

	Context("withdraw and deposit", func() {
		It("should reject overdrafts and non-positive amounts", func() {
			run("123456 1234 2 100 1 150 1 0 2 -5 1 100 5")

			Expect(out.String()).To(ContainSubstring("Invalid amount. Withdrawal failed."))
			Expect(out.String()).To(ContainSubstring("Invalid amount. Deposit failed."))
			Expect(strings.Count(out.String(), "Withdrawal success!")).To(Equal(1))
			Expect(balanceOf(123456).IsZero()).To(BeTrue())
			// one deposit and one withdrawal, nothing for the rejected attempts
			Expect(historyLen(123456)).To(Equal(2))
		})

		It("should re-prompt on an amount too large to represent", func() {
			run("123456 1234 2 1e300000000 5 4 5")

			Expect(out.String()).To(ContainSubstring(
				"Enter amount to deposit: Invalid input. Please enter a number.\nEnter amount to deposit: Deposit success!\n"))
			Expect(out.String()).To(ContainSubstring("TRANSACTION HISTORY\nDeposit - 5\n"))
			Expect(balanceOf(123456).Equal(decimal.NewFromInt(5))).To(BeTrue())
			Expect(historyLen(123456)).To(Equal(1))
		})

		It("should re-prompt on a malformed amount", func() {
			run("123456 1234 2 ten 12.5 5")

			Expect(out.String()).To(ContainSubstring(
				"Enter amount to deposit: Invalid input. Please enter a number.\nEnter amount to deposit: Deposit success!\n"))
			Expect(balanceOf(123456).Equal(decimal.RequireFromString("12.5"))).To(BeTrue())
		})
	})

	Context("transfer", func() {
		It("should check the amount before the recipient", func() {
			run("123456 1234 3 555555 10 5")

			Expect(out.String()).To(ContainSubstring("Invalid amount. Transfer failed."))
			Expect(out.String()).ToNot(ContainSubstring("Recipient account not found"))
		})

		It("should report an unknown recipient", func() {
			run("123456 1234 2 100 3 555555 10 5")

			Expect(out.String()).To(ContainSubstring("Recipient account not found. Transfer failed."))
			Expect(balanceOf(123456).Equal(decimal.NewFromInt(100))).To(BeTrue())
		})

		It("should refuse a transfer to the same account", func() {
			run("123456 1234 2 100 3 123456 10 5")

			Expect(out.String()).To(ContainSubstring("Cannot transfer to the same account. Transfer failed."))
			Expect(balanceOf(123456).Equal(decimal.NewFromInt(100))).To(BeTrue())

			history, err := svc.Transaction.History(ctx, 123456)
			Expect(err).ToNot(HaveOccurred())
			Expect(history).To(HaveLen(1))
		})

		It("should confirm the amount and recipient before applying", func() {
			var asked []string
			term := recordingTerminal{
				Console: ui.NewConsole(strings.NewReader("123456 1234 2 100 3 987654 50 5"), out),
				asked:   &asked,
			}
			Expect(session.New(svc, term).Run(ctx)).To(Succeed())

			Expect(asked).To(Equal([]string{fmt.Sprintf(session.FmtTransferConfirm, "50", int64(987654))}))
			Expect(asked[0]).To(Equal("Transfer 50 to account 987654?"))
			Expect(balanceOf(987654).Equal(decimal.NewFromInt(50))).To(BeTrue())
		})

		It("should leave balances untouched when the transfer is declined", func() {
			term := declineTerminal{Console: ui.NewConsole(strings.NewReader("123456 1234 2 100 3 987654 50 5"), out)}
			Expect(session.New(svc, term).Run(ctx)).To(Succeed())

			Expect(out.String()).To(ContainSubstring("Transfer cancelled."))
			Expect(balanceOf(123456).Equal(decimal.NewFromInt(100))).To(BeTrue())
			Expect(balanceOf(987654).IsZero()).To(BeTrue())
		})
	})

	Context("history", func() {
		It("should print only the title for a fresh account", func() {
			run("987654 4321 4 5")
			Expect(out.String()).To(ContainSubstring("TRANSACTION HISTORY\n" + menu))
		})

		It("should list the recipient side of a transfer", func() {
			_, err := svc.Transaction.Deposit(ctx, 123456, decimal.NewFromInt(50))
			Expect(err).ToNot(HaveOccurred())
			_, err = svc.Transaction.Transfer(ctx, 123456, 987654, decimal.NewFromInt(50))
			Expect(err).ToNot(HaveOccurred())

			run("987654 4321 4 5")
			Expect(out.String()).To(ContainSubstring("TRANSACTION HISTORY\nTransfer - 50\n"))
		})
	})

	It("should not dispatch before login", func() {
		s := session.New(svc, ui.NewConsole(strings.NewReader(""), out))
		Expect(s.Dispatch(ctx, 2)).To(HaveOccurred())
		Expect(s.State()).To(Equal(session.StateUnauthenticated))
	})

	It("should keep model errors distinguishable", func() {
		_, err := svc.Transaction.Withdraw(ctx, 123456, decimal.NewFromInt(1))
		Expect(errors.Is(err, model.ErrInsufficientFunds)).To(BeTrue())
	})
})
