package session

// Prompts and messages of the text protocol.
const (
	PromptUserID    = "Enter user ID: "
	PromptPIN       = "Enter PIN: "
	PromptChoice    = "Enter your choice: "
	PromptWithdraw  = "Enter amount to withdraw: "
	PromptDeposit   = "Enter amount to deposit: "
	PromptRecipient = "Enter recipient ID: "
	PromptTransfer  = "Enter amount to transfer: "

	MsgWelcome            = "Welcome to the ATM!"
	MsgInvalidCredentials = "Invalid user ID or PIN. Exiting..."
	MsgGoodbye            = "Thank you for using the ATM. Goodbye!"
	MsgInvalidChoice      = "Invalid choice. Please try again."
	MsgMalformedNumber    = "Invalid input. Please enter a number."

	MsgWithdrawSuccess = "Withdrawal success!"
	MsgWithdrawInvalid = "Invalid amount. Withdrawal failed."
	MsgDepositSuccess  = "Deposit success!"
	MsgDepositInvalid  = "Invalid amount. Deposit failed."

	MsgTransferSuccess     = "Transfer success!"
	MsgTransferInvalid     = "Invalid amount. Transfer failed."
	MsgRecipientNotFound   = "Recipient account not found. Transfer failed."
	MsgTransferSameAccount = "Cannot transfer to the same account. Transfer failed."
	MsgTransferCancelled   = "Transfer cancelled."

	HistoryTitle = "TRANSACTION HISTORY"
)

// Formats for failures that are not part of the account rules. Each takes
// the error.
const (
	FmtWithdrawFailed = "Withdrawal failed: %v"
	FmtDepositFailed  = "Deposit failed: %v"
	FmtTransferFailed = "Transfer failed: %v"
	FmtHistoryFailed  = "Failed to load transaction history: %v"

	// FmtTransferConfirm takes the amount and the recipient ID.
	FmtTransferConfirm = "Transfer %s to account %d?"
)
