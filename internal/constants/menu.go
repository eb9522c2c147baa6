package constants

const (
	ChoiceWithdraw = 1
	ChoiceDeposit  = 2
	ChoiceTransfer = 3
	ChoiceHistory  = 4
	ChoiceQuit     = 5
)

const MenuTitle = "ATM INTERFACE"

// MenuOptions are listed in choice order, starting at ChoiceWithdraw.
var MenuOptions = []string{
	"Withdraw",
	"Deposit",
	"Transfer",
	"Transaction History",
	"Quit",
}
