package validation

import (
	"fmt"

	"github.com/hance08/atm/internal/utils"
)

// ValidateAccountID checks that a typed account ID is a positive whole number.
// It has the func(string) error shape huh inputs expect.
func ValidateAccountID(val string) error {
	id, err := utils.ParseInt(val)
	if err != nil {
		return fmt.Errorf("account ID must be a number")
	}
	if id <= 0 {
		return fmt.Errorf("account ID must be positive")
	}
	return nil
}

// ValidatePIN only checks the format; whether it is correct is decided at login.
func ValidatePIN(val string) error {
	if _, err := utils.ParseInt(val); err != nil {
		return fmt.Errorf("PIN must be a number")
	}
	return nil
}

// ValidateAmount checks the format only. Zero, negative and overdrawn amounts
// are still submitted so the account rules can reject them.
func ValidateAmount(val string) error {
	if _, err := utils.ParseAmount(val); err != nil {
		return fmt.Errorf("invalid number format")
	}
	return nil
}
