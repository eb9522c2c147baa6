package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrMalformedNumber = errors.New("malformed number")

// Amounts outside these bounds are refused at parse time. Arithmetic on a
// value like 1e300000000 would have to materialise every digit.
const (
	maxAmountIntDigits = 30
	minAmountExponent  = -18
)

// ParseAmount parses a raw decimal token such as "150", "150.5" or "-3".
// Sign is kept; range checks belong to the account rules.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: empty amount", ErrMalformedNumber)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformedNumber, raw)
	}

	exp := int(amount.Exponent())
	if exp < minAmountExponent || amount.NumDigits()+exp > maxAmountIntDigits {
		return decimal.Zero, fmt.Errorf("%w: %q is out of range", ErrMalformedNumber, raw)
	}
	return amount, nil
}

// ParseInt parses a whole-number token. Trailing garbage such as "12abc" is rejected.
func ParseInt(raw string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, raw)
	}
	return n, nil
}

// FormatAmount renders the shortest exact form: 500, -200, 12.5.
func FormatAmount(amount decimal.Decimal) string {
	return amount.String()
}
