package rebalance

import (
	"fmt"
	"regexp"
	"strings"
)

// amountPattern matches what a user may type as a dollar amount: digits,
// optionally followed by a dot and exactly two digits.
var amountPattern = regexp.MustCompile(`^\d+(\.\d{2})?$`)

// ParseAmount validates and parses a dollar amount typed by the user, like
// "1000" or "1000.00".
//
// It is stricter than ParseMoney: no sign, no "$", no separators, cents must
// be complete.
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if !amountPattern.MatchString(s) {
		return Money{}, fmt.Errorf("%w: %q must be in the format of a dollar amount, e.g. 1000.00", ErrInvalidInput, s)
	}
	return ParseMoney(s)
}
