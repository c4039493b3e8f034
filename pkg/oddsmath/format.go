package oddsmath

import (
	"fmt"
)

// FormatAmerican renders American odds for display: positive odds carry an
// explicit leading "+", zero/missing odds render empty
// +360 → "+360", -115 → "-115", 0 → ""
func FormatAmerican(odds int) string {
	if odds == 0 {
		return ""
	}

	if odds > 0 {
		return fmt.Sprintf("+%d", odds)
	}

	return fmt.Sprintf("%d", odds)
}

// FormatMoney renders a money amount with two decimal places; negative
// values keep their leading "-"
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatMoneyPtr renders an optional amount, blank when nil
func FormatMoneyPtr(amount *float64) string {
	if amount == nil {
		return ""
	}
	return FormatMoney(*amount)
}
