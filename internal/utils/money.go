package utils

import (
	"fmt"
	"math"
)

// ToCents converts a decimal currency amount into integer minor units,
// rounded to the nearest cent.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FormatCents renders an amount stored in cents, e.g. 1050 -> "$10.50".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
