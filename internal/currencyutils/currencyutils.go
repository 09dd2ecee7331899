// Package currencyutils provides the currency-string cleanup used on OCR'd amount cells.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// StandardizeAmount keeps only digits, decimal points and a minus sign in
// leading position. "RM 1,234.56" becomes "1234.56", "(250.00)" becomes
// "250.00" and "-12.50 DR" becomes "-12.50". A minus sign anywhere else is dropped.
func StandardizeAmount(amountStr string) string {
	var b strings.Builder
	b.Grow(len(amountStr))
	for _, r := range amountStr {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseAmount parses an amount cell into a decimal.
// Empty cells parse to zero without error; anything that is not a number after
// standardization is reported as an error.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// ParseCurrency is the lenient form of ParseAmount used on table cells:
// unparsable text yields zero.
func ParseCurrency(amountStr string) decimal.Decimal {
	amount, err := ParseAmount(amountStr)
	if err != nil {
		log.WithField("value", amountStr).Debug("Unparsable amount treated as zero")
		return decimal.Zero
	}
	return amount
}

// IsAccountingNegative reports whether the raw cell uses a minus sign or
// parentheses to mark money going out.
func IsAccountingNegative(raw string) bool {
	return strings.ContainsAny(raw, "-(")
}

// FormatAmount formats a decimal amount with two decimal places and an optional currency code.
// Returns strings like "RM 1234.56" or "$1234.56"
func FormatAmount(amount decimal.Decimal, currency string) string {
	formattedAmount := amount.StringFixed(2)

	if currency != "" {
		switch strings.ToUpper(currency) {
		case "EUR":
			return "€" + formattedAmount
		case "USD":
			return "$" + formattedAmount
		case "GBP":
			return "£" + formattedAmount
		default:
			return currency + " " + formattedAmount
		}
	}

	return formattedAmount
}

// FormatFloat formats an already rounded display amount.
func FormatFloat(amount float64, currency string) string {
	return FormatAmount(decimal.NewFromFloat(amount), currency)
}
