package utils

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	crore = 10000000
	lakh  = 100000
)

var printer = message.NewPrinter(language.English)

// FormatCurrency formats a rupee amount in crore or lakh units, falling back
// to whole rupees with thousands separators below one lakh
func FormatCurrency(amount float64) string {
	switch {
	case amount >= crore:
		return fmt.Sprintf("₹%.2f Cr", amount/crore)
	case amount >= lakh:
		return fmt.Sprintf("₹%.2f L", amount/lakh)
	default:
		return "₹" + printer.Sprintf("%.0f", amount)
	}
}
