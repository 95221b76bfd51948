// Package format renders amounts and months for display in the
// household's locale (Indonesian Rupiah, id-ID).
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol is prepended to every formatted amount.
const CurrencySymbol = "Rp"

var printer = message.NewPrinter(language.Indonesian)

// groupSeparator is the thousands separator of the locale, "." for id-ID.
var groupSeparator = strings.TrimSuffix(strings.TrimPrefix(printer.Sprintf("%d", 1000), "1"), "000")

var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Currency formats an amount as Rupiah without fractional digits,
// e.g. "Rp 1.250.000" or "-Rp 50.000".
func Currency(amount decimal.Decimal) string {
	whole := amount.Round(0)

	sign := ""
	if whole.IsNegative() {
		sign = "-"
		whole = whole.Abs()
	}

	return fmt.Sprintf("%s%s %s", sign, CurrencySymbol, group(whole.String()))
}

// group inserts the locale's thousands separator into a string of digits.
func group(digits string) string {
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(groupSeparator)
		}
		b.WriteRune(d)
	}
	return b.String()
}

// MonthLabel returns the Indonesian name of the month followed by the year,
// e.g. "Oktober 2026". Months outside 1 to 12 are rendered numerically.
func MonthLabel(month, year int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%02d/%d", month, year)
	}
	return fmt.Sprintf("%s %d", monthNames[month-1], year)
}

// Date formats a date as DD/MM/YYYY in the given location.
func Date(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("02/01/2006")
}
