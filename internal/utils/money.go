package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RoundMinor rounds to the currency's minor unit for display; persisted
// values keep full precision.
func RoundMinor(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatAmount renders a display amount with currency code, whole units.
// On-screen totals show no decimals; PDFs and APIs use FormatMoney.
func FormatAmount(amount float64, currency string) string {
	if currency == "" {
		currency = "GBP"
	}
	return fmt.Sprintf("%s %s", currency, formatThousand(int64(math.Round(amount))))
}

// ParseDecimal parses backend decimal-as-string fields ("0.02", " 1.25 ").
func ParseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty decimal")
	}
	return strconv.ParseFloat(s, 64)
}

func formatThousand(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return sign + out.String()
}
