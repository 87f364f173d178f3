package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatPeso renders an amount as "PHP 1,234.50" for invoices and reports.
func FormatPeso(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	totalCents := int64(amount*100 + 0.5)
	return fmt.Sprintf("%sPHP %s.%02d", sign, formatThousand(totalCents/100), totalCents%100)
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
