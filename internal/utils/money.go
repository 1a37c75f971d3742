package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCurrency renders an amount in minor units (cents) as "$1,234.50".
func FormatCurrency(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%s.%02d", sign, formatThousand(cents/100), cents%100)
}

// FormatOptionalCurrency renders a missing amount as "-".
func FormatOptionalCurrency(cents *int64) string {
	if cents == nil {
		return "-"
	}
	return FormatCurrency(*cents)
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
