package browser

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Placeholder заменяет отсутствующее значение в таблице.
const Placeholder = "—"

// FormatPrice: "$12.50"; отсутствующая или нулевая цена — прочерк.
func FormatPrice(price decimal.NullDecimal) string {
	if !price.Valid || price.Decimal.IsZero() {
		return Placeholder
	}

	return "$" + price.Decimal.StringFixed(2)
}

// FormatDuration переводит минуты в часы: 90 -> "1.5h".
func FormatDuration(minutes *int) string {
	if minutes == nil || *minutes == 0 {
		return Placeholder
	}

	return strconv.FormatFloat(float64(*minutes)/60, 'f', -1, 64) + "h"
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}
