// Package money holds the öre arithmetic shared by the pricing engine and its
// persistence boundary. Amounts are integer öre end to end; decimals only
// appear when a value is rendered for display or an external document.
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ApplyRate multiplies an öre amount by a fractional rate and rounds half-up
// to a whole öre. Working in öre makes this the only rounding point in a
// rate application, so repeated compositions cannot drift.
func ApplyRate(amount int64, rate decimal.Decimal) int64 {
	if amount <= 0 {
		return 0
	}
	return decimal.NewFromInt(amount).Mul(rate).Round(0).IntPart()
}

// Clamp floors negative amounts at zero. Input validation happens at the API
// layer; this is the engine's last-resort guard.
func Clamp(amount int64) int64 {
	if amount < 0 {
		return 0
	}
	return amount
}

// ToDecimal converts öre to a kronor decimal for persistence or JSON output.
func ToDecimal(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount).Shift(-2)
}

// FormatSEK renders öre as a Swedish-style amount like "1 234,50 kr".
func FormatSEK(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	kronor := amount / 100
	ore := amount % 100

	s := strconv.FormatInt(kronor, 10)
	var b strings.Builder
	b.Grow(len(s) + len(s)/3 + 8)
	if neg {
		b.WriteByte('-')
	}

	rem := len(s) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < len(s); i += 3 {
		b.WriteByte(' ')
		b.WriteString(s[i : i+3])
	}

	b.WriteByte(',')
	if ore < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(ore, 10))
	b.WriteString(" kr")

	return b.String()
}
