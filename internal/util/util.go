package util

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"heritage/internal/domain/entity"
)

// FormatPrice renders a paise amount as a rupee display string,
// e.g. 29500 -> "₹295.00".
func FormatPrice(price entity.Paise) string {
	return fmt.Sprintf("₹%.2f", float64(price)/100)
}

// ParsePrice converts a decimal rupee string from the admin form into
// whole paise. The string is parsed as exact decimal digits, never as a
// float, so halves always round away from zero: "0.005" becomes 1 paisa
// and "2.675" becomes 268.
func ParsePrice(s string) (entity.Paise, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, errors.New("price is required")
	}
	if strings.HasPrefix(trimmed, "-") {
		return 0, errors.New("price cannot be negative")
	}

	whole, frac, _ := strings.Cut(trimmed, ".")
	if whole == "" && frac == "" {
		return 0, errors.Errorf("invalid price %q", s)
	}
	if !isDigits(whole) || !isDigits(frac) {
		return 0, errors.Errorf("invalid price %q", s)
	}

	var paise entity.Paise
	if whole != "" {
		rupees, err := strconv.ParseInt(whole, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid price %q", s)
		}
		paise = entity.Paise(rupees) * 100
	}

	// The first two fractional digits are whole paise. The third digit
	// alone decides the half-paisa rounding: any remainder past it is
	// strictly below half a paisa.
	if len(frac) > 0 {
		paise += entity.Paise(frac[0]-'0') * 10
	}
	if len(frac) > 1 {
		paise += entity.Paise(frac[1] - '0')
	}
	if len(frac) > 2 && frac[2] >= '5' {
		paise++
	}

	return paise, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// NormalizePhone strips all whitespace from a phone number.
func NormalizePhone(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}

// IsTenDigitPhone reports whether s, after whitespace stripping, is
// exactly ten decimal digits.
func IsTenDigitPhone(s string) bool {
	normalized := NormalizePhone(s)
	if len(normalized) != 10 {
		return false
	}
	for _, r := range normalized {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
