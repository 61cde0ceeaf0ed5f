package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Money is an exact currency amount held as a count of minor units (cents).
// All ledger arithmetic happens on this type; conversion back to a decimal
// value only occurs at the display boundary.
type Money int64

// MoneyFromFloat rounds a decimal amount to the nearest cent.
func MoneyFromFloat(v float64) Money {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return Money(math.Round(v * 100))
}

// MoneyFromDecimal parses a decimal string into cents. Upstream billing and
// payment feeds are frequently incomplete, so anything unparsable maps to
// zero rather than an error.
func MoneyFromDecimal(s string) Money {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	// Commas are stripped as thousands separators; a decimal comma is not
	// supported, the sources emit dot-decimal amounts.
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return MoneyFromFloat(v)
}

// MoneyFromAny converts the loosely typed values that arrive in collaborator
// records (JSON numbers, decimal strings, ints) into cents. Missing or
// malformed values map to zero.
func MoneyFromAny(v any) Money {
	switch val := v.(type) {
	case nil:
		return 0
	case float64:
		return MoneyFromFloat(val)
	case float32:
		return MoneyFromFloat(float64(val))
	case int:
		return MoneyFromFloat(float64(val))
	case int64:
		return MoneyFromFloat(float64(val))
	case json.Number:
		return MoneyFromDecimal(val.String())
	case string:
		return MoneyFromDecimal(val)
	default:
		return 0
	}
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return m + other
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return m - other
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m > 0
}

// Cents returns the raw minor-unit count.
func (m Money) Cents() int64 {
	return int64(m)
}

// Float64 returns the decimal value for display purposes only.
func (m Money) Float64() float64 {
	return float64(m) / 100.0
}
