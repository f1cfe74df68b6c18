package trackit

import (
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Amount is an exact decimal monetary value.
//
// Transaction amounts are never negative: ParseAmount normalizes invalid and
// negative input to zero. Derived values such as a notebook balance may still
// be negative, so the arithmetic itself is signed.
type Amount struct {
	value decimal.Decimal
}

// A builds an Amount from a numeric literal. Handy in tests and defaults.
func A[T float32 | float64 | int | int32 | int64](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	}
	return decimal.Zero
}

// ParseAmount parses a textual amount. Unparsable or negative input
// normalizes to zero rather than failing.
func ParseAmount(text string) Amount {
	v, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil || v.IsNegative() {
		return Amount{}
	}
	return Amount{value: v}
}

func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }
func (a Amount) Cmp(b Amount) int    { return a.value.Cmp(b.value) }
func (a Amount) IsZero() bool        { return a.value.IsZero() }
func (a Amount) IsNegative() bool    { return a.value.IsNegative() }

// String returns the value in its natural decimal form ("12.5", "4", "0").
func (a Amount) String() string { return a.value.String() }

// Float64 returns the nearest float64, for percentage maths in reports.
func (a Amount) Float64() float64 { return a.value.InexactFloat64() }

// MarshalJSON encodes the amount as a bare JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return a.value.MarshalJSON()
}

// UnmarshalJSON decodes a JSON number, applying the same normalization as
// ParseAmount so the amount invariant holds on every load.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var v decimal.Decimal
	if err := v.UnmarshalJSON(data); err != nil || v.IsNegative() {
		*a = Amount{}
		return nil
	}
	a.value = v
	return nil
}
