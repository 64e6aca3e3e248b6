package grana

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the single currency of the ledger. Multi-currency support
// is out of scope.
const Currency = "BRL"

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Money represents a monetary value in the ledger currency, with exact
// decimal arithmetic.
type Money struct {
	value decimal.Decimal
}

// M builds a Money from a numeric value.
func M[T float32 | float64 | int | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal(value any) decimal.Decimal {
	switch v := value.(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	default:
		panic("unsupported money value type")
	}
}

// ParseMoney parses a decimal string ("1234.56") into a Money.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d}, nil
}

func (m Money) Add(n Money) Money     { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money     { return Money{value: m.value.Sub(n.value)} }
func (m Money) Neg() Money            { return Money{value: m.value.Neg()} }
func (m Money) Abs() Money            { return Money{value: m.value.Abs()} }
func (m Money) Mul(f float64) Money   { return Money{value: m.value.Mul(decimal.NewFromFloat(f))} }
func (m Money) Equal(n Money) bool    { return m.value.Equal(n.value) }
func (m Money) IsZero() bool          { return m.value.IsZero() }
func (m Money) IsPositive() bool      { return m.value.IsPositive() }
func (m Money) IsNegative() bool      { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool {
	return m.value.GreaterThan(n.value)
}

// DivRound divides by n and rounds to 2 decimal places. This is the
// rounding applied to each installment share independently; the shares
// of a series may not sum back to the original amount.
func (m Money) DivRound(n int) Money {
	return Money{value: m.value.Div(decimal.NewFromInt(int64(n))).Round(2)}
}

// Cents returns the value rounded to a whole number of cents. Used by
// the import fingerprint.
func (m Money) Cents() int64 {
	return m.value.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// Float64 returns the nearest float64 value.
func (m Money) Float64() float64 {
	f, _ := m.value.Float64()
	return f
}

// String returns the plain decimal representation ("1234.56").
func (m Money) String() string { return m.value.String() }

// Display formats the value for humans in the ledger currency
// ("R$1.234,56").
func (m Money) Display() string {
	return money.New(m.Cents(), Currency).Display()
}

// MarshalJSON encodes the value as a bare JSON number.
func (m Money) MarshalJSON() ([]byte, error) { return m.value.MarshalJSON() }

// UnmarshalJSON decodes a JSON number (or quoted number) into a Money.
func (m *Money) UnmarshalJSON(b []byte) error { return m.value.UnmarshalJSON(b) }
