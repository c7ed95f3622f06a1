package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrMoneyFormat   = errors.New("not a valid monetary amount")
	ErrNegativeMoney = errors.New("monetary amount must not be negative")
)

// Money is a USD amount with exact decimal semantics. Amounts round to cents
// only where an operation produces sub-cent precision (percentage multiply);
// addition and parsing keep the input exact.
type Money struct {
	amount decimal.Decimal
}

// ParseMoney parses a non-negative decimal amount such as "100.00".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("%q: %w", s, ErrMoneyFormat)
	}
	if d.IsNegative() {
		return Money{}, fmt.Errorf("%q: %w", s, ErrNegativeMoney)
	}
	return Money{amount: d}, nil
}

func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

func ZeroMoney() Money {
	return Money{}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MultiplyPercentage computes the percentage share of the amount, rounded to
// the nearest cent. Each share rounds independently; a contribution's shares
// may drift from the total by sub-cent amounts.
func (m Money) MultiplyPercentage(p Percentage) Money {
	return Money{amount: m.amount.Mul(p.value).Round(2)}
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// MarshalJSON emits the amount as a fixed two-decimal string, never a float.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.amount.StringFixed(2) + `"`), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	text := strings.Trim(string(data), `"`)
	parsed, err := ParseMoney(text)
	if err != nil {
		return err
	}
	m.amount = parsed.amount
	return nil
}
