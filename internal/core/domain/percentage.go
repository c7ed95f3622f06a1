package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrPercentageFormat reports input that parses to neither a decimal
	// fraction nor a percent-suffixed number.
	ErrPercentageFormat = errors.New("not a valid percentage")

	// ErrOverAllocation reports a percentage sum exceeding 100%. Account
	// validity checks convert it to a boolean; it never reaches callers of
	// the aggregate.
	ErrOverAllocation = errors.New("percentage total exceeds 100%")
)

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalHundred = decimal.NewFromInt(100)
)

// Percentage is an immutable fraction with exact decimal arithmetic. The
// display form rounds to the nearest whole percent; the underlying value
// stays exact, so 0.255555 displays as "26%" but still sums precisely.
type Percentage struct {
	value decimal.Decimal
}

// ParsePercentage accepts a plain decimal fraction ("0.5") or a
// percent-suffixed form ("50%"); both produce the same value.
func ParsePercentage(s string) (Percentage, error) {
	text := strings.TrimSpace(s)
	if trimmed, ok := strings.CutSuffix(text, "%"); ok {
		d, err := decimal.NewFromString(strings.TrimSpace(trimmed))
		if err != nil {
			return Percentage{}, fmt.Errorf("%q: %w", s, ErrPercentageFormat)
		}
		return Percentage{value: d.Div(decimalHundred)}, nil
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return Percentage{}, fmt.Errorf("%q: %w", s, ErrPercentageFormat)
	}
	return Percentage{value: d}, nil
}

// NewPercentage wraps an exact decimal fraction, e.g. 0.25 for 25%.
func NewPercentage(fraction decimal.Decimal) Percentage {
	return Percentage{value: fraction}
}

func ZeroPercent() Percentage {
	return Percentage{}
}

func OneHundredPercent() Percentage {
	return Percentage{value: decimalOne}
}

// Add returns the exact sum, or ErrOverAllocation when the total would pass
// 100%.
func (p Percentage) Add(other Percentage) (Percentage, error) {
	sum := p.value.Add(other.value)
	if sum.GreaterThan(decimalOne) {
		return Percentage{}, ErrOverAllocation
	}
	return Percentage{value: sum}, nil
}

// Equal compares the exact underlying fractions, not the rounded display
// forms.
func (p Percentage) Equal(other Percentage) bool {
	return p.value.Equal(other.value)
}

func (p Percentage) IsZero() bool {
	return p.value.IsZero()
}

// Decimal exposes the exact fraction for arithmetic and persistence.
func (p Percentage) Decimal() decimal.Decimal {
	return p.value
}

// Split divides the fraction into n parts that sum back to the exact
// original. Division truncates at decimal's default precision, so the
// leftover beyond that precision goes to the first part; without it a
// three-way split of 25% would sum short and break the 100% invariant.
func (p Percentage) Split(n int64) []Percentage {
	if n <= 0 {
		return nil
	}
	count := decimal.NewFromInt(n)
	share := p.value.Div(count)

	parts := make([]Percentage, n)
	for i := range parts {
		parts[i] = Percentage{value: share}
	}
	parts[0] = Percentage{value: share.Add(p.value.Sub(share.Mul(count)))}
	return parts
}

// String renders the fraction as a whole percent, rounding half up.
func (p Percentage) String() string {
	return p.value.Mul(decimalHundred).Round(0).String() + "%"
}

// MarshalJSON emits the exact fraction as a decimal string, never a float.
func (p Percentage) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}

// UnmarshalJSON accepts both wire forms ParsePercentage does.
func (p *Percentage) UnmarshalJSON(data []byte) error {
	text := strings.Trim(string(data), `"`)
	parsed, err := ParsePercentage(text)
	if err != nil {
		return err
	}
	p.value = parsed.value
	return nil
}
