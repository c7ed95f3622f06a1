package domain

import (
	"errors"
	"testing"
)

func mustMoney(t *testing.T, s string) Money {
	t.Helper()
	m, err := ParseMoney(s)
	if err != nil {
		t.Fatalf("ParseMoney(%q): %v", s, err)
	}
	return m
}

func TestParseMoney(t *testing.T) {
	t.Run("rejects non-numeric input", func(t *testing.T) {
		if _, err := ParseMoney("abc"); !errors.Is(err, ErrMoneyFormat) {
			t.Fatalf("expected ErrMoneyFormat, got %v", err)
		}
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		if _, err := ParseMoney("-1.00"); !errors.Is(err, ErrNegativeMoney) {
			t.Fatalf("expected ErrNegativeMoney, got %v", err)
		}
	})
}

func TestMoneyString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"100", "100.00"},
		{"0.1", "0.10"},
		{"12.345", "12.35"},
		{"0", "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := mustMoney(t, tt.input).String(); got != tt.want {
				t.Errorf("Money(%s).String() = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMoneyMultiplyPercentage(t *testing.T) {
	tests := []struct {
		amount     string
		percentage string
		want       string
	}{
		{"100", "50%", "50.00"},
		{"100", "33%", "33.00"},
		{"0.10", "33%", "0.03"},
		{"10", "0.125", "1.25"},
	}
	for _, tt := range tests {
		t.Run(tt.amount+"x"+tt.percentage, func(t *testing.T) {
			got := mustMoney(t, tt.amount).MultiplyPercentage(mustPercentage(t, tt.percentage))
			if got.String() != tt.want {
				t.Errorf("%s x %s = %s, want %s", tt.amount, tt.percentage, got, tt.want)
			}
		})
	}
}

func TestMoneyAdd(t *testing.T) {
	sum := mustMoney(t, "1.25").Add(mustMoney(t, "2.50"))
	if !sum.Equal(mustMoney(t, "3.75")) {
		t.Fatalf("expected 3.75, got %s", sum)
	}
}
