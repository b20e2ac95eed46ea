package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// Money is a validated monetary amount, normalized to two fractional
// digits. Rounding is half-away-from-zero at the third decimal.
type Money struct {
	amount decimal.Decimal
}

// NewMoney validates and normalizes a raw amount.
func NewMoney(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, ErrNotANumber
	}
	if amount < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: decimal.NewFromFloat(amount).Round(2)}, nil
}

// ReconstituteMoney rebuilds Money from a value that was already validated
// on write, e.g. a balance read back from storage.
func ReconstituteMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

func (m Money) Decimal() decimal.Decimal { return m.amount }

func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// Equals compares by normalized value.
func (m Money) Equals(other Money) bool { return m.amount.Equal(other.amount) }

func (m Money) LessThan(other Money) bool { return m.amount.LessThan(other.amount) }

// Add returns a new validated Money holding m + other.
func (m Money) Add(other Money) (Money, error) {
	return validatedMoney(m.amount.Add(other.amount))
}

// Sub returns a new validated Money holding m - other.
func (m Money) Sub(other Money) (Money, error) {
	return validatedMoney(m.amount.Sub(other.amount))
}

func validatedMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount.Round(2)}, nil
}
