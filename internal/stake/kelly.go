package stake

import (
	"math"

	"github.com/XavierBriggs/fortuna/services/line-model/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/line-model/pkg/oddsmath"
)

// Sizer converts an edge into a bounded bankroll fraction using fractional
// Kelly. It never errors on valid numeric input: anything that would produce
// a negative or undefined stake sizes to zero, because "no action" is always
// a safe output.
type Sizer struct {
	config contracts.ModelConfig
}

// NewSizer creates a stake sizer.
func NewSizer(config contracts.ModelConfig) *Sizer {
	return &Sizer{config: config}
}

// Fraction returns the recommended bankroll fraction for a bet.
//
// The fair win probability is reconstructed from the offered price's implied
// probability and the edge percentage, then run through Kelly:
//
//	kelly = (b*p - q) / b   with b = decimal - 1, q = 1 - p
//
// The result is scaled by the configured Kelly fraction and clamped to
// [min, max]. A non-qualifying evaluation or non-positive bankroll sizes to
// zero regardless of the computed fraction.
func (s *Sizer) Fraction(edgePct float64, price int, qualifiesAsPlay bool, bankroll float64) float64 {
	if !qualifiesAsPlay || bankroll <= 0 || edgePct <= 0 {
		return 0
	}

	decimal, err := oddsmath.AmericanToDecimal(price)
	if err != nil {
		return 0
	}

	implied := 1.0 / decimal

	// edge = (fair / implied) - 1, so fair = (1 + edge) * implied
	fair := (1.0 + edgePct/100.0) * implied
	if fair >= 1.0 {
		fair = 0.99
	}

	b := decimal - 1.0
	if b <= 0 {
		return 0
	}

	kelly := (b*fair - (1.0 - fair)) / b
	if kelly <= 0 {
		return 0
	}

	fraction := kelly * s.config.GetKellyFraction()

	return clamp(fraction, s.config.GetMinStakeFraction(), s.config.GetMaxStakeFraction())
}

// Amount converts a fraction into a dollar stake, rounded to cents.
func (s *Sizer) Amount(fraction, bankroll float64) float64 {
	if fraction <= 0 || bankroll <= 0 {
		return 0
	}
	return math.Round(fraction*bankroll*100) / 100
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
