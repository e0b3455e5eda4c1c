package oddsmath

import "fmt"

// RemoveVigMultiplicative removes vig from a two-way market using the
// multiplicative method, the standard for spreads and totals.
//
// 1. Convert both sides to implied probabilities
// 2. Overround: totalProb = prob1 + prob2 (typically > 1.0)
// 3. Normalize: fair1 = prob1 / totalProb, fair2 = prob2 / totalProb
//
// Example: -110/-110 → 52.38%/52.38% implied (4.76% vig) → 50%/50% fair.
func RemoveVigMultiplicative(prob1, prob2 float64) (fair1, fair2 float64, err error) {
	if prob1 <= 0 || prob1 >= 1 || prob2 <= 0 || prob2 >= 1 {
		return 0, 0, fmt.Errorf("probabilities must be between 0 and 1")
	}

	totalProb := prob1 + prob2

	if totalProb <= 1.0 {
		return 0, 0, fmt.Errorf("no vig detected: probabilities sum to <= 1.0")
	}

	fair1 = prob1 / totalProb
	fair2 = prob2 / totalProb

	return fair1, fair2, nil
}

// NoVigFromAmerican removes vig from a two-sided market quoted in American
// odds, returning the fair probability of each side.
func NoVigFromAmerican(price1, price2 int) (fair1, fair2 float64, err error) {
	prob1, err := AmericanToImpliedProbability(price1)
	if err != nil {
		return 0, 0, fmt.Errorf("side 1: %w", err)
	}

	prob2, err := AmericanToImpliedProbability(price2)
	if err != nil {
		return 0, 0, fmt.Errorf("side 2: %w", err)
	}

	return RemoveVigMultiplicative(prob1, prob2)
}

// EffectiveSpread normalizes a posted spread for the vig skew embedded in
// its two-sided prices, so model lines compare against a bookmaker-margin-
// free number.
//
// The posted line keeps the home convention (negative = home favored). With
// symmetric prices (-110/-110) the fair probabilities split 50/50 and the
// effective spread equals the posted spread. When the home price is shaded
// (home fair probability above 50%), the book is charging spread buyers on
// the home side: the effective line moves further onto home by
// shiftPerPct points for every percentage point of skew.
func EffectiveSpread(postedSpread float64, homePrice, awayPrice int, shiftPerPct float64) (float64, error) {
	fairHome, _, err := NoVigFromAmerican(homePrice, awayPrice)
	if err != nil {
		return 0, err
	}

	skewPct := (fairHome - 0.5) * 100.0

	return postedSpread - skewPct*shiftPerPct, nil
}

// VigPercentage returns the overround embedded in a two-sided market.
func VigPercentage(price1, price2 int) (float64, error) {
	prob1, err := AmericanToImpliedProbability(price1)
	if err != nil {
		return 0, err
	}

	prob2, err := AmericanToImpliedProbability(price2)
	if err != nil {
		return 0, err
	}

	totalProb := prob1 + prob2
	if totalProb <= 1.0 {
		return 0, nil // No vig
	}

	return (totalProb - 1.0) * 100.0, nil
}
