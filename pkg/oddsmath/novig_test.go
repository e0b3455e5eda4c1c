package oddsmath

import (
	"math"
	"testing"
)

func TestRemoveVigMultiplicative(t *testing.T) {
	tests := []struct {
		name      string
		prob1     float64
		prob2     float64
		wantFair1 float64
		wantFair2 float64
		wantErr   bool
	}{
		{
			name:      "standard -110/-110 market",
			prob1:     0.5238,
			prob2:     0.5238,
			wantFair1: 0.5000,
			wantFair2: 0.5000,
		},
		{
			name:      "skewed market",
			prob1:     0.60,
			prob2:     0.45,
			wantFair1: 0.5714,
			wantFair2: 0.4286,
		},
		{
			name:    "no vig detected",
			prob1:   0.50,
			prob2:   0.50,
			wantErr: true,
		},
		{
			name:    "invalid probability zero",
			prob1:   0,
			prob2:   0.52,
			wantErr: true,
		},
		{
			name:    "invalid probability above one",
			prob1:   1.2,
			prob2:   0.52,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fair1, fair2, err := RemoveVigMultiplicative(tt.prob1, tt.prob2)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got none")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if math.Abs(fair1-tt.wantFair1) > 0.001 {
				t.Errorf("fair1: expected %.4f, got %.4f", tt.wantFair1, fair1)
			}
			if math.Abs(fair2-tt.wantFair2) > 0.001 {
				t.Errorf("fair2: expected %.4f, got %.4f", tt.wantFair2, fair2)
			}

			if math.Abs((fair1+fair2)-1.0) > 0.0001 {
				t.Errorf("fair probabilities should sum to 1.0, got %.4f", fair1+fair2)
			}
		})
	}
}

func TestNoVigFromAmerican(t *testing.T) {
	fair1, fair2, err := NoVigFromAmerican(-110, -110)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(fair1-0.5) > 0.0001 || math.Abs(fair2-0.5) > 0.0001 {
		t.Errorf("symmetric -110/-110 should split 50/50, got %.4f/%.4f", fair1, fair2)
	}

	if _, _, err := NoVigFromAmerican(0, -110); err == nil {
		t.Errorf("expected error for zero price")
	}
}

func TestEffectiveSpread(t *testing.T) {
	tests := []struct {
		name        string
		posted      float64
		homePrice   int
		awayPrice   int
		shiftPerPct float64
		expected    float64
		wantErr     bool
	}{
		{
			name:        "symmetric prices leave line unchanged",
			posted:      -2.0,
			homePrice:   -110,
			awayPrice:   -110,
			shiftPerPct: 0.25,
			expected:    -2.0,
		},
		{
			name:        "home-shaded prices move line onto home",
			posted:      -3.0,
			homePrice:   -120,
			awayPrice:   100,
			shiftPerPct: 0.25,
			// fair home = (6/11) / (6/11 + 1/2) = 0.5217 → 2.17% skew
			expected: -3.543,
		},
		{
			name:        "away-shaded prices move line off home",
			posted:      -3.0,
			homePrice:   100,
			awayPrice:   -120,
			shiftPerPct: 0.25,
			expected:    -2.457,
		},
		{
			name:        "zero shift factor disables normalization",
			posted:      -7.5,
			homePrice:   -125,
			awayPrice:   105,
			shiftPerPct: 0,
			expected:    -7.5,
		},
		{
			name:      "missing price errors",
			posted:    -2.0,
			homePrice: 0,
			awayPrice: -110,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := EffectiveSpread(tt.posted, tt.homePrice, tt.awayPrice, tt.shiftPerPct)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got none")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("expected %.3f, got %.3f", tt.expected, result)
			}
		})
	}
}

func TestVigPercentage(t *testing.T) {
	vig, err := VigPercentage(-110, -110)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 52.38% + 52.38% = 104.76% → 4.76% vig
	if math.Abs(vig-4.76) > 0.01 {
		t.Errorf("expected ~4.76%% vig, got %.2f%%", vig)
	}
}
