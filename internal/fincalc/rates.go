// Package fincalc implements the loan math: rate resolution, the annuity
// payment formula, and the amortization schedule. All functions are pure.
package fincalc

import "github.com/casadev/casa/internal/scenario"

// stressAddOn is the regulatory stress-test add-on applied to variable
// rates, in percentage points.
const stressAddOn = 2.5

// RateSet holds the resolved annual and per-month rates for a mortgage.
// Monthly rates are the simple annual/12 conversion used by lenders, not
// the compound-equivalent conversion the projection engine uses for
// market rates.
type RateSet struct {
	EffectiveRate     float64 // annual percent
	StressRate        float64 // annual percent
	MonthlyRate       float64 // fraction per month
	StressMonthlyRate float64 // fraction per month
}

// ResolveRates derives the effective and stress rates from the mortgage
// terms. Fixed loans stress at their own rate; variable loans stress at
// the expected rate plus the add-on.
func ResolveRates(m scenario.Mortgage) RateSet {
	effective := m.FixedRate
	stress := m.FixedRate
	if m.Type == scenario.MortgageVariable {
		effective = m.VarExpected
		stress = m.VarExpected + stressAddOn
	}

	return RateSet{
		EffectiveRate:     effective,
		StressRate:        stress,
		MonthlyRate:       effective / 100 / 12,
		StressMonthlyRate: stress / 100 / 12,
	}
}
