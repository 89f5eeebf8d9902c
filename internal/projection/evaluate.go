package projection

import (
	"github.com/casadev/casa/internal/fincalc"
	"github.com/casadev/casa/internal/scenario"
)

// Payments summarizes the monthly cash commitments of a scenario.
type Payments struct {
	Monthly              float64 // mortgage payment at the effective rate
	Stress               float64 // mortgage payment at the stress rate
	TotalMonthlyOutflow  float64 // payment + pledge interest + other debts + ownership costs
	TotalMonthlyProperty float64 // recurring property expenses
}

// Risk is the pledged-collateral loan-to-value assessment.
type Risk struct {
	CurrentLTV   float64 // percent
	IsPledgeRisk bool
}

// Result aggregates everything a presentation layer needs for one scenario.
// The amortization schedule is intentionally absent: consumers that need it
// build it on demand with fincalc.AmortizationSchedule.
type Result struct {
	Rates       fincalc.RateSet
	Payments    Payments
	Projections []Point
	Risk        Risk
}

// Evaluate is the single entry point composing rates, payments (normal and
// stress), projections, and risk for a scenario. It fails only when the
// mortgage term resolves to zero periods.
func Evaluate(s scenario.Scenario, years int) (Result, error) {
	rates := fincalc.ResolveRates(s.Mortgage)
	totalMonths := s.Mortgage.Term * 12

	pmt, err := fincalc.Payment(rates.MonthlyRate, totalMonths, s.Mortgage.Amount)
	if err != nil {
		return Result{}, err
	}
	monthly := fincalc.MonthlyPayment(pmt)

	stressPmt, err := fincalc.Payment(rates.StressMonthlyRate, totalMonths, s.Mortgage.Amount)
	if err != nil {
		return Result{}, err
	}
	stress := fincalc.MonthlyPayment(stressPmt)

	pledgeCost := s.Pledge.Amount * PledgeAPR / 12
	outflow := monthly + pledgeCost + s.Profile.OtherDebts +
		s.Property.Maintenance/12 + s.Property.Taxes/12

	// LTV of the pledge against the collateral actually invested upfront.
	collateral := s.UpfrontInvestment()
	currentLTV := 0.0
	if s.Pledge.Amount > 0 && collateral > 0 {
		currentLTV = s.Pledge.Amount / collateral * 100
	}

	return Result{
		Rates: rates,
		Payments: Payments{
			Monthly:              monthly,
			Stress:               stress,
			TotalMonthlyOutflow:  outflow,
			TotalMonthlyProperty: s.Property.Maintenance / 12,
		},
		Projections: Generate(s, monthly, rates.MonthlyRate, years),
		Risk: Risk{
			CurrentLTV:   currentLTV,
			IsPledgeRisk: currentLTV > s.Pledge.LTV,
		},
	}, nil
}
