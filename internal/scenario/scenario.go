// Package scenario defines the financing scenario input: a snapshot of
// property, mortgage, investing, profile, and pledge parameters that the
// projection engine turns into results. Scenarios are value objects; the
// engine never mutates or retains them.
package scenario

import "math"

// MortgageType selects between a fixed-rate and a variable-rate loan.
type MortgageType string

const (
	MortgageFixed    MortgageType = "fixed"
	MortgageVariable MortgageType = "variable"
)

// Scenario is one complete set of inputs for evaluation.
type Scenario struct {
	Property  Property  `toml:"property"`
	Mortgage  Mortgage  `toml:"mortgage"`
	Investing Investing `toml:"investing"`
	Profile   Profile   `toml:"profile"`
	Pledge    Pledge    `toml:"pledge"`
}

// Property holds the purchase target and its recurring ownership costs.
// Maintenance and taxes are annual amounts in year-0 money.
type Property struct {
	Price        float64 `toml:"price"`
	ClosingCosts float64 `toml:"closing_costs_pct"` // percent of price
	Growth       float64 `toml:"growth_pct"`        // nominal annual percent
	Maintenance  float64 `toml:"maintenance_per_year"`
	Taxes        float64 `toml:"taxes_per_year"`
}

// Mortgage holds the loan parameters. Term is in years and may be
// fractional; the number of payments is floor(term x 12).
type Mortgage struct {
	Amount      float64      `toml:"amount"`
	Term        float64      `toml:"term_years"`
	Type        MortgageType `toml:"type"`
	FixedRate   float64      `toml:"fixed_rate_pct"`
	VarCurrent  float64      `toml:"variable_current_pct"`
	VarExpected float64      `toml:"variable_expected_pct"`
}

// Investing holds the market assumptions and whether the buyer invests the
// freed-up capital (loan amount + closing costs) upfront instead of paying
// cash for the property.
type Investing struct {
	Return        float64 `toml:"return_pct"`    // nominal annual percent
	Inflation     float64 `toml:"inflation_pct"` // annual percent
	InvestUpfront bool    `toml:"invest_upfront"`
}

// Profile holds the buyer's affordability inputs.
type Profile struct {
	NetIncome  float64 `toml:"net_monthly_income"`
	Age        int     `toml:"age"`
	OtherDebts float64 `toml:"other_debts_monthly"`
}

// Pledge holds the securities-as-collateral position: the pledged amount
// and the loan-to-value limit above which the position is flagged risky.
type Pledge struct {
	Amount float64 `toml:"amount"`
	LTV    float64 `toml:"ltv_limit_pct"`
}

// Default returns the baseline scenario: a 350k property financed with a
// 200k 30-year fixed mortgage at 2.5%, with the freed capital invested.
func Default() Scenario {
	return Scenario{
		Property: Property{
			Price:        350000,
			ClosingCosts: 10,
			Growth:       0,
			Maintenance:  800,
			Taxes:        600,
		},
		Mortgage: Mortgage{
			Amount:      200000,
			Term:        30,
			Type:        MortgageFixed,
			FixedRate:   2.5,
			VarCurrent:  3.8,
			VarExpected: 2.5,
		},
		Investing: Investing{
			Return:        7.0,
			Inflation:     2.5,
			InvestUpfront: true,
		},
		Profile: Profile{
			NetIncome:  2500,
			Age:        30,
			OtherDebts: 0,
		},
		Pledge: Pledge{
			Amount: 0,
			LTV:    50,
		},
	}
}

// Months returns the number of mortgage payments, floor(term x 12),
// never negative.
func (m Mortgage) Months() int {
	months := int(math.Floor(m.Term * 12))
	if months < 0 {
		return 0
	}
	return months
}

// ClosingCostsAmount returns the closing costs in currency units.
func (s Scenario) ClosingCostsAmount() float64 {
	return s.Property.Price * (s.Property.ClosingCosts / 100)
}

// DownPayment returns the cash paid at purchase after the mortgage and any
// pledged collateral, never negative.
func (s Scenario) DownPayment() float64 {
	dp := s.Property.Price - s.Mortgage.Amount - math.Max(0, s.Pledge.Amount)
	return math.Max(0, dp)
}

// UpfrontInvestment returns the amount invested at month 0: the loan amount
// plus closing costs when the buyer chose to invest upfront, otherwise 0.
// This doubles as the collateral base for the pledge LTV check.
func (s Scenario) UpfrontInvestment() float64 {
	if !s.Investing.InvestUpfront {
		return 0
	}
	return s.Mortgage.Amount + s.ClosingCostsAmount()
}
