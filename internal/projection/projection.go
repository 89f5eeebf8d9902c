// Package projection simulates the month-by-month evolution of a financing
// scenario (property value, mortgage balance, pledge cost, ownership
// costs, and investment growth) aggregated into yearly snapshots, and
// composes the full scenario result.
package projection

import (
	"math"

	"github.com/casadev/casa/internal/scenario"
)

// PledgeAPR is the interest-only annual rate charged on pledged collateral.
const PledgeAPR = 0.045

// DefaultYears is the standard projection horizon, independent of the
// mortgage term so results extend past payoff.
const DefaultYears = 30

// Point is one year of the projection, in nominal money and deflated to
// year-0 purchasing power. All values are rounded to whole currency units.
type Point struct {
	Year int

	PropertyValue   float64
	Balance         float64
	NetWorth        float64
	TotalInterest   float64 // cumulative
	CashOutlay      float64 // cumulative
	InvestmentValue float64

	RealPropertyValue   float64
	RealBalance         float64
	RealNetWorth        float64
	RealTotalInterest   float64
	RealCashOutlay      float64
	RealInvestmentValue float64
}

// monthlyFromAnnualPct converts an annual percentage to the compounding-
// equivalent monthly rate: (1+r)^(1/12)-1. Market rates (investment
// growth, inflation) use this; mortgage and pledge rates use simple /12
// division instead, matching how lenders quote them.
func monthlyFromAnnualPct(annualPct float64) float64 {
	return math.Pow(1+annualPct/100, 1.0/12) - 1
}

// Generate runs the simulation for the given horizon. years <= 0 yields an
// empty slice. monthlyPayment and monthlyRate come from the resolved rate
// set and the PMT calculation; passing them in keeps this function pure
// and lets callers project stress payments the same way.
func Generate(s scenario.Scenario, monthlyPayment, monthlyRate float64, years int) []Point {
	if years <= 0 {
		return nil
	}

	mortgageMonths := s.Mortgage.Months()
	horizonMonths := years * 12

	mortgageBalance := math.Max(0, s.Mortgage.Amount)
	propertyValue := math.Max(0, s.Property.Price)
	pledgeAmount := math.Max(0, s.Pledge.Amount)

	closingCosts := s.ClosingCostsAmount()
	downPayment := s.DownPayment()
	investedUpfront := s.UpfrontInvestment()
	investmentValue := investedUpfront

	totalInterest := 0.0
	totalCashOutlay := downPayment + closingCosts + investedUpfront

	realTotalInterest := 0.0
	realCashOutlay := totalCashOutlay // t=0, no discount

	monthlyInvRate := monthlyFromAnnualPct(s.Investing.Return)
	monthlyInfl := monthlyFromAnnualPct(s.Investing.Inflation)
	pledgeMonthlyRate := PledgeAPR / 12

	// Ownership cost in year-0 money; inflated nominally from month 1 on,
	// unlike the mortgage payment which is fixed in nominal terms.
	baseMonthlyOwnershipCost := (s.Property.Maintenance + s.Property.Taxes) / 12

	points := make([]Point, 0, years)

	for year := 1; year <= years; year++ {
		interestYear := 0.0

		for m := 1; m <= 12; m++ {
			monthIndex := (year-1)*12 + m
			// Converts nominal money at this month back to year-0 money.
			inflationDeflator := math.Pow(1+monthlyInfl, float64(monthIndex))

			if monthIndex <= mortgageMonths && mortgageBalance > 0 {
				interest := mortgageBalance * monthlyRate
				principal := monthlyPayment - interest

				totalCashOutlay += monthlyPayment
				realCashOutlay += monthlyPayment / inflationDeflator

				interestYear += interest
				realTotalInterest += interest / inflationDeflator

				if principal >= 0 {
					mortgageBalance = math.Max(0, mortgageBalance-principal)
				} else {
					// Payment doesn't cover interest: the balance grows by
					// the shortfall (negative amortization), not clamped.
					mortgageBalance += interest - monthlyPayment
				}
			}

			// Pledge is interest-only with no term; it accrues across the
			// whole horizon, even after the mortgage is paid off.
			if pledgeAmount > 0 && monthIndex <= horizonMonths {
				pledgeInterest := pledgeAmount * pledgeMonthlyRate
				totalCashOutlay += pledgeInterest
				realCashOutlay += pledgeInterest / inflationDeflator
			}

			if baseMonthlyOwnershipCost > 0 {
				costNominal := baseMonthlyOwnershipCost * math.Pow(1+monthlyInfl, float64(monthIndex-1))
				totalCashOutlay += costNominal
				realCashOutlay += costNominal / inflationDeflator
			}

			if investmentValue > 0 {
				investmentValue *= 1 + monthlyInvRate
			}
		}

		totalInterest += interestYear

		// Property grows once per year, not monthly.
		propertyValue *= 1 + s.Property.Growth/100

		// Year-end stock values deflate at annual compounding; the in-loop
		// cash flows above deflate at monthly compounding.
		yearDeflator := math.Pow(1+s.Investing.Inflation/100, float64(year))

		netWorth := propertyValue - mortgageBalance + investmentValue - pledgeAmount

		points = append(points, Point{
			Year: year,

			PropertyValue:   math.Round(propertyValue),
			Balance:         math.Round(mortgageBalance),
			NetWorth:        math.Round(netWorth),
			TotalInterest:   math.Round(totalInterest),
			CashOutlay:      math.Round(totalCashOutlay),
			InvestmentValue: math.Round(investmentValue),

			RealPropertyValue:   math.Round(propertyValue / yearDeflator),
			RealBalance:         math.Round(mortgageBalance / yearDeflator),
			RealNetWorth:        math.Round(netWorth / yearDeflator),
			RealTotalInterest:   math.Round(realTotalInterest),
			RealCashOutlay:      math.Round(realCashOutlay),
			RealInvestmentValue: math.Round(investmentValue / yearDeflator),
		})
	}

	return points
}
