package fincalc

import (
	"math"

	"github.com/casadev/casa/internal/scenario"
)

// AmortizationEntry is one month of the payoff schedule.
type AmortizationEntry struct {
	Month     int // 1-based
	Year      int // ceil(month/12)
	Payment   float64
	Principal float64
	Interest  float64
	Balance   float64 // remaining after this payment
}

// AmortizationSchedule produces the month-by-month payoff of the mortgage
// at the given payment and monthly rate. The final principal portion is
// capped at the remaining balance so the last payment never overpays, and
// the schedule stops early once the balance reaches zero.
func AmortizationSchedule(s scenario.Scenario, monthlyPayment, monthlyRate float64) []AmortizationEntry {
	months := s.Mortgage.Months()
	balance := math.Max(0, s.Mortgage.Amount)

	schedule := make([]AmortizationEntry, 0, months)
	for month := 1; month <= months && balance > 0; month++ {
		interest := balance * monthlyRate
		principal := math.Min(monthlyPayment-interest, balance)
		balance = math.Max(0, balance-principal)

		schedule = append(schedule, AmortizationEntry{
			Month:     month,
			Year:      (month + 11) / 12,
			Payment:   monthlyPayment,
			Principal: principal,
			Interest:  interest,
			Balance:   balance,
		})
	}

	return schedule
}
