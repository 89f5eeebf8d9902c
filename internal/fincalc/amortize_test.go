package fincalc

import (
	"math"
	"testing"

	"github.com/casadev/casa/internal/scenario"
)

func testScenario() scenario.Scenario {
	s := scenario.Default()
	s.Mortgage.Amount = 200000
	s.Mortgage.Term = 30
	return s
}

func TestAmortizationSchedule_FullTerm(t *testing.T) {
	s := testScenario()
	rate := 2.5 / 100 / 12
	payment := closedFormPMT(rate, 360, 200000)

	entries := AmortizationSchedule(s, payment, rate)
	if len(entries) != 360 {
		t.Fatalf("schedule length = %d, want 360", len(entries))
	}

	first := entries[0]
	if first.Month != 1 || first.Year != 1 {
		t.Fatalf("first entry month/year = %d/%d, want 1/1", first.Month, first.Year)
	}
	if wantInterest := 200000 * rate; math.Abs(first.Interest-wantInterest) > 1e-9 {
		t.Fatalf("first interest = %v, want %v", first.Interest, wantInterest)
	}

	if entries[11].Year != 1 {
		t.Fatalf("month 12 year = %d, want 1", entries[11].Year)
	}
	if entries[12].Year != 2 {
		t.Fatalf("month 13 year = %d, want 2", entries[12].Year)
	}

	// Balance never increases and ends at zero.
	prev := 200000.0
	for _, e := range entries {
		if e.Balance > prev+1e-9 {
			t.Fatalf("balance grew at month %d: %v -> %v", e.Month, prev, e.Balance)
		}
		prev = e.Balance
	}
	if final := entries[len(entries)-1].Balance; math.Abs(final) > 0.01 {
		t.Fatalf("final balance = %v, want 0", final)
	}

	// Principal portions add back up to the loan.
	sum := 0.0
	for _, e := range entries {
		sum += e.Principal
	}
	if math.Abs(sum-200000) > 0.01*float64(len(entries)) {
		t.Fatalf("sum of principal = %v, want 200000", sum)
	}
}

func TestAmortizationSchedule_EarlyPayoff(t *testing.T) {
	s := testScenario()
	rate := 2.5 / 100 / 12

	entries := AmortizationSchedule(s, 2000, rate)
	if len(entries) == 0 || len(entries) >= 360 {
		t.Fatalf("overpaying schedule length = %d, want early payoff", len(entries))
	}

	last := entries[len(entries)-1]
	if last.Balance != 0 {
		t.Fatalf("final balance = %v, want exactly 0", last.Balance)
	}
	// Final principal is capped at what was left, never the full payment.
	if last.Principal > 2000 {
		t.Fatalf("final principal = %v, exceeds the payment", last.Principal)
	}
}

func TestAmortizationSchedule_PaymentBelowInterest(t *testing.T) {
	s := testScenario()
	rate := 5.0 / 100 / 12

	// 200k at 5% accrues ~833/month interest; a 500 payment never amortizes.
	entries := AmortizationSchedule(s, 500, rate)
	if len(entries) != 360 {
		t.Fatalf("schedule length = %d, want full term 360", len(entries))
	}
	for _, e := range entries {
		if e.Principal > 0 {
			t.Fatalf("month %d principal = %v, want none when payment is below interest", e.Month, e.Principal)
		}
	}
	if final := entries[len(entries)-1].Balance; final <= 200000 {
		t.Fatalf("final balance = %v, want growth above the original 200000", final)
	}
}

func TestAmortizationSchedule_NoLoan(t *testing.T) {
	s := testScenario()
	s.Mortgage.Amount = 0
	if entries := AmortizationSchedule(s, 790.24, 0.002); len(entries) != 0 {
		t.Fatalf("schedule for zero balance has %d entries, want 0", len(entries))
	}
}
