package fincalc

import (
	"errors"
	"math"
	"testing"
)

func TestPayment_StandardMortgage(t *testing.T) {
	// 200k over 30 years at 2.5% annual.
	rate := 2.5 / 100 / 12
	pmt, err := Payment(rate, 360, 200000)
	if err != nil {
		t.Fatalf("Payment returned error: %v", err)
	}
	if !pmt.IsNegative() {
		t.Fatalf("Payment = %s, want a negative outflow", pmt)
	}

	got := MonthlyPayment(pmt)
	want := closedFormPMT(rate, 360, 200000)
	if math.Abs(got-want) > 0.01 {
		t.Fatalf("MonthlyPayment = %.4f, want %.4f within a cent", got, want)
	}
}

func TestPayment_ZeroRate(t *testing.T) {
	pmt, err := Payment(0, 360, 200000)
	if err != nil {
		t.Fatalf("Payment returned error: %v", err)
	}
	if got := MonthlyPayment(pmt); got != 555.56 {
		t.Fatalf("MonthlyPayment at zero rate = %.2f, want 555.56", got)
	}
}

func TestPayment_ZeroPeriods(t *testing.T) {
	if _, err := Payment(0.01, 0, 1000); !errors.Is(err, ErrZeroPeriods) {
		t.Fatalf("Payment with 0 periods: err = %v, want ErrZeroPeriods", err)
	}
	if _, err := Payment(0, 0, 1000); !errors.Is(err, ErrZeroPeriods) {
		t.Fatalf("Payment with 0 periods and 0 rate: err = %v, want ErrZeroPeriods", err)
	}
}

func TestPaymentTimed_FutureValueOffsetsPrincipal(t *testing.T) {
	// Zero rate with a -400 target balance: repay only 600 over 12 periods.
	pmt, err := PaymentTimed(0, 12, 1000, -400, EndOfPeriod)
	if err != nil {
		t.Fatalf("PaymentTimed returned error: %v", err)
	}
	if got := MonthlyPayment(pmt); got != 50 {
		t.Fatalf("MonthlyPayment = %.2f, want 50.00", got)
	}
}

func TestPaymentTimed_AnnuityDue(t *testing.T) {
	rate := 0.005
	ordinary, err := PaymentTimed(rate, 120, 50000, 0, EndOfPeriod)
	if err != nil {
		t.Fatalf("PaymentTimed (ordinary) returned error: %v", err)
	}
	due, err := PaymentTimed(rate, 120, 50000, 0, BeginningOfPeriod)
	if err != nil {
		t.Fatalf("PaymentTimed (due) returned error: %v", err)
	}

	// Paying at the start of the period is cheaper by exactly 1+r.
	gotRatio := ordinary.Div(due).InexactFloat64()
	if math.Abs(gotRatio-(1+rate)) > 1e-9 {
		t.Fatalf("ordinary/due = %.12f, want %.12f", gotRatio, 1+rate)
	}
}

func TestPayment_FractionalPeriods(t *testing.T) {
	// Fractional terms are allowed; the payment simply interpolates.
	whole, err := Payment(0.002, 300, 100000)
	if err != nil {
		t.Fatalf("Payment returned error: %v", err)
	}
	frac, err := Payment(0.002, 300.5, 100000)
	if err != nil {
		t.Fatalf("Payment with fractional periods returned error: %v", err)
	}
	if MonthlyPayment(frac) >= MonthlyPayment(whole) {
		t.Fatalf("payment over 300.5 periods (%.4f) should be below 300 periods (%.4f)",
			MonthlyPayment(frac), MonthlyPayment(whole))
	}
}

// closedFormPMT is the float64 reference formula the decimal path must agree
// with to the cent.
func closedFormPMT(rate float64, periods, pv float64) float64 {
	cf := math.Pow(1+rate, periods)
	return rate * pv * cf / (cf - 1)
}
