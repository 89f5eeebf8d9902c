package fincalc

import (
	"errors"

	"github.com/shopspring/decimal"
)

// PaymentTiming selects when during a period the payment falls due.
type PaymentTiming int

const (
	EndOfPeriod       PaymentTiming = iota // ordinary annuity
	BeginningOfPeriod                      // annuity due
)

// ErrZeroPeriods is returned when a payment is requested over zero periods.
var ErrZeroPeriods = errors.New("number of periods cannot be zero")

// Payment computes the periodic payment (PMT) for an amortizing loan with
// zero future value and end-of-period timing, the common mortgage case.
// rate is the per-period rate as a fraction (e.g. 0.025/12).
func Payment(rate, periods, presentValue float64) (decimal.Decimal, error) {
	return PaymentTimed(rate, periods, presentValue, 0, EndOfPeriod)
}

// PaymentTimed is the full PMT form. The result is negative (a cash
// outflow); callers round to cents and take the absolute value for
// display. The computation runs on arbitrary-precision decimals to avoid
// float drift in the compound-factor exponentiation.
func PaymentTimed(rate, periods, presentValue, futureValue float64, timing PaymentTiming) (decimal.Decimal, error) {
	r := decimal.NewFromFloat(rate)
	n := decimal.NewFromFloat(periods)
	pv := decimal.NewFromFloat(presentValue)
	fv := decimal.NewFromFloat(futureValue)

	if n.IsZero() {
		return decimal.Zero, ErrZeroPeriods
	}

	// No interest: straight-line repayment.
	if r.IsZero() {
		return pv.Add(fv).Neg().Div(n), nil
	}

	// compoundFactor = (1+r)^n
	one := decimal.NewFromInt(1)
	compoundFactor := r.Add(one).Pow(n)

	// pmt = r*(pv*(1+r)^n + fv) / ((1+r)^n - 1)
	numerator := r.Mul(pv.Mul(compoundFactor).Add(fv))
	denominator := compoundFactor.Sub(one)
	pmt := numerator.Div(denominator)

	if timing == BeginningOfPeriod {
		pmt = pmt.Div(r.Add(one))
	}

	return pmt.Neg(), nil
}

// MonthlyPayment resolves a PMT result into the positive, cent-rounded
// amount the rest of the system works with.
func MonthlyPayment(pmt decimal.Decimal) float64 {
	return pmt.Round(2).Abs().InexactFloat64()
}
