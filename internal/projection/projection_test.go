package projection

import (
	"math"
	"testing"

	"github.com/casadev/casa/internal/scenario"
)

func TestGenerate_ZeroHorizon(t *testing.T) {
	s := scenario.Default()
	if points := Generate(s, 790.24, 0.025/12, 0); points != nil {
		t.Fatalf("Generate with 0 years = %d points, want none", len(points))
	}
	if points := Generate(s, 790.24, 0.025/12, -3); points != nil {
		t.Fatalf("Generate with negative years = %d points, want none", len(points))
	}
}

func TestGenerate_OnePointPerYear(t *testing.T) {
	s := scenario.Default()
	points := Generate(s, 790.24, 0.025/12, 30)
	if len(points) != 30 {
		t.Fatalf("Generate over 30 years = %d points, want 30", len(points))
	}
	for i, p := range points {
		if p.Year != i+1 {
			t.Fatalf("points[%d].Year = %d, want %d", i, p.Year, i+1)
		}
	}
}

func TestGenerate_BalanceAmortizesToZero(t *testing.T) {
	s := scenario.Default()
	rate := 2.5 / 100 / 12
	points := Generate(s, 790.25, rate, 31)

	prev := s.Mortgage.Amount
	for _, p := range points {
		if p.Balance > prev {
			t.Fatalf("year %d balance = %v, grew from %v", p.Year, p.Balance, prev)
		}
		prev = p.Balance
	}

	// One year past the 30-year term the loan must be fully gone.
	if last := points[len(points)-1].Balance; last != 0 {
		t.Fatalf("balance after the term = %v, want 0", last)
	}
}

func TestGenerate_NegativeAmortizationGrowsBalance(t *testing.T) {
	s := scenario.Default()
	rate := 5.0 / 100 / 12

	// 200k at 5% accrues ~833/month; paying 500 digs the hole deeper.
	points := Generate(s, 500, rate, 10)
	if points[9].Balance <= s.Mortgage.Amount {
		t.Fatalf("year 10 balance = %v, want above the original %v", points[9].Balance, s.Mortgage.Amount)
	}
}

func TestGenerate_PropertyGrowsAnnually(t *testing.T) {
	s := scenario.Default()
	s.Property.Growth = 3

	points := Generate(s, 790.24, 0.025/12, 2)
	if want := math.Round(350000 * 1.03); points[0].PropertyValue != want {
		t.Fatalf("year 1 property = %v, want %v", points[0].PropertyValue, want)
	}
	if want := math.Round(350000 * 1.03 * 1.03); points[1].PropertyValue != want {
		t.Fatalf("year 2 property = %v, want %v", points[1].PropertyValue, want)
	}
}

func TestGenerate_InvestmentCompoundsMonthly(t *testing.T) {
	s := scenario.Default()
	s.Investing.InvestUpfront = true
	s.Investing.Return = 7

	upfront := s.UpfrontInvestment()
	monthly := math.Pow(1.07, 1.0/12) - 1

	points := Generate(s, 790.24, 0.025/12, 1)
	want := math.Round(upfront * math.Pow(1+monthly, 12))
	if points[0].InvestmentValue != want {
		t.Fatalf("year 1 investment = %v, want %v", points[0].InvestmentValue, want)
	}
	// Twelve months of compound-equivalent monthly growth is one year at 7%.
	if approx := math.Round(upfront * 1.07); points[0].InvestmentValue != approx {
		t.Fatalf("year 1 investment = %v, want %v (7%% annual)", points[0].InvestmentValue, approx)
	}
}

func TestGenerate_NoUpfrontMeansNoInvestment(t *testing.T) {
	s := scenario.Default()
	s.Investing.InvestUpfront = false

	points := Generate(s, 790.24, 0.025/12, 5)
	for _, p := range points {
		if p.InvestmentValue != 0 {
			t.Fatalf("year %d investment = %v, want 0 without upfront investing", p.Year, p.InvestmentValue)
		}
	}
}

func TestGenerate_StocksDeflateAtAnnualRate(t *testing.T) {
	s := scenario.Default()
	s.Investing.Inflation = 2.5
	s.Property.Growth = 0

	points := Generate(s, 790.24, 0.025/12, 2)

	if want := math.Round(350000 / 1.025); points[0].RealPropertyValue != want {
		t.Fatalf("year 1 real property = %v, want %v", points[0].RealPropertyValue, want)
	}
	if want := math.Round(350000 / (1.025 * 1.025)); points[1].RealPropertyValue != want {
		t.Fatalf("year 2 real property = %v, want %v", points[1].RealPropertyValue, want)
	}
}

func TestGenerate_FlowsDeflateMonthly(t *testing.T) {
	s := scenario.Default()
	s.Investing.Inflation = 2.5

	points := Generate(s, 790.24, 0.025/12, 1)
	p := points[0]

	// Real outlay sits strictly between the nominal amount and a full
	// year-end annual discount of every flow: only flows after month 0
	// get discounted, each at its own month.
	if p.RealCashOutlay >= p.CashOutlay {
		t.Fatalf("real outlay %v not below nominal %v", p.RealCashOutlay, p.CashOutlay)
	}
	if floor := math.Round(p.CashOutlay / 1.025); p.RealCashOutlay <= floor {
		t.Fatalf("real outlay %v not above the full-year discount %v", p.RealCashOutlay, floor)
	}
}

func TestGenerate_PledgeInterestAccruesPastPayoff(t *testing.T) {
	base := scenario.Default()
	base.Mortgage.Term = 1
	base.Mortgage.Amount = 12000
	// Fully financed, so the pledge cannot shift the down payment and the
	// only outlay difference is its interest.
	base.Property.Price = 12000
	base.Property.Maintenance = 0
	base.Property.Taxes = 0
	base.Investing.Inflation = 0
	base.Investing.InvestUpfront = false

	withPledge := base
	withPledge.Pledge.Amount = 100000

	payment := 1100.0
	rate := 0.0
	plain := Generate(base, payment, rate, 3)
	pledged := Generate(withPledge, payment, rate, 3)

	// 100k at 4.5% interest-only accrues 4500/year for every horizon year,
	// long after the 1-year mortgage is done.
	wantExtra := 100000 * PledgeAPR * 3
	gotExtra := pledged[2].CashOutlay - plain[2].CashOutlay
	if math.Abs(gotExtra-wantExtra) > 1 {
		t.Fatalf("pledge outlay over 3 years = %v, want %v", gotExtra, wantExtra)
	}

	// The pledged amount is owed, so it reduces net worth.
	if pledged[2].NetWorth >= plain[2].NetWorth {
		t.Fatalf("pledged net worth %v not below plain %v", pledged[2].NetWorth, plain[2].NetWorth)
	}
}

func TestGenerate_OwnershipCostsInflate(t *testing.T) {
	base := scenario.Default()
	base.Property.Maintenance = 1200
	base.Property.Taxes = 0
	base.Mortgage.Amount = 0
	base.Investing.InvestUpfront = false
	base.Investing.Inflation = 0

	inflated := base
	inflated.Investing.Inflation = 5

	flat := Generate(base, 0, 0, 2)
	hot := Generate(inflated, 0, 0, 2)

	flatCosts := flat[1].CashOutlay - flat[0].CashOutlay
	hotCosts := hot[1].CashOutlay - hot[0].CashOutlay
	if hotCosts <= flatCosts {
		t.Fatalf("year 2 inflated costs %v not above flat costs %v", hotCosts, flatCosts)
	}
}
