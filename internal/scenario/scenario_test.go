package scenario

import "testing"

func TestMonths(t *testing.T) {
	cases := []struct {
		term float64
		want int
	}{
		{30, 360},
		{30.5, 366},
		{0.9, 10},
		{0, 0},
		{-5, 0},
	}
	for _, c := range cases {
		m := Mortgage{Term: c.term}
		if got := m.Months(); got != c.want {
			t.Errorf("Months(term=%v) = %d, want %d", c.term, got, c.want)
		}
	}
}

func TestDownPayment(t *testing.T) {
	s := Default()
	// 350k price, 200k loan, no pledge.
	if got := s.DownPayment(); got != 150000 {
		t.Fatalf("DownPayment = %v, want 150000", got)
	}

	s.Pledge.Amount = 100000
	if got := s.DownPayment(); got != 50000 {
		t.Fatalf("DownPayment with pledge = %v, want 50000", got)
	}

	// Over-financed: never negative.
	s.Mortgage.Amount = 400000
	if got := s.DownPayment(); got != 0 {
		t.Fatalf("DownPayment over-financed = %v, want 0", got)
	}
}

func TestUpfrontInvestment(t *testing.T) {
	s := Default()
	// 200k loan + 10% closing on 350k.
	if got := s.UpfrontInvestment(); got != 235000 {
		t.Fatalf("UpfrontInvestment = %v, want 235000", got)
	}

	s.Investing.InvestUpfront = false
	if got := s.UpfrontInvestment(); got != 0 {
		t.Fatalf("UpfrontInvestment without the flag = %v, want 0", got)
	}
}

func TestClosingCostsAmount(t *testing.T) {
	s := Default()
	if got := s.ClosingCostsAmount(); got != 35000 {
		t.Fatalf("ClosingCostsAmount = %v, want 35000", got)
	}
}
