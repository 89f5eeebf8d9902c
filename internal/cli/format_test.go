package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "€0"},
		{1234567, "€1,234,567"},
		{999.6, "€1,000"},
		{-150000, "-€150,000"},
	}
	for _, c := range cases {
		if got := FormatMoney(c.in); got != c.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatMoneyCents(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{790.254, "€790.25"},
		{790.256, "€790.26"},
		{0, "€0.00"},
		{1234.5, "€1,234.50"},
		{-42.1, "-€42.10"},
	}
	for _, c := range cases {
		if got := FormatMoneyCents(c.in); got != c.want {
			t.Errorf("FormatMoneyCents(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatMoneyCompact(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1234567, "€1.2M"},
		{45600, "€46K"},
		{4560, "€4.6K"},
		{999, "€999"},
		{-1200000, "-€1.2M"},
	}
	for _, c := range cases {
		if got := FormatMoneyCompact(c.in); got != c.want {
			t.Errorf("FormatMoneyCompact(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatYears(t *testing.T) {
	if got := FormatYears(30); got != "30y" {
		t.Errorf("FormatYears(30) = %q, want 30y", got)
	}
	if got := FormatYears(22.5); got != "22.5y" {
		t.Errorf("FormatYears(22.5) = %q, want 22.5y", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.in); got != c.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}
