package sharelink

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/casadev/casa/internal/scenario"
)

func customScenario() scenario.Scenario {
	s := scenario.Default()
	s.Property.Price = 425000
	s.Property.ClosingCosts = 12.5
	s.Mortgage.Amount = 300000
	s.Mortgage.Term = 25
	s.Mortgage.Type = scenario.MortgageVariable
	s.Mortgage.VarExpected = 3.2
	s.Investing.Return = 6.5
	s.Investing.InvestUpfront = false
	s.Profile.NetIncome = 3800
	s.Profile.Age = 41
	s.Pledge.Amount = 50000
	s.Pledge.LTV = 40
	return s
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	orig := customScenario()
	got := Decode(Encode(orig), scenario.Default())
	if got != orig {
		t.Fatalf("round trip = %+v, want %+v", got, orig)
	}
}

func TestEncode_URLSafe(t *testing.T) {
	token := Encode(customScenario())
	if strings.ContainsAny(token, "+/=") {
		t.Fatalf("token %q contains URL-hostile base64 characters", token)
	}
	if !strings.HasPrefix(Query(customScenario()), "s=") {
		t.Fatal("Query missing the s= prefix")
	}
}

func TestDecode_AcceptsQueryForm(t *testing.T) {
	orig := customScenario()
	if got := Decode(Query(orig), scenario.Default()); got != orig {
		t.Fatalf("query-form decode = %+v, want %+v", got, orig)
	}
}

func TestDecode_GarbageYieldsDefaults(t *testing.T) {
	defaults := scenario.Default()
	for _, token := range []string{
		"",
		"not base64 at all!!",
		base64.StdEncoding.EncodeToString([]byte("not json")),
		base64.StdEncoding.EncodeToString([]byte(`{"an":"object"}`)),
	} {
		if got := Decode(token, defaults); got != defaults {
			t.Fatalf("Decode(%q) = %+v, want defaults", token, got)
		}
	}
}

func TestDecode_ShortTokenFallsBackPerField(t *testing.T) {
	// An older link carrying only the first six fields.
	raw, err := json.Marshal([]float64{500000, 8, 1.5, 900, 700, 250000})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	token := base64.StdEncoding.EncodeToString(raw)

	defaults := scenario.Default()
	got := Decode(token, defaults)

	if got.Property.Price != 500000 {
		t.Fatalf("Price = %v, want 500000 from the token", got.Property.Price)
	}
	if got.Mortgage.Amount != 250000 {
		t.Fatalf("Amount = %v, want 250000 from the token", got.Mortgage.Amount)
	}
	if got.Mortgage.Term != defaults.Mortgage.Term {
		t.Fatalf("Term = %v, want the default %v", got.Mortgage.Term, defaults.Mortgage.Term)
	}
	if got.Pledge.LTV != defaults.Pledge.LTV {
		t.Fatalf("LTV = %v, want the default %v", got.Pledge.LTV, defaults.Pledge.LTV)
	}
	// Flags absent from a short token read as off, not as the default.
	if got.Mortgage.Type != scenario.MortgageFixed {
		t.Fatalf("Type = %v, want fixed", got.Mortgage.Type)
	}
	if got.Investing.InvestUpfront {
		t.Fatal("InvestUpfront = true, want false for a short token")
	}
}
