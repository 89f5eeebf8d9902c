// Package sharelink serializes a scenario into a compact URL-safe token
// and back. The token is a positional JSON number array in base64 with
// +/= swapped for -_~, which keeps shared links short and copy-paste safe.
package sharelink

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/casadev/casa/internal/scenario"
)

// Field order in the compact array. Appending is safe; reordering breaks
// existing links.
const fieldCount = 19

var toURLSafe = strings.NewReplacer("+", "-", "/", "_", "=", "~")
var fromURLSafe = strings.NewReplacer("-", "+", "_", "/", "~", "=")

// Encode serializes the scenario into a share token.
func Encode(s scenario.Scenario) string {
	mortgageType := 0.0
	if s.Mortgage.Type == scenario.MortgageVariable {
		mortgageType = 1
	}
	investUpfront := 0.0
	if s.Investing.InvestUpfront {
		investUpfront = 1
	}

	compact := [fieldCount]float64{
		s.Property.Price,
		s.Property.ClosingCosts,
		s.Property.Growth,
		s.Property.Maintenance,
		s.Property.Taxes,
		s.Mortgage.Amount,
		s.Mortgage.Term,
		mortgageType,
		s.Mortgage.FixedRate,
		s.Mortgage.VarCurrent,
		s.Mortgage.VarExpected,
		s.Investing.Return,
		s.Investing.Inflation,
		investUpfront,
		s.Profile.NetIncome,
		float64(s.Profile.Age),
		s.Profile.OtherDebts,
		s.Pledge.Amount,
		s.Pledge.LTV,
	}

	// Marshaling a fixed-size float array cannot fail.
	raw, _ := json.Marshal(compact[:])
	return toURLSafe.Replace(base64.StdEncoding.EncodeToString(raw))
}

// Query returns the token as a URL query string.
func Query(s scenario.Scenario) string {
	return "s=" + Encode(s)
}

// Decode parses a share token back into a scenario. Any malformed token
// (corrupt base64, invalid JSON, wrong structure) yields the supplied
// defaults rather than an error: consumers must always end up with a
// renderable scenario. Fields missing from a short (older) token fall back
// individually to the defaults. Accepts both a bare token and the "s=…"
// query form produced by Query.
func Decode(token string, defaults scenario.Scenario) scenario.Scenario {
	token = strings.TrimSpace(strings.TrimPrefix(token, "s="))
	if token == "" {
		return defaults
	}

	raw, err := base64.StdEncoding.DecodeString(fromURLSafe.Replace(token))
	if err != nil {
		return defaults
	}

	var compact []float64
	if err := json.Unmarshal(raw, &compact); err != nil {
		return defaults
	}

	at := func(i int, def float64) float64 {
		if i < len(compact) {
			return compact[i]
		}
		return def
	}

	s := defaults
	s.Property.Price = at(0, defaults.Property.Price)
	s.Property.ClosingCosts = at(1, defaults.Property.ClosingCosts)
	s.Property.Growth = at(2, defaults.Property.Growth)
	s.Property.Maintenance = at(3, defaults.Property.Maintenance)
	s.Property.Taxes = at(4, defaults.Property.Taxes)

	s.Mortgage.Amount = at(5, defaults.Mortgage.Amount)
	s.Mortgage.Term = at(6, defaults.Mortgage.Term)
	s.Mortgage.Type = scenario.MortgageFixed
	if at(7, 0) == 1 {
		s.Mortgage.Type = scenario.MortgageVariable
	}
	s.Mortgage.FixedRate = at(8, defaults.Mortgage.FixedRate)
	s.Mortgage.VarCurrent = at(9, defaults.Mortgage.VarCurrent)
	s.Mortgage.VarExpected = at(10, defaults.Mortgage.VarExpected)

	s.Investing.Return = at(11, defaults.Investing.Return)
	s.Investing.Inflation = at(12, defaults.Investing.Inflation)
	s.Investing.InvestUpfront = at(13, 0) == 1

	s.Profile.NetIncome = at(14, defaults.Profile.NetIncome)
	s.Profile.Age = int(at(15, float64(defaults.Profile.Age)))
	s.Profile.OtherDebts = at(16, defaults.Profile.OtherDebts)

	s.Pledge.Amount = at(17, defaults.Pledge.Amount)
	s.Pledge.LTV = at(18, defaults.Pledge.LTV)

	return s
}
