package tui

import (
	"fmt"
	"strconv"

	"github.com/casadev/casa/internal/scenario"

	"github.com/charmbracelet/huh"
)

// formValues holds the scenario edit form state. Numeric fields are kept
// as strings so partially typed input never destroys the scenario; they
// are parsed once on completion, with unparsable fields left unchanged.
type formValues struct {
	price        string
	closingCosts string
	growth       string
	maintenance  string
	taxes        string

	amount       string
	term         string
	mortgageType scenario.MortgageType
	fixedRate    string
	varCurrent   string
	varExpected  string

	marketReturn  string
	inflation     string
	investUpfront bool

	netIncome  string
	age        string
	otherDebts string

	pledgeAmount string
	pledgeLTV    string
}

func fnum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func valuesFromScenario(s scenario.Scenario) formValues {
	return formValues{
		price:        fnum(s.Property.Price),
		closingCosts: fnum(s.Property.ClosingCosts),
		growth:       fnum(s.Property.Growth),
		maintenance:  fnum(s.Property.Maintenance),
		taxes:        fnum(s.Property.Taxes),

		amount:       fnum(s.Mortgage.Amount),
		term:         fnum(s.Mortgage.Term),
		mortgageType: s.Mortgage.Type,
		fixedRate:    fnum(s.Mortgage.FixedRate),
		varCurrent:   fnum(s.Mortgage.VarCurrent),
		varExpected:  fnum(s.Mortgage.VarExpected),

		marketReturn:  fnum(s.Investing.Return),
		inflation:     fnum(s.Investing.Inflation),
		investUpfront: s.Investing.InvestUpfront,

		netIncome:  fnum(s.Profile.NetIncome),
		age:        strconv.Itoa(s.Profile.Age),
		otherDebts: fnum(s.Profile.OtherDebts),

		pledgeAmount: fnum(s.Pledge.Amount),
		pledgeLTV:    fnum(s.Pledge.LTV),
	}
}

// apply parses the form strings back into a scenario. Fields that fail
// to parse keep their previous value.
func (v formValues) apply(s scenario.Scenario) scenario.Scenario {
	setf := func(dst *float64, raw string) {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			*dst = f
		}
	}

	setf(&s.Property.Price, v.price)
	setf(&s.Property.ClosingCosts, v.closingCosts)
	setf(&s.Property.Growth, v.growth)
	setf(&s.Property.Maintenance, v.maintenance)
	setf(&s.Property.Taxes, v.taxes)

	setf(&s.Mortgage.Amount, v.amount)
	setf(&s.Mortgage.Term, v.term)
	s.Mortgage.Type = v.mortgageType
	setf(&s.Mortgage.FixedRate, v.fixedRate)
	setf(&s.Mortgage.VarCurrent, v.varCurrent)
	setf(&s.Mortgage.VarExpected, v.varExpected)

	setf(&s.Investing.Return, v.marketReturn)
	setf(&s.Investing.Inflation, v.inflation)
	s.Investing.InvestUpfront = v.investUpfront

	setf(&s.Profile.NetIncome, v.netIncome)
	if age, err := strconv.Atoi(v.age); err == nil {
		s.Profile.Age = age
	}
	setf(&s.Profile.OtherDebts, v.otherDebts)

	setf(&s.Pledge.Amount, v.pledgeAmount)
	setf(&s.Pledge.LTV, v.pledgeLTV)

	return s
}

func validateNumber(raw string) error {
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return fmt.Errorf("not a number")
	}
	return nil
}

func numInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Value(value).
		Validate(validateNumber)
}

func newScenarioForm(v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			numInput("Property price (€)", &v.price),
			numInput("Closing costs (%)", &v.closingCosts),
			numInput("Annual growth (%)", &v.growth),
			numInput("Maintenance per year (€)", &v.maintenance),
			numInput("Taxes per year (€)", &v.taxes),
		).Title("Property"),

		huh.NewGroup(
			numInput("Mortgage amount (€)", &v.amount),
			numInput("Term (years)", &v.term),
			huh.NewSelect[scenario.MortgageType]().
				Title("Rate type").
				Options(
					huh.NewOption("Fixed", scenario.MortgageFixed),
					huh.NewOption("Variable", scenario.MortgageVariable),
				).
				Value(&v.mortgageType),
			numInput("Fixed rate (%)", &v.fixedRate),
			numInput("Variable current rate (%)", &v.varCurrent),
			numInput("Variable expected rate (%)", &v.varExpected),
		).Title("Mortgage"),

		huh.NewGroup(
			numInput("Expected market return (%)", &v.marketReturn),
			numInput("Inflation (%)", &v.inflation),
			huh.NewConfirm().
				Title("Invest the upfront cash instead?").
				Value(&v.investUpfront),
		).Title("Investing"),

		huh.NewGroup(
			numInput("Net monthly income (€)", &v.netIncome),
			numInput("Age", &v.age),
			numInput("Other monthly debts (€)", &v.otherDebts),
			numInput("Pledged portfolio (€)", &v.pledgeAmount),
			numInput("Pledge LTV limit (%)", &v.pledgeLTV),
		).Title("Profile & Pledge"),
	).WithShowHelp(true)
}
