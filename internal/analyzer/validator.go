package analyzer

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/Dan9191/finance-health/internal/models"
)

// fieldValues holds parsed questionnaire values keyed by field id
type fieldValues struct {
	numbers map[string]float64
	flags   map[string]bool
	options map[string]string
}

// Validate checks raw against the questionnaire fields in order and builds a
// FinanceProfile. It returns a *models.InvalidProfileError for the first
// offending field.
func Validate(raw models.RawProfile) (models.FinanceProfile, error) {
	vals := fieldValues{
		numbers: make(map[string]float64),
		flags:   make(map[string]bool),
		options: make(map[string]string),
	}

	for _, spec := range models.Fields {
		v, ok := raw[spec.ID]
		if !ok || v == nil {
			return models.FinanceProfile{}, models.NewInvalidProfileError(spec.ID, models.ErrMissingField)
		}
		if err := vals.parse(spec, v); err != nil {
			return models.FinanceProfile{}, models.NewInvalidProfileError(spec.ID, err)
		}
	}

	return vals.profile()
}

func (fv fieldValues) parse(spec models.FieldSpec, v any) error {
	switch spec.Kind {
	case models.KindBoolean:
		b, err := toBool(v)
		if err != nil {
			return err
		}
		fv.flags[spec.ID] = b
	case models.KindEnum:
		s, ok := v.(string)
		if !ok {
			return models.ErrNotInEnumeration
		}
		s = strings.TrimSpace(s)
		if !contains(spec.Options, s) {
			return models.ErrNotInEnumeration
		}
		fv.options[spec.ID] = s
	default:
		n, err := toNumber(v)
		if err != nil {
			return err
		}
		if spec.Kind == models.KindInteger && (n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxInt32) {
			return models.ErrNotInteger
		}
		if len(spec.Choices) > 0 && !containsFloat(spec.Choices, n) {
			return models.ErrNotInEnumeration
		}
		if spec.Positive && n <= 0 {
			return models.ErrDivisionHazard
		}
		if spec.NonNegative && n < 0 {
			return models.ErrNegativeValue
		}
		fv.numbers[spec.ID] = n
	}
	return nil
}

func (fv fieldValues) profile() (models.FinanceProfile, error) {
	insurance, err := models.ParseInsurance(fv.options[models.FieldInsurance])
	if err != nil {
		return models.FinanceProfile{}, models.NewInvalidProfileError(models.FieldInsurance, models.ErrNotInEnumeration)
	}
	tracking, err := models.ParseExpenseTracking(fv.options[models.FieldExpenseTracking])
	if err != nil {
		return models.FinanceProfile{}, models.NewInvalidProfileError(models.FieldExpenseTracking, models.ErrNotInEnumeration)
	}

	num := func(id string) float64 { return fv.numbers[id] }
	integer := func(id string) int { return int(fv.numbers[id]) }

	return models.FinanceProfile{
		Age:              integer(models.FieldAge),
		Salary:           num(models.FieldSalary),
		CityIndex:        models.CityIndex(num(models.FieldCityIndex)),
		Assets:           num(models.FieldAssets),
		Liabilities:      num(models.FieldLiabilities),
		Loans:            integer(models.FieldLoans),
		EMI:              num(models.FieldEMI),
		Responsibilities: integer(models.FieldResponsibilities),
		Savings:          num(models.FieldSavings),
		CreditScore:      integer(models.FieldCreditScore),
		Investments:      num(models.FieldInvestments),
		MonthlyExpenses:  num(models.FieldMonthlyExpenses),
		RiskTolerance:    num(models.FieldRiskTolerance),
		HighRiskPercent:  integer(models.FieldHighRiskPercent),
		Confidence:       integer(models.FieldConfidence),
		Budget:           fv.flags[models.FieldBudget],
		Retirement:       fv.flags[models.FieldRetirement],
		Automate:         fv.flags[models.FieldAutomate],
		Defaulted:        fv.flags[models.FieldDefaulted],
		Advisor:          fv.flags[models.FieldAdvisor],
		ReviewGoals:      fv.flags[models.FieldReviewGoals],
		Insurance:        insurance,
		ExpenseTracking:  tracking,
	}, nil
}

// CheckProfile applies the finiteness and divisor guards to an already
// typed profile
func CheckProfile(p models.FinanceProfile) error {
	for _, f := range []struct {
		id    string
		value float64
	}{
		{models.FieldSalary, p.Salary},
		{models.FieldCityIndex, float64(p.CityIndex)},
		{models.FieldAssets, p.Assets},
		{models.FieldLiabilities, p.Liabilities},
		{models.FieldEMI, p.EMI},
		{models.FieldSavings, p.Savings},
		{models.FieldInvestments, p.Investments},
		{models.FieldMonthlyExpenses, p.MonthlyExpenses},
		{models.FieldRiskTolerance, p.RiskTolerance},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return models.NewInvalidProfileError(f.id, models.ErrNotNumeric)
		}
	}
	if !(p.Salary > 0) {
		return models.NewInvalidProfileError(models.FieldSalary, models.ErrDivisionHazard)
	}
	if !(p.MonthlyExpenses > 0) {
		return models.NewInvalidProfileError(models.FieldMonthlyExpenses, models.ErrDivisionHazard)
	}
	if !p.CityIndex.Valid() {
		return models.NewInvalidProfileError(models.FieldCityIndex, models.ErrNotInEnumeration)
	}
	return nil
}

func toNumber(v any) (float64, error) {
	var n float64
	switch t := v.(type) {
	case float64:
		n = t
	case float32:
		n = float64(t)
	case int:
		n = float64(t)
	case int64:
		n = float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, models.ErrNotNumeric
		}
		n = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, models.ErrNotNumeric
		}
		n = f
	default:
		return 0, models.ErrNotNumeric
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, models.ErrNotNumeric
	}
	return n, nil
}

func toBool(v any) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes":
			return true, nil
		case "false", "no":
			return false, nil
		}
	}
	return false, models.ErrNotBoolean
}

func contains(options []string, s string) bool {
	for _, o := range options {
		if o == s {
			return true
		}
	}
	return false
}

func containsFloat(choices []float64, n float64) bool {
	for _, c := range choices {
		if c == n {
			return true
		}
	}
	return false
}
