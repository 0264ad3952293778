package models

// FieldKind is the value type a questionnaire field collects
type FieldKind string

const (
	KindInteger FieldKind = "integer"
	KindFloat   FieldKind = "float"
	KindBoolean FieldKind = "boolean"
	KindEnum    FieldKind = "enum"
)

// Range is the expected span of a numeric field. It guides the form; values
// outside it are still accepted.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FieldSpec describes one questionnaire field
type FieldSpec struct {
	ID    string    `json:"id"`
	Label string    `json:"label"`
	Kind  FieldKind `json:"kind"`
	Range *Range    `json:"valid_range,omitempty"`
	// Options lists the accepted values of an enum field
	Options []string `json:"options,omitempty"`
	// Choices lists the accepted values of a numeric field with a closed set
	Choices []float64 `json:"choices,omitempty"`
	// NonNegative rejects values below zero
	NonNegative bool `json:"non_negative,omitempty"`
	// Positive rejects values at or below zero; the field is a divisor
	Positive bool `json:"positive,omitempty"`
}

// Field ids, as posted by the form
const (
	FieldAge              = "age"
	FieldSalary           = "salary"
	FieldCityIndex        = "city_index"
	FieldAssets           = "assets"
	FieldLiabilities      = "liabilities"
	FieldLoans            = "loans"
	FieldEMI              = "emi"
	FieldResponsibilities = "responsibilities"
	FieldSavings          = "savings"
	FieldCreditScore      = "credit_score"
	FieldInvestments      = "investments"
	FieldMonthlyExpenses  = "monthly_expenses"
	FieldRiskTolerance    = "risk_tolerance"
	FieldBudget           = "budget"
	FieldInsurance        = "insurance"
	FieldExpenseTracking  = "expense_tracking"
	FieldRetirement       = "retirement"
	FieldHighRiskPercent  = "high_risk_percent"
	FieldAutomate         = "automate"
	FieldDefaulted        = "defaulted"
	FieldAdvisor          = "advisor"
	FieldConfidence       = "confidence"
	FieldReviewGoals      = "review_goals"
)

// Fields is the questionnaire in validation order
var Fields = []FieldSpec{
	{ID: FieldAge, Label: "Age", Kind: KindInteger, Range: &Range{Min: 0, Max: 120}, NonNegative: true},
	{ID: FieldSalary, Label: "Annual salary", Kind: KindFloat, Positive: true},
	{ID: FieldCityIndex, Label: "City cost of living", Kind: KindFloat, Choices: []float64{
		float64(CityTier3), float64(CityTier2), float64(CityTier1), float64(CityMetro),
	}},
	{ID: FieldAssets, Label: "Total assets", Kind: KindFloat, NonNegative: true},
	{ID: FieldLiabilities, Label: "Total liabilities", Kind: KindFloat, NonNegative: true},
	{ID: FieldLoans, Label: "Number of active loans", Kind: KindInteger, NonNegative: true},
	{ID: FieldEMI, Label: "Annual EMI payments", Kind: KindFloat, NonNegative: true},
	{ID: FieldResponsibilities, Label: "Dependents", Kind: KindInteger, NonNegative: true},
	{ID: FieldSavings, Label: "Liquid savings", Kind: KindFloat, NonNegative: true},
	{ID: FieldCreditScore, Label: "Credit score", Kind: KindInteger, Range: &Range{Min: 300, Max: 850}},
	{ID: FieldInvestments, Label: "Investments", Kind: KindFloat, NonNegative: true},
	{ID: FieldMonthlyExpenses, Label: "Monthly expenses", Kind: KindFloat, Positive: true},
	{ID: FieldRiskTolerance, Label: "Risk tolerance", Kind: KindFloat, Range: &Range{Min: 0, Max: 1}},
	{ID: FieldBudget, Label: "Keeps a monthly budget", Kind: KindBoolean},
	{ID: FieldInsurance, Label: "Insurance coverage", Kind: KindEnum, Options: insuranceNames[:]},
	{ID: FieldExpenseTracking, Label: "Expense tracking", Kind: KindEnum, Options: trackingNames[:]},
	{ID: FieldRetirement, Label: "Plans for retirement", Kind: KindBoolean},
	{ID: FieldHighRiskPercent, Label: "Share in high-risk assets (%)", Kind: KindInteger, Range: &Range{Min: 0, Max: 100}},
	{ID: FieldAutomate, Label: "Automates savings", Kind: KindBoolean},
	{ID: FieldDefaulted, Label: "Has defaulted on a loan", Kind: KindBoolean},
	{ID: FieldAdvisor, Label: "Uses a financial advisor", Kind: KindBoolean},
	{ID: FieldConfidence, Label: "Financial confidence", Kind: KindInteger, Range: &Range{Min: 1, Max: 10}},
	{ID: FieldReviewGoals, Label: "Reviews goals regularly", Kind: KindBoolean},
}
