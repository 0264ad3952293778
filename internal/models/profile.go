package models

import "fmt"

// Insurance is the coverage a person holds
type Insurance int

const (
	InsuranceNone Insurance = iota
	InsuranceHealth
	InsuranceLife
	InsuranceBoth
)

var insuranceNames = [...]string{"None", "Health", "Life", "Both"}

func (i Insurance) String() string {
	if i < 0 || int(i) >= len(insuranceNames) {
		return fmt.Sprintf("Insurance(%d)", int(i))
	}
	return insuranceNames[i]
}

// MarshalText renders the insurance option by name
func (i Insurance) MarshalText() ([]byte, error) {
	if i < 0 || int(i) >= len(insuranceNames) {
		return nil, fmt.Errorf("unknown insurance option %d", int(i))
	}
	return []byte(insuranceNames[i]), nil
}

// ParseInsurance maps a form value to its Insurance option
func ParseInsurance(s string) (Insurance, error) {
	for i, name := range insuranceNames {
		if name == s {
			return Insurance(i), nil
		}
	}
	return 0, fmt.Errorf("unknown insurance option %q", s)
}

// ExpenseTracking is how often expenses are tracked
type ExpenseTracking int

const (
	TrackingNever ExpenseTracking = iota
	TrackingOccasionally
	TrackingMonthly
	TrackingDaily
)

var trackingNames = [...]string{"Never", "Occasionally", "Monthly", "Daily"}

func (t ExpenseTracking) String() string {
	if t < 0 || int(t) >= len(trackingNames) {
		return fmt.Sprintf("ExpenseTracking(%d)", int(t))
	}
	return trackingNames[t]
}

// MarshalText renders the tracking frequency by name
func (t ExpenseTracking) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(trackingNames) {
		return nil, fmt.Errorf("unknown expense tracking option %d", int(t))
	}
	return []byte(trackingNames[t]), nil
}

// ParseExpenseTracking maps a form value to its ExpenseTracking option
func ParseExpenseTracking(s string) (ExpenseTracking, error) {
	for i, name := range trackingNames {
		if name == s {
			return ExpenseTracking(i), nil
		}
	}
	return 0, fmt.Errorf("unknown expense tracking option %q", s)
}

// CityIndex is the cost-of-living multiplier of the city a person lives in
type CityIndex float64

const (
	CityTier3 CityIndex = 0.8
	CityTier2 CityIndex = 1.0
	CityTier1 CityIndex = 1.2
	CityMetro CityIndex = 1.5
)

// CityIndexes lists the accepted multipliers in ascending order
var CityIndexes = []CityIndex{CityTier3, CityTier2, CityTier1, CityMetro}

// Valid reports whether c is one of the accepted multipliers
func (c CityIndex) Valid() bool {
	for _, v := range CityIndexes {
		if c == v {
			return true
		}
	}
	return false
}

// FinanceProfile is a validated questionnaire submission.
// Salary and MonthlyExpenses are always positive.
type FinanceProfile struct {
	Age              int             `json:"age"`
	Salary           float64         `json:"salary"`
	CityIndex        CityIndex       `json:"city_index"`
	Assets           float64         `json:"assets"`
	Liabilities      float64         `json:"liabilities"`
	Loans            int             `json:"loans"`
	EMI              float64         `json:"emi"`
	Responsibilities int             `json:"responsibilities"`
	Savings          float64         `json:"savings"`
	CreditScore      int             `json:"credit_score"`
	Investments      float64         `json:"investments"`
	MonthlyExpenses  float64         `json:"monthly_expenses"`
	RiskTolerance    float64         `json:"risk_tolerance"`
	HighRiskPercent  int             `json:"high_risk_percent"`
	Confidence       int             `json:"confidence"`
	Budget           bool            `json:"budget"`
	Retirement       bool            `json:"retirement"`
	Automate         bool            `json:"automate"`
	Defaulted        bool            `json:"defaulted"`
	Advisor          bool            `json:"advisor"`
	ReviewGoals      bool            `json:"review_goals"`
	Insurance        Insurance       `json:"insurance"`
	ExpenseTracking  ExpenseTracking `json:"expense_tracking"`
}

// RawProfile is an unvalidated submission keyed by field id, as decoded from
// a form post. Values may be numbers, numeric strings or booleans.
type RawProfile map[string]any
