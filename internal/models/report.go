package models

import "fmt"

// RatioSet holds the key financial ratios of a profile.
// Rates are percentages of annual salary; values are not clamped.
type RatioSet struct {
	DebtToIncome        float64 `json:"debt_to_income"`
	SavingsRate         float64 `json:"savings_rate"`
	EmergencyFundMonths float64 `json:"emergency_fund_months"`
	InvestmentRate      float64 `json:"investment_rate"`
	NetWorth            float64 `json:"net_worth"`
	AssetUtilization    float64 `json:"asset_utilization"`
	ExpenseRatio        float64 `json:"expense_ratio"`
}

// Tier is an investor profile band, ordered from lowest to highest capacity
type Tier int

const (
	TierCapitalPreservation Tier = iota
	TierConservative
	TierBalanced
	TierGrowth
	TierAggressive
)

type tierDetails struct {
	label       string
	capacity    string
	description string
	allocation  string
	horizon     string
}

var tiers = [...]tierDetails{
	TierCapitalPreservation: {
		label:       "Capital Preservation",
		capacity:    "Very Low",
		description: "Priority should be financial stability and emergency planning",
		allocation:  "Bonds: 40-50%, Cash/FD: 40-50%, Equity: 0-10%",
		horizon:     "1-3 years",
	},
	TierConservative: {
		label:       "Conservative Investor",
		capacity:    "Low",
		description: "Limited risk capacity, focus on stability",
		allocation:  "Equity: 20-30%, Bonds: 50-60%, Cash: 20-30%",
		horizon:     "3-7 years",
	},
	TierBalanced: {
		label:       "Balanced Investor",
		capacity:    "Moderate",
		description: "Stable finances with moderate risk appetite",
		allocation:  "Equity: 40-50%, Bonds: 30-40%, Alternatives: 10-20%",
		horizon:     "7-10 years",
	},
	TierGrowth: {
		label:       "Growth Investor",
		capacity:    "High",
		description: "Good financial position suitable for growth-oriented investments",
		allocation:  "Equity: 60-70%, Bonds: 20-25%, Alternatives: 10-15%",
		horizon:     "10-15 years",
	},
	TierAggressive: {
		label:       "Aggressive Investor",
		capacity:    "Very High",
		description: "Strong financial foundation with high risk-taking ability",
		allocation:  "Equity: 70-80%, Bonds: 10-15%, Alternatives: 10-15%",
		horizon:     "15+ years",
	},
}

func (t Tier) details() tierDetails {
	if t < 0 || int(t) >= len(tiers) {
		return tierDetails{label: fmt.Sprintf("Tier(%d)", int(t))}
	}
	return tiers[t]
}

func (t Tier) String() string      { return t.details().label }
func (t Tier) Label() string       { return t.details().label }
func (t Tier) Capacity() string    { return t.details().capacity }
func (t Tier) Description() string { return t.details().description }
func (t Tier) Allocation() string  { return t.details().allocation }
func (t Tier) Horizon() string     { return t.details().horizon }

// RiskProfile is the classified outcome of a risk score
type RiskProfile struct {
	Score             float64 `json:"score"`
	Tier              Tier    `json:"-"`
	ProfileLabel      string  `json:"profile"`
	CapacityLabel     string  `json:"capacity"`
	Description       string  `json:"description"`
	InvestmentHorizon string  `json:"investment_horizon"`
	Allocation        string  `json:"suggested_allocation"`
}

// ScoreFactor is one contribution to the risk score on a 0-100 scale
type ScoreFactor struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Snapshot holds headline amounts formatted for display
type Snapshot struct {
	AnnualIncome     string `json:"annual_income"`
	TotalAssets      string `json:"total_assets"`
	TotalLiabilities string `json:"total_liabilities"`
	NetWorth         string `json:"net_worth"`
	LiquidSavings    string `json:"liquid_savings"`
	Investments      string `json:"investments"`
}

// BehaviorAnalysis restates the profile's money habits for display
type BehaviorAnalysis struct {
	MonthlyBudgeting     string `json:"monthly_budgeting"`
	ExpenseTracking      string `json:"expense_tracking"`
	InsuranceCoverage    string `json:"insurance_coverage"`
	RetirementPlanning   string `json:"retirement_planning"`
	InvestmentAutomation string `json:"investment_automation"`
	CreditScore          string `json:"credit_score"`
	FinancialConfidence  string `json:"financial_confidence"`
	GoalReviewHabit      string `json:"goal_review_habit"`
	FinancialAdvisor     string `json:"financial_advisor"`
}

// Report is the complete analysis of one profile
type Report struct {
	Score           float64          `json:"score"`
	ProfileLabel    string           `json:"profile_label"`
	CapacityLabel   string           `json:"capacity_label"`
	RiskProfile     RiskProfile      `json:"risk_assessment"`
	Breakdown       []ScoreFactor    `json:"score_breakdown"`
	Ratios          RatioSet         `json:"ratios"`
	Snapshot        Snapshot         `json:"financial_snapshot"`
	Behavior        BehaviorAnalysis `json:"financial_behavior_analysis"`
	Recommendations []string         `json:"recommendations"`
	Warnings        []string         `json:"warnings"`
	ActionPlan      []string         `json:"action_plan"`
}
