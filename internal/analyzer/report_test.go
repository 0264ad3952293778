package analyzer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/finance-health/internal/models"
)

func TestGenerateReport_Healthy(t *testing.T) {
	report, err := GenerateReport(healthyRaw())
	require.NoError(t, err)

	assert.InDelta(t, 80.5357, report.Score, 1e-4)
	assert.Equal(t, "Aggressive Investor", report.ProfileLabel)
	assert.Equal(t, "Very High", report.CapacityLabel)
	assert.Equal(t, report.Score, report.RiskProfile.Score)
	assert.Equal(t, "15+ years", report.RiskProfile.InvestmentHorizon)

	assert.InDelta(t, 7.5, report.Ratios.EmergencyFundMonths, 1e-9)
	assert.InDelta(t, 12.5, report.Ratios.DebtToIncome, 1e-9)
	assert.InDelta(t, 25.0, report.Ratios.SavingsRate, 1e-9)
	assert.Equal(t, 1500000.0, report.Ratios.NetWorth)

	assert.Empty(t, report.Recommendations)
	assert.Empty(t, report.Warnings)
	assert.Len(t, report.ActionPlan, 3)
	assert.Len(t, report.Breakdown, 9)

	assert.Equal(t, models.Snapshot{
		AnnualIncome:     "₹12.00 L",
		TotalAssets:      "₹20.00 L",
		TotalLiabilities: "₹5.00 L",
		NetWorth:         "₹15.00 L",
		LiquidSavings:    "₹3.00 L",
		Investments:      "₹4.00 L",
	}, report.Snapshot)

	assert.Equal(t, models.BehaviorAnalysis{
		MonthlyBudgeting:     "Yes",
		ExpenseTracking:      "Monthly",
		InsuranceCoverage:    "Health",
		RetirementPlanning:   "Yes",
		InvestmentAutomation: "No",
		CreditScore:          "720/850",
		FinancialConfidence:  "8/10",
		GoalReviewHabit:      "Yes",
		FinancialAdvisor:     "No",
	}, report.Behavior)
}

func TestAnalyze_BehaviorFollowsHabits(t *testing.T) {
	p := healthyProfile()
	p.Budget = false
	p.Automate = true
	p.Advisor = true
	p.Insurance = models.InsuranceBoth
	p.ExpenseTracking = models.TrackingNever
	p.CreditScore = 455
	p.Confidence = 3

	report, err := Analyze(p)
	require.NoError(t, err)

	b := report.Behavior
	assert.Equal(t, "No", b.MonthlyBudgeting)
	assert.Equal(t, "Yes", b.InvestmentAutomation)
	assert.Equal(t, "Yes", b.FinancialAdvisor)
	assert.Equal(t, "Both", b.InsuranceCoverage)
	assert.Equal(t, "Never", b.ExpenseTracking)
	assert.Equal(t, "455/850", b.CreditScore)
	assert.Equal(t, "3/10", b.FinancialConfidence)
}

func TestGenerateReport_ZeroSalary(t *testing.T) {
	raw := healthyRaw()
	raw["salary"] = float64(0)

	report, err := GenerateReport(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidProfile)
	assert.ErrorIs(t, err, models.ErrDivisionHazard)
	assert.Equal(t, models.Report{}, report)
}

func TestAnalyze_RejectsUnguardedProfile(t *testing.T) {
	p := healthyProfile()
	p.Salary = 0

	report, err := Analyze(p)
	assert.ErrorIs(t, err, models.ErrDivisionHazard)
	assert.Equal(t, models.Report{}, report)
}

func TestAnalyze_RejectsNonFinite(t *testing.T) {
	tests := []struct {
		name  string
		field string
		set   func(p *models.FinanceProfile)
	}{
		{"nan risk tolerance", "risk_tolerance", func(p *models.FinanceProfile) { p.RiskTolerance = math.NaN() }},
		{"infinite assets", "assets", func(p *models.FinanceProfile) { p.Assets = math.Inf(1) }},
		{"negative infinite savings", "savings", func(p *models.FinanceProfile) { p.Savings = math.Inf(-1) }},
		{"nan salary", "salary", func(p *models.FinanceProfile) { p.Salary = math.NaN() }},
		{"infinite investments", "investments", func(p *models.FinanceProfile) { p.Investments = math.Inf(1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := healthyProfile()
			tt.set(&p)

			report, err := Analyze(p)
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrInvalidProfile)
			assert.ErrorIs(t, err, models.ErrNotNumeric)
			assert.Equal(t, models.Report{}, report)

			var perr *models.InvalidProfileError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.field, perr.Field)
		})
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	p := healthyProfile()
	p.Savings = 50000
	p.Insurance = models.InsuranceNone

	first, err := Analyze(p)
	require.NoError(t, err)
	second, err := Analyze(p)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnalyze_UnusedFieldsDoNotMoveScore(t *testing.T) {
	p := healthyProfile()
	base, err := Analyze(p)
	require.NoError(t, err)

	p.HighRiskPercent = 95
	p.ExpenseTracking = models.TrackingNever
	p.Advisor = true
	p.Responsibilities = 6
	changed, err := Analyze(p)
	require.NoError(t, err)

	assert.Equal(t, base.Score, changed.Score)
	assert.Equal(t, base.Recommendations, changed.Recommendations)
}
