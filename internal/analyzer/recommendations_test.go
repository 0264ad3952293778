package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/finance-health/internal/models"
)

func recommend(p models.FinanceProfile) []string {
	return Recommendations(p, CalculateRatios(p))
}

func TestRecommendations_HealthyIsEmpty(t *testing.T) {
	recs := recommend(healthyProfile())
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestRecommendations_KeepRuleOrder(t *testing.T) {
	p := healthyProfile()
	p.Savings = 100000
	p.CreditScore = 600

	recs := recommend(p)
	require.Len(t, recs, 3)
	assert.Equal(t, "Build emergency fund: You have 2.5 months of expenses. Aim for 6-12 months.", recs[0])
	assert.Equal(t, "Increase savings: 8.3% savings rate is low. Aim for 20%+ of income.", recs[1])
	assert.Contains(t, recs[2], "Improve credit score")
}

func TestRecommendations_AllRules(t *testing.T) {
	p := healthyProfile()
	p.Savings = 0
	p.EMI = 600000
	p.Insurance = models.InsuranceNone
	p.CreditScore = 500
	p.Budget = false

	recs := recommend(p)
	require.Len(t, recs, 6)
	assert.Contains(t, recs[0], "0.0 months")
	// (600,000 + 50,000) / 1,200,000
	assert.Equal(t, "Reduce debt burden: 54.2% debt-to-income is high. Target below 30%.", recs[1])
	assert.Contains(t, recs[2], "0.0% savings rate")
	assert.Contains(t, recs[3], "Get insurance")
	assert.Contains(t, recs[4], "Improve credit score")
	assert.Contains(t, recs[5], "Create a budget")
}

func TestRecommendations_Thresholds(t *testing.T) {
	p := healthyProfile()
	// exactly six months and exactly 20% are healthy
	p.Savings = 240000
	assert.Empty(t, recommend(p))

	p.Savings = 239999
	recs := recommend(p)
	require.Len(t, recs, 2)
	assert.Contains(t, recs[0], "Build emergency fund")
	assert.Contains(t, recs[1], "Increase savings")

	// 40% debt-to-income is not flagged, above is
	p = healthyProfile()
	p.EMI = 430000
	assert.Empty(t, recommend(p))
	p.EMI = 430001
	assert.Len(t, recommend(p), 1)
}

func TestWarnings(t *testing.T) {
	assert.Empty(t, Warnings(healthyProfile(), CalculateRatios(healthyProfile())))

	p := healthyProfile()
	p.EMI = 800000
	p.Savings = 20000
	p.CreditScore = 450
	p.MonthlyExpenses = 95000
	p.Defaulted = true

	w := Warnings(p, CalculateRatios(p))
	require.Len(t, w, 5)
	assert.Contains(t, w[0], "Debt-to-income ratio exceeds 50%")
	assert.Contains(t, w[1], "No emergency fund")
	assert.Contains(t, w[2], "Very poor credit score")
	assert.Contains(t, w[3], "Expenses consume 90%+")
	assert.Contains(t, w[4], "Previous defaults")

	p.Loans = 0
	assert.Len(t, Warnings(p, CalculateRatios(p)), 4)
}

func TestActionPlan(t *testing.T) {
	plan := ActionPlan(healthyProfile(), CalculateRatios(healthyProfile()))
	assert.Equal(t, []string{
		"Set up automatic bill payments and SIP investments",
		"Review and optimize current investment portfolio based on risk profile",
		"Schedule financial goal review and create/update investment strategy",
	}, plan)
}

func TestActionPlan_Capped(t *testing.T) {
	p := healthyProfile()
	p.Savings = 0
	p.Budget = false
	p.Insurance = models.InsuranceNone
	p.CreditScore = 500
	p.EMI = 600000

	plan := ActionPlan(p, CalculateRatios(p))
	require.Len(t, plan, 6)
	assert.Contains(t, plan[0], "high-yield savings account")
	assert.Contains(t, plan[5], "debt consolidation")
}

func TestEvaluate_CustomRules(t *testing.T) {
	rules := []Rule{
		{Name: "never", When: func(models.FinanceProfile, models.RatioSet) bool { return false }, Message: static("no")},
		{Name: "always", When: always, Message: static("yes")},
	}
	assert.Equal(t, []string{"yes"}, Evaluate(rules, healthyProfile(), models.RatioSet{}))
}
