// Package analyzer scores a personal-finance profile and derives its ratios,
// investor tier and advice. Every function is pure; a report depends only on
// the profile it is built from.
package analyzer

import (
	"fmt"

	"github.com/Dan9191/finance-health/internal/models"
	"github.com/Dan9191/finance-health/internal/utils"
)

// GenerateReport validates raw and analyzes the resulting profile
func GenerateReport(raw models.RawProfile) (models.Report, error) {
	p, err := Validate(raw)
	if err != nil {
		return models.Report{}, err
	}
	return Analyze(p)
}

// Analyze builds the complete report for a typed profile. It fails only when
// the profile carries a non-finite amount, would divide by zero or names an
// unknown city index.
func Analyze(p models.FinanceProfile) (models.Report, error) {
	if err := CheckProfile(p); err != nil {
		return models.Report{}, err
	}

	ratios := CalculateRatios(p)
	risk := Classify(Score(p))

	return models.Report{
		Score:           risk.Score,
		ProfileLabel:    risk.ProfileLabel,
		CapacityLabel:   risk.CapacityLabel,
		RiskProfile:     risk,
		Breakdown:       Breakdown(p),
		Ratios:          ratios,
		Snapshot:        snapshot(p, ratios),
		Behavior:        behavior(p),
		Recommendations: Recommendations(p, ratios),
		Warnings:        Warnings(p, ratios),
		ActionPlan:      ActionPlan(p, ratios),
	}, nil
}

func snapshot(p models.FinanceProfile, r models.RatioSet) models.Snapshot {
	return models.Snapshot{
		AnnualIncome:     utils.FormatCurrency(p.Salary),
		TotalAssets:      utils.FormatCurrency(p.Assets),
		TotalLiabilities: utils.FormatCurrency(p.Liabilities),
		NetWorth:         utils.FormatCurrency(r.NetWorth),
		LiquidSavings:    utils.FormatCurrency(p.Savings),
		Investments:      utils.FormatCurrency(p.Investments),
	}
}

func behavior(p models.FinanceProfile) models.BehaviorAnalysis {
	return models.BehaviorAnalysis{
		MonthlyBudgeting:     yesNo(p.Budget),
		ExpenseTracking:      p.ExpenseTracking.String(),
		InsuranceCoverage:    p.Insurance.String(),
		RetirementPlanning:   yesNo(p.Retirement),
		InvestmentAutomation: yesNo(p.Automate),
		CreditScore:          fmt.Sprintf("%d/850", p.CreditScore),
		FinancialConfidence:  fmt.Sprintf("%d/10", p.Confidence),
		GoalReviewHabit:      yesNo(p.ReviewGoals),
		FinancialAdvisor:     yesNo(p.Advisor),
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
