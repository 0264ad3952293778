package analyzer

import "github.com/Dan9191/finance-health/internal/models"

// liabilityServiceRate is the share of outstanding liabilities assumed to be
// serviced each year
const liabilityServiceRate = 0.1

// annualDebtService is EMI plus the assumed yearly payment on liabilities
func annualDebtService(p models.FinanceProfile) float64 {
	return p.EMI + p.Liabilities*liabilityServiceRate
}

// CalculateRatios derives the key ratios of p. Nothing is clamped; a
// debt-to-income above 100 is passed through as is.
func CalculateRatios(p models.FinanceProfile) models.RatioSet {
	r := models.RatioSet{
		DebtToIncome:        annualDebtService(p) / p.Salary * 100,
		SavingsRate:         p.Savings / p.Salary * 100,
		EmergencyFundMonths: p.Savings / p.MonthlyExpenses,
		InvestmentRate:      p.Investments / p.Salary * 100,
		NetWorth:            p.Assets - p.Liabilities,
		ExpenseRatio:        (p.MonthlyExpenses * 12) / p.Salary * 100,
	}
	if p.Assets > 0 {
		r.AssetUtilization = p.Investments / p.Assets * 100
	}
	return r
}
