package analyzer

import "github.com/Dan9191/finance-health/internal/models"

// healthyProfile passes every recommendation check
func healthyProfile() models.FinanceProfile {
	return models.FinanceProfile{
		Age:              30,
		Salary:           1200000,
		CityIndex:        models.CityTier2,
		Assets:           2000000,
		Liabilities:      500000,
		Loans:            1,
		EMI:              100000,
		Responsibilities: 2,
		Savings:          300000,
		CreditScore:      720,
		Investments:      400000,
		MonthlyExpenses:  40000,
		RiskTolerance:    0.5,
		HighRiskPercent:  30,
		Confidence:       8,
		Budget:           true,
		Retirement:       true,
		Automate:         false,
		Defaulted:        false,
		Advisor:          false,
		ReviewGoals:      true,
		Insurance:        models.InsuranceHealth,
		ExpenseTracking:  models.TrackingMonthly,
	}
}

// healthyRaw is healthyProfile as the form posts it
func healthyRaw() models.RawProfile {
	return models.RawProfile{
		"age":               float64(30),
		"salary":            float64(1200000),
		"city_index":        1.0,
		"assets":            float64(2000000),
		"liabilities":       float64(500000),
		"loans":             float64(1),
		"emi":               float64(100000),
		"responsibilities":  float64(2),
		"savings":           float64(300000),
		"credit_score":      float64(720),
		"investments":       float64(400000),
		"monthly_expenses":  float64(40000),
		"risk_tolerance":    0.5,
		"budget":            true,
		"insurance":         "Health",
		"expense_tracking":  "Monthly",
		"retirement":        true,
		"high_risk_percent": float64(30),
		"automate":          false,
		"defaulted":         false,
		"advisor":           false,
		"confidence":        float64(8),
		"review_goals":      true,
	}
}
