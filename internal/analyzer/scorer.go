package analyzer

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/Dan9191/finance-health/internal/models"
)

// Factor weights. The eight profile factors sum to 1.0 and risk tolerance is
// added on top, so the weights total 1.1; the final score is clamped.
const (
	weightAge                = 0.15
	weightIncomeStability    = 0.20
	weightNetWorth           = 0.15
	weightDebtManagement     = 0.20
	weightLiquidity          = 0.10
	weightCreditHealth       = 0.10
	weightInvestmentMaturity = 0.05
	weightBehavior           = 0.05
	weightRiskTolerance      = 0.10
)

const (
	// defaultedCreditHealth replaces the credit score tier after a default
	defaultedCreditHealth = 0.3
	// behaviorHabits is the number of habits counted by the behavioral score
	behaviorHabits = 7
	// confidentLevel is the self-rated confidence counted as a good habit
	confidentLevel = 7
)

// Factors are the normalized score inputs, each in [0, 1]
type Factors struct {
	Age                float64
	IncomeStability    float64
	NetWorthRatio      float64
	DebtBurden         float64
	Liquidity          float64
	CreditHealth       float64
	InvestmentMaturity float64
	Behavior           float64
}

// ComputeFactors normalizes p into the eight score factors
func ComputeFactors(p models.FinanceProfile) Factors {
	return Factors{
		Age:                clamp01(ageFactor(p.Age)),
		IncomeStability:    clamp01(incomeStability(p.Salary, p.CityIndex)),
		NetWorthRatio:      clamp01((p.Assets - p.Liabilities) / p.Salary / 5),
		DebtBurden:         clamp01(annualDebtService(p) / p.Salary),
		Liquidity:          clamp01(p.Savings / p.MonthlyExpenses / 6),
		CreditHealth:       clamp01(creditHealth(p.CreditScore, p.Defaulted)),
		InvestmentMaturity: clamp01(investmentMaturity(p.Investments, p.Assets)),
		Behavior:           clamp01(behavioralScore(p)),
	}
}

// terms returns the weighted terms of the score, in breakdown order, and
// their weights
func (f Factors) terms(riskTolerance float64) (values, weights []float64) {
	values = []float64{
		f.Age,
		f.IncomeStability,
		f.NetWorthRatio,
		1 - f.DebtBurden,
		f.Liquidity,
		f.CreditHealth,
		f.InvestmentMaturity,
		f.Behavior,
		riskTolerance,
	}
	weights = []float64{
		weightAge,
		weightIncomeStability,
		weightNetWorth,
		weightDebtManagement,
		weightLiquidity,
		weightCreditHealth,
		weightInvestmentMaturity,
		weightBehavior,
		weightRiskTolerance,
	}
	return values, weights
}

var breakdownNames = []string{
	"Age Factor",
	"Income Stability",
	"Net Worth Ratio",
	"Debt Management",
	"Liquidity Position",
	"Credit Health",
	"Investment Maturity",
	"Financial Behavior",
	"Risk Tolerance",
}

// Score returns the 0-100 risk score of p
func Score(p models.FinanceProfile) float64 {
	values, weights := ComputeFactors(p).terms(p.RiskTolerance)
	return clamp(floats.Dot(values, weights)*100, 0, 100)
}

// Breakdown lists each unweighted score input on a 0-100 scale
func Breakdown(p models.FinanceProfile) []models.ScoreFactor {
	values, _ := ComputeFactors(p).terms(p.RiskTolerance)
	out := make([]models.ScoreFactor, len(values))
	for i, v := range values {
		out[i] = models.ScoreFactor{Name: breakdownNames[i], Value: v * 100}
	}
	return out
}

// ageFactor steps down with age; each bracket includes its lower bound
func ageFactor(age int) float64 {
	switch {
	case age < 25:
		return 0.9
	case age < 35:
		return 0.8
	case age < 45:
		return 0.6
	case age < 55:
		return 0.4
	default:
		return 0.2
	}
}

func incomeStability(salary float64, city models.CityIndex) float64 {
	if city <= 0 {
		return 0
	}
	adjusted := salary / (float64(city) * 100000)
	return math.Min(1, adjusted/10)
}

func creditHealth(creditScore int, defaulted bool) float64 {
	if defaulted {
		return defaultedCreditHealth
	}
	switch {
	case creditScore >= 750:
		return 1.0
	case creditScore >= 650:
		return 0.7
	case creditScore >= 550:
		return 0.4
	default:
		return 0.1
	}
}

func investmentMaturity(investments, assets float64) float64 {
	if assets <= 0 {
		return 0
	}
	return math.Min(1, investments/assets)
}

func behavioralScore(p models.FinanceProfile) float64 {
	habits := []bool{
		p.Budget,
		p.Retirement,
		p.Automate,
		!p.Defaulted,
		p.Confidence >= confidentLevel,
		p.ReviewGoals,
		p.Insurance != models.InsuranceNone,
	}
	count := 0
	for _, h := range habits {
		if h {
			count++
		}
	}
	return float64(count) / behaviorHabits
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clamp01(v float64) float64 { return clamp(v, 0, 1) }
