package analyzer

import (
	"fmt"

	"github.com/Dan9191/finance-health/internal/models"
)

// Rule emits a message when its predicate holds
type Rule struct {
	Name    string
	When    func(p models.FinanceProfile, r models.RatioSet) bool
	Message func(p models.FinanceProfile, r models.RatioSet) string
}

func static(msg string) func(models.FinanceProfile, models.RatioSet) string {
	return func(models.FinanceProfile, models.RatioSet) string { return msg }
}

// RecommendationRules are evaluated in priority order
var RecommendationRules = []Rule{
	{
		Name: "emergency_fund",
		When: func(_ models.FinanceProfile, r models.RatioSet) bool { return r.EmergencyFundMonths < 6 },
		Message: func(_ models.FinanceProfile, r models.RatioSet) string {
			return fmt.Sprintf("Build emergency fund: You have %.1f months of expenses. Aim for 6-12 months.", r.EmergencyFundMonths)
		},
	},
	{
		Name: "debt",
		When: func(_ models.FinanceProfile, r models.RatioSet) bool { return r.DebtToIncome > 40 },
		Message: func(_ models.FinanceProfile, r models.RatioSet) string {
			return fmt.Sprintf("Reduce debt burden: %.1f%% debt-to-income is high. Target below 30%%.", r.DebtToIncome)
		},
	},
	{
		Name: "savings",
		When: func(_ models.FinanceProfile, r models.RatioSet) bool { return r.SavingsRate < 20 },
		Message: func(_ models.FinanceProfile, r models.RatioSet) string {
			return fmt.Sprintf("Increase savings: %.1f%% savings rate is low. Aim for 20%%+ of income.", r.SavingsRate)
		},
	},
	{
		Name:    "insurance",
		When:    func(p models.FinanceProfile, _ models.RatioSet) bool { return p.Insurance == models.InsuranceNone },
		Message: static("Get insurance: Health and term life insurance are essential for financial security."),
	},
	{
		Name:    "credit",
		When:    func(p models.FinanceProfile, _ models.RatioSet) bool { return p.CreditScore < 650 },
		Message: static("Improve credit score: Pay bills on time, reduce credit utilization, check credit report."),
	},
	{
		Name:    "budget",
		When:    func(p models.FinanceProfile, _ models.RatioSet) bool { return !p.Budget },
		Message: static("Create a budget: Track income and expenses to improve financial control."),
	},
}

// WarningRules flag conditions that need urgent attention
var WarningRules = []Rule{
	{
		Name:    "critical_debt",
		When:    func(_ models.FinanceProfile, r models.RatioSet) bool { return r.DebtToIncome > 50 },
		Message: static("CRITICAL: Debt-to-income ratio exceeds 50% - immediate debt restructuring needed"),
	},
	{
		Name:    "no_emergency_fund",
		When:    func(_ models.FinanceProfile, r models.RatioSet) bool { return r.EmergencyFundMonths < 1 },
		Message: static("HIGH RISK: No emergency fund - vulnerable to financial shocks"),
	},
	{
		Name:    "poor_credit",
		When:    func(p models.FinanceProfile, _ models.RatioSet) bool { return p.CreditScore < 500 },
		Message: static("URGENT: Very poor credit score - will severely limit financial options"),
	},
	{
		Name:    "expenses",
		When:    func(_ models.FinanceProfile, r models.RatioSet) bool { return r.ExpenseRatio > 90 },
		Message: static("CRITICAL: Expenses consume 90%+ of income - unsustainable lifestyle"),
	},
	{
		Name:    "defaults_with_loans",
		When:    func(p models.FinanceProfile, _ models.RatioSet) bool { return p.Defaulted && p.Loans > 0 },
		Message: static("HIGH RISK: Previous defaults with current loans - monitor closely"),
	},
}

// maxActions caps the thirty-day action plan
const maxActions = 6

func always(models.FinanceProfile, models.RatioSet) bool { return true }

// ActionRules build the thirty-day action plan
var ActionRules = []Rule{
	{
		Name:    "emergency_account",
		When:    func(_ models.FinanceProfile, r models.RatioSet) bool { return r.EmergencyFundMonths < 3 },
		Message: static("Open a high-yield savings account and set up automatic transfer for emergency fund"),
	},
	{
		Name:    "budget_app",
		When:    func(p models.FinanceProfile, _ models.RatioSet) bool { return !p.Budget },
		Message: static("Download a budgeting app and track all expenses for 30 days"),
	},
	{
		Name:    "insurance_quotes",
		When:    func(p models.FinanceProfile, _ models.RatioSet) bool { return p.Insurance == models.InsuranceNone },
		Message: static("Research and compare health insurance plans, get quotes for term life insurance"),
	},
	{
		Name:    "credit_report",
		When:    func(p models.FinanceProfile, _ models.RatioSet) bool { return p.CreditScore < 650 },
		Message: static("Obtain free credit report, dispute any errors, and set up payment reminders"),
	},
	{
		Name:    "automate",
		When:    func(p models.FinanceProfile, _ models.RatioSet) bool { return !p.Automate },
		Message: static("Set up automatic bill payments and SIP investments"),
	},
	{
		Name:    "debt_plan",
		When:    func(_ models.FinanceProfile, r models.RatioSet) bool { return r.DebtToIncome > 40 },
		Message: static("List all debts, consider debt consolidation options, create repayment plan"),
	},
	{
		Name:    "portfolio_review",
		When:    always,
		Message: static("Review and optimize current investment portfolio based on risk profile"),
	},
	{
		Name:    "goal_review",
		When:    always,
		Message: static("Schedule financial goal review and create/update investment strategy"),
	},
}

// Evaluate runs rules in order and collects the messages of those that fire.
// The result is never nil.
func Evaluate(rules []Rule, p models.FinanceProfile, r models.RatioSet) []string {
	out := []string{}
	for _, rule := range rules {
		if rule.When(p, r) {
			out = append(out, rule.Message(p, r))
		}
	}
	return out
}

// Recommendations returns the advice for p in priority order
func Recommendations(p models.FinanceProfile, r models.RatioSet) []string {
	return Evaluate(RecommendationRules, p, r)
}

// Warnings returns the urgent-attention list for p
func Warnings(p models.FinanceProfile, r models.RatioSet) []string {
	return Evaluate(WarningRules, p, r)
}

// ActionPlan returns up to six concrete steps for the next thirty days
func ActionPlan(p models.FinanceProfile, r models.RatioSet) []string {
	actions := Evaluate(ActionRules, p, r)
	if len(actions) > maxActions {
		actions = actions[:maxActions]
	}
	return actions
}
