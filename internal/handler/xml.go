package handler

import (
	"net/http"
	"strconv"

	"github.com/beevik/etree"

	"github.com/Dan9191/finance-health/internal/models"
)

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// buildReportXML renders a report as an XML document
func buildReportXML(report *models.Report, generatedOn string) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("report")
	root.CreateAttr("generated_on", generatedOn)

	root.CreateElement("score").SetText(formatNumber(report.Score))
	root.CreateElement("profile").SetText(report.ProfileLabel)
	root.CreateElement("capacity").SetText(report.CapacityLabel)

	risk := root.CreateElement("risk_assessment")
	risk.CreateElement("description").SetText(report.RiskProfile.Description)
	risk.CreateElement("investment_horizon").SetText(report.RiskProfile.InvestmentHorizon)
	risk.CreateElement("suggested_allocation").SetText(report.RiskProfile.Allocation)

	breakdown := root.CreateElement("score_breakdown")
	for _, f := range report.Breakdown {
		el := breakdown.CreateElement("factor")
		el.CreateAttr("name", f.Name)
		el.SetText(formatNumber(f.Value))
	}

	ratios := root.CreateElement("ratios")
	for _, kv := range []struct {
		name  string
		value float64
	}{
		{"debt_to_income", report.Ratios.DebtToIncome},
		{"savings_rate", report.Ratios.SavingsRate},
		{"emergency_fund_months", report.Ratios.EmergencyFundMonths},
		{"investment_rate", report.Ratios.InvestmentRate},
		{"net_worth", report.Ratios.NetWorth},
		{"asset_utilization", report.Ratios.AssetUtilization},
		{"expense_ratio", report.Ratios.ExpenseRatio},
	} {
		ratios.CreateElement(kv.name).SetText(formatNumber(kv.value))
	}

	snap := root.CreateElement("financial_snapshot")
	snap.CreateElement("annual_income").SetText(report.Snapshot.AnnualIncome)
	snap.CreateElement("total_assets").SetText(report.Snapshot.TotalAssets)
	snap.CreateElement("total_liabilities").SetText(report.Snapshot.TotalLiabilities)
	snap.CreateElement("net_worth").SetText(report.Snapshot.NetWorth)
	snap.CreateElement("liquid_savings").SetText(report.Snapshot.LiquidSavings)
	snap.CreateElement("investments").SetText(report.Snapshot.Investments)

	habits := root.CreateElement("financial_behavior_analysis")
	for _, kv := range []struct {
		name  string
		value string
	}{
		{"monthly_budgeting", report.Behavior.MonthlyBudgeting},
		{"expense_tracking", report.Behavior.ExpenseTracking},
		{"insurance_coverage", report.Behavior.InsuranceCoverage},
		{"retirement_planning", report.Behavior.RetirementPlanning},
		{"investment_automation", report.Behavior.InvestmentAutomation},
		{"credit_score", report.Behavior.CreditScore},
		{"financial_confidence", report.Behavior.FinancialConfidence},
		{"goal_review_habit", report.Behavior.GoalReviewHabit},
		{"financial_advisor", report.Behavior.FinancialAdvisor},
	} {
		habits.CreateElement(kv.name).SetText(kv.value)
	}

	addList(root, "recommendations", report.Recommendations)
	addList(root, "warnings", report.Warnings)
	addList(root, "action_plan", report.ActionPlan)

	doc.Indent(2)
	return doc
}

func addList(parent *etree.Element, name string, items []string) {
	list := parent.CreateElement(name)
	for _, item := range items {
		list.CreateElement("item").SetText(item)
	}
}

func (h *Handler) writeXML(w http.ResponseWriter, status int, report *models.Report, generatedOn string) {
	body, err := buildReportXML(report, generatedOn).WriteToBytes()
	if err != nil {
		h.log.Errorf("Failed to render XML report: %v", err)
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "An internal server error occurred"})
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.log.Warnf("Failed to write XML response: %v", err)
	}
}
