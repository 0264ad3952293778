package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Dan9191/finance-health/internal/models"
)

func TestClassify_Bands(t *testing.T) {
	tests := []struct {
		score    float64
		profile  string
		capacity string
	}{
		{100, "Aggressive Investor", "Very High"},
		{80, "Aggressive Investor", "Very High"},
		{79.999, "Growth Investor", "High"},
		{65, "Growth Investor", "High"},
		{64.9, "Balanced Investor", "Moderate"},
		{45, "Balanced Investor", "Moderate"},
		{44.99, "Conservative Investor", "Low"},
		{25, "Conservative Investor", "Low"},
		{24.99, "Capital Preservation", "Very Low"},
		{0, "Capital Preservation", "Very Low"},
	}
	for _, tt := range tests {
		rp := Classify(tt.score)
		assert.Equal(t, tt.profile, rp.ProfileLabel, "score %v", tt.score)
		assert.Equal(t, tt.capacity, rp.CapacityLabel, "score %v", tt.score)
		assert.Equal(t, tt.score, rp.Score)
	}
}

func TestClassifyTier_Ordered(t *testing.T) {
	prev := ClassifyTier(0)
	for s := 0.0; s <= 100; s += 0.5 {
		tier := ClassifyTier(s)
		assert.GreaterOrEqual(t, int(tier), int(prev), "tier dropped at score %v", s)
		prev = tier
	}
	assert.Equal(t, models.TierAggressive, prev)
}

func TestClassify_Details(t *testing.T) {
	rp := Classify(50)
	assert.Equal(t, models.TierBalanced, rp.Tier)
	assert.Equal(t, "7-10 years", rp.InvestmentHorizon)
	assert.Equal(t, "Equity: 40-50%, Bonds: 30-40%, Alternatives: 10-20%", rp.Allocation)
	assert.NotEmpty(t, rp.Description)
}
