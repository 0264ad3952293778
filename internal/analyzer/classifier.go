package analyzer

import "github.com/Dan9191/finance-health/internal/models"

// tierBands maps the lower bound of each band to its tier, highest first
var tierBands = []struct {
	min  float64
	tier models.Tier
}{
	{80, models.TierAggressive},
	{65, models.TierGrowth},
	{45, models.TierBalanced},
	{25, models.TierConservative},
}

// ClassifyTier returns the investor tier for a risk score. Each band
// includes its lower bound.
func ClassifyTier(score float64) models.Tier {
	for _, b := range tierBands {
		if score >= b.min {
			return b.tier
		}
	}
	return models.TierCapitalPreservation
}

// Classify builds the risk profile for a score
func Classify(score float64) models.RiskProfile {
	tier := ClassifyTier(score)
	return models.RiskProfile{
		Score:             score,
		Tier:              tier,
		ProfileLabel:      tier.Label(),
		CapacityLabel:     tier.Capacity(),
		Description:       tier.Description(),
		InvestmentHorizon: tier.Horizon(),
		Allocation:        tier.Allocation(),
	}
}
