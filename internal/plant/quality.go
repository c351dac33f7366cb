package plant

import (
	"math"

	"github.com/osse101/CropProfit_Go/internal/domain"
)

// baseGoldChance is the game's gold-quality roll before iridium is taken out.
func baseGoldChance(level int, fertilizer domain.FertilizerQuality, limit float64) float64 {
	lvl := float64(level)
	fert := float64(fertilizer.QualityLevel())
	chance := 0.2*(lvl/10.0) + 0.01 + 0.2*fert*((lvl+2)/12.0)
	return math.Min(limit, chance)
}

// ComputeQualityChances evaluates the dependent quality chain for a crop
// grown at farming level with the given fertilizer. Iridium and gold are
// rolled first; silver and base absorb the remainder.
func ComputeQualityChances(level int, fertilizer domain.FertilizerQuality) domain.QualityChances {
	uncapped := baseGoldChance(level, fertilizer, math.Inf(1))
	deluxe := fertilizer.AtLeastDeluxe()

	var q domain.QualityChances
	if deluxe {
		q.Iridium = clamp01(uncapped / 2)
	}
	q.Gold = baseGoldChance(level, fertilizer, 1.0) * (1 - q.Iridium)
	if deluxe {
		q.Silver = 1 - (q.Iridium + q.Gold)
	} else {
		q.Silver = (1 - q.Iridium) * (1 - uncapped) * math.Min(0.75, 2*uncapped)
	}
	q.Silver = clamp01(q.Silver)
	if !deluxe {
		q.Base = math.Max(0, 1-(q.Iridium+q.Gold+q.Silver))
	}
	return q
}

// AverageMultiplier weights the settings' price multipliers by chance.
func AverageMultiplier(q domain.QualityChances, multipliers [domain.QualityTierCount]float64) float64 {
	chances := q.Slice()
	total := 0.0
	for i := range chances {
		total += chances[i] * multipliers[i]
	}
	return total
}

// AverageMultiplierAfterModifiers applies the tiller bonus and rounds to
// two decimals.
func AverageMultiplierAfterModifiers(q domain.QualityChances, s domain.Settings) float64 {
	avg := AverageMultiplier(q, s.PriceMultipliers)
	if s.HasProfession(domain.ProfessionTiller) {
		avg *= domain.TillerBonus
	}
	return math.Round(avg*100) / 100
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
