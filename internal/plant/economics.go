package plant

import (
	"context"
	"fmt"
	"math"

	"github.com/osse101/CropProfit_Go/internal/domain"
	"github.com/osse101/CropProfit_Go/internal/logger"
)

// SeedPricer resolves the cheapest purchase price of a seed item.
type SeedPricer interface {
	CheapestSeedPrice(ctx context.Context, itemID string) (int, error)
}

// PerDay divides value over the growing window. A zero value or an empty
// window yields zero.
func PerDay(value float64, days int) float64 {
	if value == 0 || days <= 0 {
		return 0
	}
	return value / float64(days)
}

// ProfitPerDay is the gross profit spread over the window.
func ProfitPerDay(m Model, s domain.Settings) float64 {
	return PerDay(m.Profit(s), m.AvailableDays(s.Season, s.Day))
}

// FertilizerNeeded is one application per season the plant stays in the
// ground. Greenhouse and single-season plants need only one.
func FertilizerNeeded(m Model, s domain.Settings) int {
	if s.Season == domain.SeasonGreenhouse || m.Base().Seasons.Len() == 1 {
		return 1
	}
	return int(math.Ceil(float64(m.AvailableDays(s.Season, s.Day)) / float64(domain.DaysPerSeason)))
}

// FertilizerCost is zero unless the scenario pays for fertilizer.
func FertilizerCost(m Model, s domain.Settings) int {
	if !s.PayForFertilizer {
		return 0
	}
	return FertilizerNeeded(m, s) * s.Fertilizer.Price()
}

// SeedsNeeded is one seed for a regrowing plant, else one per harvest.
func SeedsNeeded(m Model, s domain.Settings) int {
	if m.Base().RegrowDays > 0 && m.AvailableDays(s.Season, s.Day) > 0 {
		return 1
	}
	return m.Harvests(s)
}

// SeedsCost is zero unless the scenario pays for seeds. A seed with no known
// price is logged and treated as free.
func SeedsCost(ctx context.Context, m Model, s domain.Settings, prices SeedPricer) (int, error) {
	if !s.PayForSeeds {
		return 0, nil
	}
	base := m.Base()
	if base.SeedID == "" || prices == nil {
		logger.FromContext(ctx).Warn(LogMsgSeedPriceMissing, "plant", base.ID)
		return 0, nil
	}
	price, err := prices.CheapestSeedPrice(ctx, base.SeedID)
	if err != nil {
		return 0, fmt.Errorf("failed to price seed %s: %w", base.SeedID, err)
	}
	if price <= 0 {
		logger.FromContext(ctx).Warn(LogMsgSeedPriceMissing, "plant", base.ID, "seed", base.SeedID)
		return 0, nil
	}
	return SeedsNeeded(m, s) * price, nil
}

// Evaluate computes the ResultRecord of m under s. Profit is reported net of
// seed and fertilizer cost.
func Evaluate(ctx context.Context, m Model, s domain.Settings, prices SeedPricer) (domain.CropInfo, error) {
	base := m.Base()
	duration := m.AvailableDays(s.Season, s.Day)

	seedLoss, err := SeedsCost(ctx, m, s, prices)
	if err != nil {
		return domain.CropInfo{}, err
	}
	fertLoss := float64(FertilizerCost(m, s))
	net := m.Profit(s) - float64(seedLoss) - fertLoss

	return domain.CropInfo{
		ID:                   base.ID,
		Name:                 base.Name,
		Kind:                 m.Kind(),
		TotalProfit:          net,
		ProfitPerDay:         PerDay(net, duration),
		TotalSeedLoss:        float64(seedLoss),
		SeedLossPerDay:       PerDay(float64(seedLoss), duration),
		TotalFertilizerLoss:  fertLoss,
		FertilizerLossPerDay: PerDay(fertLoss, duration),
		ProduceType:          s.ProduceType,
		Duration:             duration,
		TotalHarvests:        m.Harvests(s),
		GrowthTime:           m.GrowthTime(s),
		RegrowthTime:         base.RegrowDays,
		ProductCount:         base.MinHarvests,
		ChanceOfExtraProduct: base.ExtraHarvestChance,
		ExtraFromLevel:       base.ExtraCropsFromFarmingLevel(s.EffectiveFarmingLevel()),
		Quality:              m.Quality(s),
	}, nil
}
