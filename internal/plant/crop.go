package plant

import "github.com/osse101/CropProfit_Go/internal/domain"

// Crop is a regrowable field crop.
type Crop struct {
	Plant
	Paddy bool
}

// NewCrop validates p and wraps it as a crop.
func NewCrop(p Plant, paddy bool) (*Crop, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Crop{Plant: p, Paddy: paddy}, nil
}

func (c *Crop) Kind() string {
	return domain.KindCrop
}

// GrowthSpeed is the fraction of growth days removed by fertilizer,
// paddy irrigation and the agriculturist profession.
func (c *Crop) GrowthSpeed(s domain.Settings) float64 {
	if !c.AffectByFertilizer {
		return 1.0
	}
	speed := s.Fertilizer.SpeedBonus()
	if c.Paddy {
		speed += domain.PaddyBonus
	}
	if s.HasProfession(domain.ProfessionAgriculturist) {
		speed += domain.AgriculturistBonus
	}
	return speed
}

// GrowthTime is the number of days until the first harvest.
func (c *Crop) GrowthTime(s domain.Settings) int {
	return EffectiveGrowthDays(c.Days, c.GrowthSpeed(s))
}

func (c *Crop) Harvests(s domain.Settings) int {
	return HarvestCount(c.AvailableDays(s.Season, s.Day), c.GrowthTime(s), c.RegrowDays)
}

func (c *Crop) Quality(s domain.Settings) domain.QualityChances {
	if !c.AffectByQuality {
		return domain.BaseQualityOnly
	}
	return ComputeQualityChances(s.EffectiveFarmingLevel(), s.Fertilizer)
}

// Profit is the gross value of every harvest in the window.
//
// Quality crops value the first product through the average quality
// multiplier inside the remaining produce, so the first harvest term is zero.
func (c *Crop) Profit(s domain.Settings) float64 {
	price := float64(c.Price(s.Season))
	var first, remaining float64
	if c.AffectByQuality {
		remaining = price*AverageMultiplier(c.Quality(s), s.PriceMultipliers) +
			float64(max(c.MinHarvests-1, 0))*price +
			price*c.ExtraHarvestChance
		if s.HasProfession(domain.ProfessionTiller) {
			remaining *= domain.TillerBonus
		}
	} else {
		first, remaining = c.firstAndRemaining(price, c.Quality(s), s)
	}
	return (first + remaining) * float64(c.Harvests(s))
}
