package plant

import "github.com/osse101/CropProfit_Go/internal/domain"

const (
	treeMaturityDays = domain.DaysPerSeason
	treeRegrowDays   = 1
)

// FruitTree is a mature fruit tree producing one fruit a day in season.
// Fruit is always base quality and fertilizer has no effect.
type FruitTree struct {
	Plant
}

// NewFruitTree forces the fixed tree growth parameters onto p.
func NewFruitTree(p Plant) (*FruitTree, error) {
	p.Days = treeMaturityDays
	p.RegrowDays = treeRegrowDays
	p.MinHarvests = 1
	p.MaxHarvests = 1
	p.HarvestIncreasePerLevel = 0
	p.ExtraHarvestChance = 0
	p.AffectByQuality = false
	p.AffectByFertilizer = false
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &FruitTree{Plant: p}, nil
}

func (t *FruitTree) Kind() string {
	return domain.KindFruitTree
}

func (t *FruitTree) GrowthSpeed(domain.Settings) float64 {
	return 1.0
}

// GrowthTime reports the sapling maturation length.
func (t *FruitTree) GrowthTime(domain.Settings) int {
	return t.Days
}

// Harvests treats the tree as already grown.
func (t *FruitTree) Harvests(s domain.Settings) int {
	return HarvestCount(t.AvailableDays(s.Season, s.Day), 0, t.RegrowDays)
}

func (t *FruitTree) Quality(domain.Settings) domain.QualityChances {
	return domain.BaseQualityOnly
}

func (t *FruitTree) Profit(s domain.Settings) float64 {
	first, remaining := t.firstAndRemaining(float64(t.Price(s.Season)), t.Quality(s), s)
	return (first + remaining) * float64(t.Harvests(s))
}
