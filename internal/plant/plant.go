// Package plant models the growable entities of the calculator: regrowable
// crops, fruit trees and custom bushes. Every variant satisfies Model and is
// evaluated against an explicit domain.Settings snapshot.
package plant

import (
	"fmt"

	"github.com/osse101/CropProfit_Go/internal/domain"
)

// Model is the capability set the calculator needs from any plant.
type Model interface {
	Base() *Plant
	Kind() string
	GrowthSpeed(s domain.Settings) float64
	GrowthTime(s domain.Settings) int
	AvailableDays(season domain.Season, day int) int
	Harvests(s domain.Settings) int
	Quality(s domain.Settings) domain.QualityChances
	Price(season domain.Season) int
	Profit(s domain.Settings) float64
}

// Plant holds the data shared by every variant.
type Plant struct {
	ID                      string
	Name                    string
	Days                    int
	RegrowDays              int
	MinHarvests             int
	MaxHarvests             int
	HarvestIncreasePerLevel float64
	ExtraHarvestChance      float64
	Seasons                 domain.SeasonSet
	SeedID                  string
	AffectByQuality         bool
	AffectByFertilizer      bool

	drops DropTable
}

// Validate checks the invariants of the shared plant data.
func (p *Plant) Validate() error {
	switch {
	case p.ID == "":
		return fmt.Errorf("%w: %s: empty id", domain.ErrInvalidInput, ErrMsgInvalidPlant)
	case p.Days < 0 || p.RegrowDays < 0:
		return fmt.Errorf("%w: %s %s: negative growth days", domain.ErrInvalidInput, ErrMsgInvalidPlant, p.ID)
	case p.MinHarvests < 0 || p.MaxHarvests < p.MinHarvests:
		return fmt.Errorf("%w: %s %s: harvest range %d..%d", domain.ErrInvalidInput, ErrMsgInvalidPlant, p.ID, p.MinHarvests, p.MaxHarvests)
	case p.HarvestIncreasePerLevel < 0:
		return fmt.Errorf("%w: %s %s: negative harvest increase", domain.ErrInvalidInput, ErrMsgInvalidPlant, p.ID)
	case p.ExtraHarvestChance < 0 || p.ExtraHarvestChance > 1:
		return fmt.Errorf("%w: %s %s: extra chance %v", domain.ErrInvalidInput, ErrMsgInvalidPlant, p.ID, p.ExtraHarvestChance)
	case p.Seasons.IsEmpty():
		return fmt.Errorf("%w: %s %s: no seasons", domain.ErrInvalidInput, ErrMsgInvalidPlant, p.ID)
	}
	return nil
}

// Base exposes the shared data to package-level helpers.
func (p *Plant) Base() *Plant {
	return p
}

// Drops returns the plant's drop table.
func (p *Plant) Drops() DropTable {
	return p.drops
}

// SetDrops replaces the drop table.
func (p *Plant) SetDrops(t DropTable) {
	p.drops = t
}

// AvailableDays is the growing window for this plant's season set.
func (p *Plant) AvailableDays(season domain.Season, day int) int {
	return AvailableDays(p.Seasons, season, day)
}

// Price is the rounded expected value of one harvest in season.
func (p *Plant) Price(season domain.Season) int {
	return p.drops.Price(season)
}

// ExtraCropsFromFarmingLevel is the average harvest size once the per-level
// increase is taken into account. It is informational only.
func (p *Plant) ExtraCropsFromFarmingLevel(level int) int {
	if p.MinHarvests <= 1 && p.MaxHarvests <= 1 {
		return p.MinHarvests
	}
	increase := 0
	if p.HarvestIncreasePerLevel > 0 {
		increase = int(float64(level) / p.HarvestIncreasePerLevel)
	}
	return int(float64(p.MinHarvests+p.MaxHarvests+increase) / 2.0)
}

// firstAndRemaining values one harvest for plants that never roll quality.
// The tiller bonus lands on the remaining produce only.
func (p *Plant) firstAndRemaining(price float64, q domain.QualityChances, s domain.Settings) (first, remaining float64) {
	first = price * AverageMultiplierAfterModifiers(q, s)
	remaining = float64(max(p.MinHarvests-1, 0))*price + price*p.ExtraHarvestChance
	if s.HasProfession(domain.ProfessionTiller) {
		remaining *= domain.TillerBonus
	}
	return first, remaining
}
